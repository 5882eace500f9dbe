package seeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryCatalog(t *testing.T) {
	assert.Len(t, categoryTemplates, 12)

	names := make(map[string]bool)
	for _, tmpl := range categoryTemplates {
		assert.NotEmpty(t, tmpl.Name)
		assert.NotEmpty(t, tmpl.Icon)
		assert.NotEmpty(t, tmpl.Noun)
		assert.Greater(t, tmpl.PriceMax, tmpl.PriceMin)
		assert.NotEmpty(t, tmpl.Specs)
		assert.False(t, names[tmpl.Name], "duplicate category %s", tmpl.Name)
		names[tmpl.Name] = true
	}
}

func TestCouponCatalog(t *testing.T) {
	codes := make([]string, 0, len(couponCatalog))
	for _, c := range couponCatalog {
		codes = append(codes, c.Code)
		// exactly one discount mode per coupon
		assert.True(t, (c.Percentage > 0) != (c.Value > 0), c.Code)
		assert.Greater(t, c.MaxUses, 0, c.Code)
		assert.Greater(t, c.ValidDays, 0, c.Code)
	}

	assert.ElementsMatch(t,
		[]string{"BEMVINDO10", "FRETEGRATIS", "BLACKFRIDAY", "PRIMAVERA15", "DESCONTO20", "CASHBACK50"},
		codes)
}

func TestFixedAuxiliarySets(t *testing.T) {
	assert.Len(t, bannerCatalog, 3)
	assert.Len(t, contactCatalog, 10)
	assert.Len(t, brands, 8)
	assert.Len(t, productModels, 8)
}

func TestStatusWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, w := range orderStatusWeights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	sum = 0.0
	for _, w := range paymentMethodWeights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestCityStatePairs(t *testing.T) {
	assert.Len(t, cityStates, 10)
	for _, cs := range cityStates {
		assert.Len(t, cs.State, 2)
	}
}
