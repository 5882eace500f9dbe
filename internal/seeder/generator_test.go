package seeder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBetweenBounds(t *testing.T) {
	g := newGenerator(1)
	for i := 0; i < 1000; i++ {
		v := g.between(0, 100)
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 100)
	}

	assert.Equal(t, 7, g.between(7, 7))
}

func TestWeightedDistribution(t *testing.T) {
	g := newGenerator(42)

	const draws = 100000
	counts := make([]int, len(orderStatusWeights))
	for i := 0; i < draws; i++ {
		counts[g.weighted(orderStatusWeights)]++
	}

	for i, weight := range orderStatusWeights {
		got := float64(counts[i]) / draws
		assert.InDelta(t, weight, got, 0.01, "status %s", orderStatuses[i])
	}
}

func TestSampleDistinct(t *testing.T) {
	g := newGenerator(7)

	idx := g.sample(20, 5)
	assert.Len(t, idx, 5)
	seen := make(map[int]bool)
	for _, i := range idx {
		assert.False(t, seen[i], "duplicate index %d", i)
		assert.Less(t, i, 20)
		seen[i] = true
	}

	// k capped at n
	assert.Len(t, g.sample(3, 10), 3)
}

func TestEmailFoldsAccents(t *testing.T) {
	assert.Equal(t, "joao.araujo.0@example.com", email("João", "Araújo", 0))
	assert.Equal(t, "patricia.goncalves.12@example.com", email("Patrícia", "Gonçalves", 12))
}

func TestEmailDiscriminatorUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		// worst case: every generated user draws the same name
		addr := email("Maria", "Silva", i)
		assert.False(t, seen[addr])
		seen[addr] = true
	}
}

func TestTransactionIDsUnique(t *testing.T) {
	g := newGenerator(3)

	seen := make(map[string]bool)
	for i := 0; i < 5000; i++ {
		id := g.nextTransactionID()
		assert.False(t, seen[id], "duplicate transaction id %s", id)
		assert.Regexp(t, `^TXN\d{6,}$`, id)
		seen[id] = true
	}
}

func TestMoneyRounding(t *testing.T) {
	g := newGenerator(11)
	for i := 0; i < 1000; i++ {
		v := g.money(400, 1200)
		assert.GreaterOrEqual(t, v, 400.0)
		assert.LessOrEqual(t, v, 1200.0)
		assert.Equal(t, round2(v), v)
	}
}

func TestPastTimeWithinWindow(t *testing.T) {
	g := newGenerator(5)
	now := time.Now()
	for i := 0; i < 1000; i++ {
		ts := g.pastTime(90)
		assert.True(t, ts.Before(now.Add(time.Second)))
		assert.True(t, ts.After(now.AddDate(0, 0, -91)))
	}
}

func TestChanceRate(t *testing.T) {
	g := newGenerator(99)

	hits := 0
	const draws = 100000
	for i := 0; i < draws; i++ {
		if g.chance(0.30) {
			hits++
		}
	}
	assert.InDelta(t, 0.30, float64(hits)/draws, 0.01)
}

func TestGeneratorReproducible(t *testing.T) {
	a := newGenerator(1234)
	b := newGenerator(1234)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.between(0, 1000), b.between(0, 1000))
	}
}
