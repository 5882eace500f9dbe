package seeder

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// generator wraps a seeded rand.Rand plus the monotonic counters that keep
// generated emails and transaction ids unique by construction.
type generator struct {
	rand   *rand.Rand
	txnSeq int
}

func newGenerator(seed int64) *generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &generator{rand: rand.New(rand.NewSource(seed))}
}

// between returns a uniform integer in [min, max].
func (g *generator) between(min, max int) int {
	return min + g.rand.Intn(max-min+1)
}

// chance reports true with probability p.
func (g *generator) chance(p float64) bool {
	return g.rand.Float64() < p
}

func (g *generator) pick(options []string) string {
	return options[g.rand.Intn(len(options))]
}

// weighted returns an index sampled according to the given weights.
func (g *generator) weighted(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	r := g.rand.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// sample returns k distinct indexes from [0, n).
func (g *generator) sample(n, k int) []int {
	if k > n {
		k = n
	}
	return g.rand.Perm(n)[:k]
}

// money returns a uniform price in [min, max] rounded to two decimals.
func (g *generator) money(min, max int) float64 {
	return round2(float64(min) + g.rand.Float64()*float64(max-min))
}

// pastTime returns a timestamp up to maxDays in the past.
func (g *generator) pastTime(maxDays int) time.Time {
	offset := time.Duration(g.rand.Int63n(int64(maxDays) * int64(24*time.Hour)))
	return time.Now().Add(-offset)
}

func (g *generator) phone() string {
	return fmt.Sprintf("(%d) %d-%d", g.between(11, 99), g.between(90000, 99999), g.between(1000, 9999))
}

func (g *generator) zipCode() string {
	return fmt.Sprintf("%d-%d", g.between(10000, 99999), g.between(100, 999))
}

// nextTransactionID yields TXN ids from a per-run counter, so two payments
// can never collide inside one run.
func (g *generator) nextTransactionID() string {
	g.txnSeq++
	return fmt.Sprintf("TXN%06d", 100000+g.txnSeq)
}

// asciiFold strips the accents that appear in the Brazilian name tables so
// generated emails stay plain ASCII.
var asciiFold = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u", "ü", "u",
	"ç", "c",
)

// email builds the deterministic address for the n-th generated user. The
// index discriminator guarantees uniqueness without retries.
func email(firstName, lastName string, n int) string {
	first := asciiFold.Replace(strings.ToLower(firstName))
	last := asciiFold.Replace(strings.ToLower(lastName))
	return fmt.Sprintf("%s.%s.%d@example.com", first, last, n)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
