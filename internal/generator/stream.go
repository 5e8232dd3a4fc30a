package generator

import (
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v7"
)

// Source is the random stream every draw is taken from. A *gofakeit.Faker
// satisfies it.
type Source interface {
	Float64() float64
	Float64Range(min, max float64) float64
	IntRange(min, max int) int
	RandomString(a []string) string
	Uint64() uint64
}

// NewStream returns the process-wide stream for seed. It is not safe for
// concurrent use.
func NewStream(seed int64) *gofakeit.Faker {
	return gofakeit.NewFaker(rand.NewPCG(uint64(seed), uint64(seed)), false)
}

// SubStream returns an independent stream for one row of a cycle, used when
// rows are synthesized in parallel.
func SubStream(cycleSeed uint64, index int) *gofakeit.Faker {
	return gofakeit.NewFaker(rand.NewPCG(cycleSeed, uint64(index)), false)
}
