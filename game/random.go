package game

import "math/rand"

// RandomSource draws uniform integers from the inclusive range [min, max].
type RandomSource interface {
	Int(min, max int) int
}

type mathRand struct {
	r *rand.Rand
}

// NewRandomSource returns a RandomSource seeded with seed. Not safe for
// concurrent use; give each Processor its own.
func NewRandomSource(seed int64) RandomSource {
	return &mathRand{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRand) Int(min, max int) int {
	if max <= min {
		return min
	}
	return min + m.r.Intn(max-min+1)
}
