package session

import (
	"math/rand/v2"
	"sync"

	qb "github.com/abhisek/careerquest/internal/questionbank"
)

// PadFactor is how many times a category pool is repeated before sampling,
// so a small bank can still fill a full question set.
const PadFactor = 10

// Sampler picks up to n questions from a category pool.
type Sampler interface {
	Sample(pool []qb.Question, n int) []qb.Question
}

// Pad repeats pool cyclically factor times.
func Pad(pool []qb.Question, factor int) []qb.Question {
	if len(pool) == 0 || factor <= 0 {
		return nil
	}
	out := make([]qb.Question, 0, len(pool)*factor)
	for range factor {
		out = append(out, pool...)
	}
	return out
}

// ShuffleSampler pads the pool and draws a shuffled prefix. It is safe for
// concurrent use.
type ShuffleSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSampler returns a sampler whose draws are fully determined by seed.
func NewSeededSampler(seed uint64) *ShuffleSampler {
	return &ShuffleSampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandomSampler returns a sampler seeded from the runtime source.
func NewRandomSampler() *ShuffleSampler {
	return NewSeededSampler(rand.Uint64())
}

// Sample implements Sampler. It returns min(n, PadFactor*len(pool)) questions.
func (s *ShuffleSampler) Sample(pool []qb.Question, n int) []qb.Question {
	padded := Pad(pool, PadFactor)
	if n <= 0 || len(padded) == 0 {
		return nil
	}

	s.mu.Lock()
	s.rng.Shuffle(len(padded), func(i, j int) {
		padded[i], padded[j] = padded[j], padded[i]
	})
	s.mu.Unlock()

	return padded[:min(n, len(padded))]
}

// SequentialSampler draws the padded pool in bank order.
type SequentialSampler struct{}

// Sample implements Sampler.
func (SequentialSampler) Sample(pool []qb.Question, n int) []qb.Question {
	padded := Pad(pool, PadFactor)
	if n <= 0 {
		return nil
	}
	return padded[:min(n, len(padded))]
}
