// Package prompts assigns A/B prompt variants to habit recipes and decides when
// a recipe's prompt should next fire.
package prompts

import (
	"math/rand/v2"
	"sync"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
)

// Assigner picks the prompt variant of a newly created habit recipe
type Assigner interface {
	Assign() models.PromptVariant
}

// RandomAssigner draws A or B uniformly
type RandomAssigner struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAssigner returns an assigner backed by rng. A nil rng uses a randomly
// seeded source.
func NewRandomAssigner(rng *rand.Rand) *RandomAssigner {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomAssigner{rng: rng}
}

// NewSeededAssigner returns a reproducible assigner
func NewSeededAssigner(seed uint64) *RandomAssigner {
	return NewRandomAssigner(rand.New(rand.NewPCG(seed, seed)))
}

func (a *RandomAssigner) Assign() models.PromptVariant {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.rng.IntN(2) == 0 {
		return models.PromptVariantA
	}
	return models.PromptVariantB
}

// FixedAssigner always returns the same variant
type FixedAssigner models.PromptVariant

func (f FixedAssigner) Assign() models.PromptVariant {
	return models.PromptVariant(f)
}
