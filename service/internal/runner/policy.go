// Package runner plays Spider Solitaire episodes with a Policy and
// aggregates the results.
package runner

import (
	"errors"
	"math/rand/v2"

	engine "github.com/Nathaniel-Reeves/CS4300-Artificial-Intelligence/engine"
)

// ErrNoActions is returned by a Policy asked to act in a state with no
// legal action.
var ErrNoActions = errors.New("no legal actions")

// Policy chooses actions for one episode at a time. Implementations need
// not be safe for concurrent use; RunMany builds one per worker.
type Policy interface {
	// Reset is called before every episode.
	Reset()
	// Act returns the action to play in obs.
	Act(obs engine.Observation) (uint16, error)
}

// RandomPolicy plays a uniformly random legal action.
type RandomPolicy struct {
	model engine.Model
	rng   *rand.Rand
}

// NewRandomPolicy returns a RandomPolicy seeded with seed.
func NewRandomPolicy(seed uint64) *RandomPolicy {
	return &RandomPolicy{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Reset implements Policy. The random stream carries on across episodes.
func (p *RandomPolicy) Reset() {}

// Act implements Policy.
func (p *RandomPolicy) Act(obs engine.Observation) (uint16, error) {
	actions, err := p.model.Actions(obs)
	if err != nil {
		return 0, err
	}
	if len(actions) == 0 {
		return 0, ErrNoActions
	}
	return actions[p.rng.IntN(len(actions))], nil
}
