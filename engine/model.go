package engine

// Model is the stateless rules façade used by agents and search
// collaborators. Every method takes observation values and returns new ones;
// nothing is retained between calls. The zero Model is ready to use.
type Model struct {
	// Sink receives events from the private GameState each Result call
	// materializes. Nil discards them.
	Sink EventSink
}

// NewModel returns a Model reporting events to sink.
func NewModel(sink EventSink) Model {
	return Model{Sink: sink}
}

// Actions returns the legal action indices for obs in ascending order:
// bank draw, then pickups 1..10, then put-downs 11..20.
func (m Model) Actions(obs Observation) ([]uint16, error) {
	if err := obs.Validate(); err != nil {
		return nil, err
	}
	return obs.LegalActionsList(), nil
}

// LegalActions returns the legal action bitmask for obs.
func (m Model) LegalActions(obs Observation) (uint32, error) {
	if err := obs.Validate(); err != nil {
		return 0, err
	}
	return obs.LegalActions(), nil
}

// Result applies action to a private copy of obs and returns the successor.
// An action outside Actions(obs) is not an error: the result equals obs apart
// from the recomputed score.
func (m Model) Result(obs Observation, action uint16) (Observation, error) {
	if err := obs.Validate(); err != nil {
		return obs, err
	}
	mv, err := DecodeAction(action)
	if err != nil {
		return obs, err
	}
	g := FromObservation(obs, m.Sink)
	g.ApplyMove(mv)
	return g.Snapshot(), nil
}

// GoalTest reports whether every completed-suit slot is full.
func (m Model) GoalTest(obs Observation) bool {
	return obs.CompletedCount() == NumSlots
}

// StepCost returns the absolute score of next; it is not a delta.
func (m Model) StepCost(obs Observation, action uint16, next Observation) int {
	return next.ComputeScore()
}

// Evaluate returns the score of obs.
func (m Model) Evaluate(obs Observation) int {
	return obs.ComputeScore()
}

// Heuristic is disabled and always returns 0.
func (m Model) Heuristic(obs Observation) int {
	return 0
}

// IsChanceNode reports whether the transition disclosed hidden information:
// a bank draw, or fewer face-down cards in next than in obs.
func (m Model) IsChanceNode(obs Observation, action uint16, next Observation) bool {
	if action == ActionDrawBank {
		return true
	}
	return next.FaceDownCount() < obs.FaceDownCount()
}

// NumPiles returns the number of tableau piles.
func (m Model) NumPiles(obs Observation) int {
	return NumPiles
}
