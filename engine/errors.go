package engine

import "errors"

// Fatal precondition violations. These indicate a caller bug, never a game
// rule violation; benign illegal moves are reported through EventSink.
var (
	ErrInconsistentHand     = errors.New("hand and pickup pile index disagree")
	ErrMalformedObservation = errors.New("malformed observation")
	ErrActionOutOfRange     = errors.New("action index out of range")
	ErrInvalidRules         = errors.New("invalid rules")
)
