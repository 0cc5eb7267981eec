package engine

import "fmt"

// Rules holds configurable game rule settings.
type Rules struct {
	// NumSuits is the effective suit count of the two-deck set: 1 (all
	// spades), 2 (spades and hearts) or 4 (full suits).
	NumSuits uint8
}

// DefaultRules returns the standard four-suit rules.
func DefaultRules() Rules {
	return Rules{NumSuits: 4}
}

// Validate reports whether the rules describe a playable deck.
func (r Rules) Validate() error {
	switch r.NumSuits {
	case 1, 2, 4:
		return nil
	}
	return fmt.Errorf("%w: num suits must be 1, 2 or 4, got %d", ErrInvalidRules, r.NumSuits)
}

// suitFor maps the natural suit i (1..4) of a card to its effective suit.
func (r Rules) suitFor(i uint8) uint8 {
	switch r.NumSuits {
	case 1:
		return SuitSpades
	case 2:
		return i%2 + 1
	}
	return i
}
