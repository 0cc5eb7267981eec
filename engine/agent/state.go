// Package agent prepares Spider Solitaire observations for learning agents:
// hiding information a player cannot see and flattening what remains into
// a fixed-size feature vector.
package agent

import engine "github.com/Nathaniel-Reeves/CS4300-Artificial-Intelligence/engine"

// Hide returns the observation a player is allowed to see.
//
// Every bank card is zeroed. In each pile a face-down top card is shown
// flipped while the hand is empty, since settling the next move reveals it
// anyway; every other face-down card keeps only its face-down marker, so
// rank and suit read as zero. Hand, completed slots, moves and score are
// untouched.
func Hide(obs engine.Observation) engine.Observation {
	for i := range obs.Bank {
		obs.Bank[i] = engine.EmptyCard
	}
	for i := range obs.Piles {
		p := &obs.Piles[i]
		for j := uint8(0); j < p.Len; j++ {
			c := p.Cards[j]
			if c.FaceUp() {
				continue
			}
			if j == p.Len-1 && obs.HandLen == 0 {
				p.Cards[j] = c.Up()
				continue
			}
			p.Cards[j] = engine.EmptyCard
		}
	}
	return obs
}

// Visible reports whether c carries rank and suit a player may read.
func Visible(c engine.Card) bool {
	return c.FaceUp()
}
