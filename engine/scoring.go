package engine

// Score weights. A fresh deal starts from the full value of its hidden cards.
const (
	ScoreBase          = InitialHidden * 10
	ScoreFaceDown      = -10 // per face-down pile card
	ScoreClearPile     = 15  // per pile without face-down cards
	ScoreOrderedPair   = 2   // per face-up same-suit descending pair
	ScoreCompletedSuit = 50  // per full completed slot
	ScoreLateSuit      = 2   // per full slot beyond the first three
	ScoreMove          = -1  // per move
	lateSuitThreshold  = 3
)

// ComputeScore returns the score of o. It is a pure function of the piles,
// completed slots and move count; the cached Score field is ignored.
func (o *Observation) ComputeScore() int {
	score := ScoreBase

	for i := range o.Piles {
		p := &o.Piles[i]
		down := p.FaceDown()
		score += ScoreFaceDown * down
		if down == 0 {
			score += ScoreClearPile
		}
		// Pair (j, j+1): card j+1 rests on card j.
		for j := 0; j+1 < int(p.Len); j++ {
			lo, hi := p.Cards[j], p.Cards[j+1]
			if lo.FaceUp() && hi.FaceUp() && lo.Suit() == hi.Suit() && hi.Rank()+1 == lo.Rank() {
				score += ScoreOrderedPair
			}
		}
	}

	full := o.CompletedCount()
	score += ScoreCompletedSuit * full
	if full > lateSuitThreshold {
		score += ScoreLateSuit * (full - lateSuitThreshold)
	}

	score += ScoreMove * int(o.NumMoves)
	return score
}

// CalculateScore recomputes and caches the score of the current state.
func (g *GameState) CalculateScore() int {
	s := g.ComputeScore()
	g.Score = int32(s)
	return s
}
