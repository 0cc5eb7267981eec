package agent

import engine "github.com/Nathaniel-Reeves/CS4300-Artificial-Intelligence/engine"

// clampUnit divides n by scale and clamps the result to [0, 1].
func clampUnit(n, scale int) float32 {
	if n >= scale {
		return 1.0
	}
	return float32(n) / float32(scale)
}

// visibleTop returns the top card of p if it is face-up, else EmptyCard.
func visibleTop(p *engine.Pile) engine.Card {
	top := p.Top()
	if !Visible(top) {
		return engine.EmptyCard
	}
	return top
}

// Encode writes the InputDim feature vector for obs into out.
// out is zeroed internally before writing. Face-down cards contribute only
// to counts, so Encode(obs) == Encode(Hide(obs)) whenever the hand is
// non-empty.
func Encode(obs engine.Observation, out *[InputDim]float32) {
	*out = [InputDim]float32{}

	offset := 0

	// Piles: 10 × 21 = 210
	for i := range obs.Piles {
		p := &obs.Piles[i]
		down := p.FaceDown()
		out[offset] = clampUnit(down, MaxFaceDown)
		out[offset+1] = clampUnit(int(p.Len)-down, engine.NumRanks)
		top := visibleTop(p)
		out[offset+2+int(top.Rank())] = 1.0
		out[offset+2+RankDim+int(top.Suit())] = 1.0
		offset += PileDim
	}
	// offset = 210

	// Bank deals remaining
	out[offset] = float32(int(obs.BankLen)/engine.NumPiles) / float32(BankDeals)
	offset++
	// offset = 211

	// Hand length
	out[offset] = clampUnit(int(obs.HandLen), engine.MaxHandSize)
	offset++
	// offset = 212

	// Hand bottom rank: 14-dim one-hot, 0 when empty
	out[offset+int(obs.HandBottom().Rank())] = 1.0
	offset += RankDim
	// offset = 226

	// Pickup pile: 11-dim one-hot
	pickup := obs.PickupPile
	if pickup > engine.NumPiles {
		pickup = 0
	}
	out[offset+int(pickup)] = 1.0
	offset += PickupDim
	// offset = 237

	// Completed slots
	out[offset] = float32(obs.CompletedCount()) / float32(engine.NumSlots)
	offset++
	// offset = 238

	// Moves
	out[offset] = clampUnit(int(obs.NumMoves), MoveScale)
	// offset = 239
}
