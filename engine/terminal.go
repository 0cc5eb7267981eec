package engine

// Won reports whether every completed-suit slot is full.
func (o *Observation) Won() bool { return o.CompletedCount() == NumSlots }

// IsTerminal returns true when the game is won or no legal action remains.
func (o *Observation) IsTerminal() bool {
	return o.Won() || o.LegalActions() == 0
}

// Hash returns a fast 64-bit FNV-1a hash of the game state, excluding the
// derived score. Equal observations always hash equally, so search
// collaborators can use it as a transposition key.
func (o *Observation) Hash() uint64 {
	h := uint64(14695981039346656037) // FNV-1a offset basis
	const prime = uint64(1099511628211)

	for i := range o.Piles {
		p := &o.Piles[i]
		for j := uint8(0); j < p.Len; j++ {
			h ^= uint64(p.Cards[j])
			h *= prime
		}
		h ^= uint64(p.Len) << 8
		h *= prime
	}
	for i := uint8(0); i < o.BankLen; i++ {
		h ^= uint64(o.Bank[i])
		h *= prime
	}
	for i := uint8(0); i < o.HandLen; i++ {
		h ^= uint64(o.Hand[i]) << 16
		h *= prime
	}
	h ^= uint64(o.PickupPile) << 24
	h *= prime
	for i := range o.Completed {
		h ^= uint64(o.Completed[i].Len) << 32
		h *= prime
	}
	h ^= uint64(o.NumMoves) << 40
	h *= prime
	return h
}
