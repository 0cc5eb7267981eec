package engine

// setBit sets bit idx in the bitmask.
func setBit(mask *uint32, idx uint16) {
	*mask |= 1 << idx
}

// LegalActions returns a bitmask of legal action indices: bit i is set if
// action i is legal. The observation must already be valid.
//
// Putting the hand back on its own source pile is left out of the mask even
// though PutDownCards accepts it.
func (o *Observation) LegalActions() uint32 {
	var mask uint32

	if o.HandLen == 0 {
		if o.BankLen > 0 {
			setBit(&mask, ActionDrawBank)
		}
		for i := range o.Piles {
			if o.Piles[i].Len > 0 {
				setBit(&mask, EncodePickUp(uint8(i+1)))
			}
		}
		return mask
	}

	o.legalPickUp(&mask)
	o.legalPutDown(&mask)
	return mask
}

// legalPickUp marks extending the held run from its source pile.
func (o *Observation) legalPickUp(mask *uint32) {
	if o.PickupPile < 1 || o.PickupPile > NumPiles || o.HandLen >= MaxHandSize {
		return
	}
	p := o.Pile(o.PickupPile)
	if p.Len == 0 {
		return
	}
	if o.HandBottom().Continues(p.Top()) {
		setBit(mask, EncodePickUp(o.PickupPile))
	}
}

// legalPutDown marks every pile that accepts the bottom of the hand.
func (o *Observation) legalPutDown(mask *uint32) {
	bottom := o.HandBottom()
	for i := range o.Piles {
		pile := uint8(i + 1)
		if pile == o.PickupPile {
			continue
		}
		p := &o.Piles[i]
		if p.Len == 0 || bottom.AcceptedBy(p.Top()) {
			setBit(mask, EncodePutDown(pile))
		}
	}
}

// LegalActionsList returns legal actions in ascending order.
func (o *Observation) LegalActionsList() []uint16 {
	mask := o.LegalActions()
	var actions []uint16
	for i := uint16(0); i < NumActions; i++ {
		if mask>>i&1 == 1 {
			actions = append(actions, i)
		}
	}
	return actions
}

// IsLegal reports whether action is in the legal mask.
func (o *Observation) IsLegal(action uint16) bool {
	return action < NumActions && o.LegalActions()>>action&1 == 1
}
