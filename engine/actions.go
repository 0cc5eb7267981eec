package engine

// ApplyMove dispatches m to the corresponding mutation. Every mutation is
// total: an illegal request emits EventRejectedMove and leaves the state
// unchanged apart from the recomputed score.
func (g *GameState) ApplyMove(m Move) {
	switch m.Kind {
	case MoveDrawBank:
		g.DealFromBank()
	case MovePickUp:
		g.PickupCard(m.Pile)
	case MovePutDown:
		g.PutDownCards(m.Pile)
	}
}

// reject reports an illegal request and rescores.
func (g *GameState) reject(m Move, reason RejectReason) {
	g.emit(Event{Type: EventRejectedMove, Move: m, Pile: m.Pile, Reason: reason})
	g.CalculateScore()
}

// DealFromBank deals one bank card face-up onto every pile in index order.
func (g *GameState) DealFromBank() {
	m := Move{Kind: MoveDrawBank}
	if g.BankLen == 0 {
		g.reject(m, ReasonBankEmpty)
		return
	}
	if g.HandLen > 0 {
		g.reject(m, ReasonHandNotEmpty)
		return
	}
	// A partial bank cannot occur in a dealt game; deal what there is.
	for i := 0; i < NumPiles && g.BankLen > 0; i++ {
		g.BankLen--
		card := g.Bank[g.BankLen]
		g.Bank[g.BankLen] = EmptyCard
		g.Piles[i].push(card.Up())
	}
	g.NumMoves++
	g.emit(Event{Type: EventBankDealt, Move: m})

	g.settle()
	g.CalculateScore()
}

// PickupCard picks up the top card of pile (1-based). With an empty hand any
// top card may be taken. With a non-empty hand the card must come from the
// same pile, be face-up, share the hand's suit and be exactly one rank above
// the bottom of the hand. Picking up never counts as a move.
func (g *GameState) PickupCard(pile uint8) {
	m := Move{Kind: MovePickUp, Pile: pile}
	if pile < 1 || pile > NumPiles {
		g.reject(m, ReasonPileOutOfRange)
		return
	}
	p := g.Pile(pile)
	if p.Len == 0 {
		g.reject(m, ReasonPileEmpty)
		return
	}

	if g.HandLen > 0 {
		if g.PickupPile == 0 {
			g.reject(m, ReasonInconsistentHand)
			return
		}
		if g.PickupPile != pile {
			g.reject(m, ReasonWrongSourcePile)
			return
		}
		next := p.Top()
		if !next.FaceUp() {
			g.reject(m, ReasonCardFaceDown)
			return
		}
		if g.HandLen >= MaxHandSize || !g.HandBottom().Continues(next) {
			g.reject(m, ReasonNotStackable)
			return
		}
	}

	g.Hand[g.HandLen] = p.pop()
	g.HandLen++
	g.PickupPile = pile
	g.CalculateScore()
}

// PutDownCards places the whole hand on pile (1-based), preserving the
// original pile order. The target must be empty, or have a face-up top card
// one rank above the bottom of the hand, or be the pile the hand came from.
func (g *GameState) PutDownCards(pile uint8) {
	m := Move{Kind: MovePutDown, Pile: pile}
	if g.HandLen == 0 {
		g.reject(m, ReasonHandEmpty)
		return
	}
	if pile < 1 || pile > NumPiles {
		g.reject(m, ReasonPileOutOfRange)
		return
	}
	p := g.Pile(pile)
	// Returning cards to their source pile is always allowed, even onto a
	// card they do not follow.
	if pile != g.PickupPile && p.Len > 0 && !g.HandBottom().AcceptedBy(p.Top()) {
		g.reject(m, ReasonNotStackable)
		return
	}

	for g.HandLen > 0 {
		g.HandLen--
		p.push(g.Hand[g.HandLen])
		g.Hand[g.HandLen] = EmptyCard
	}
	g.PickupPile = 0
	g.NumMoves++

	g.settle()
	g.CalculateScore()
}

// settle runs the automatic post-move checks on every pile: completed-suit
// detection first, then revealing a face-down top card.
func (g *GameState) settle() {
	for i := range g.Piles {
		pile := uint8(i + 1)
		for g.completeSuit(pile) {
		}
		g.unhide(pile)
	}
}

// completeSuit moves a face-up King..Ace run of one suit from the top of
// pile into the first empty slot. It reports whether a run was moved.
func (g *GameState) completeSuit(pile uint8) bool {
	p := g.Pile(pile)
	if p.Len < NumRanks {
		return false
	}
	top := p.Top()
	if top.Rank() != RankAce || !top.FaceUp() {
		return false
	}
	for i := uint8(1); i < NumRanks; i++ {
		c := p.Cards[p.Len-1-i]
		if !c.FaceUp() || c.Suit() != top.Suit() || c.Rank() != top.Rank()+i {
			return false
		}
	}

	slot := -1
	for i := range g.Completed {
		if g.Completed[i].Len == 0 {
			slot = i
			break
		}
	}
	if slot < 0 {
		return false
	}

	s := &g.Completed[slot]
	for s.Len < NumRanks {
		s.Cards[s.Len] = p.pop()
		s.Len++
	}
	g.emit(Event{Type: EventSuitCompleted, Pile: pile, Slot: uint8(slot + 1)})
	return true
}

// unhide turns the top card of pile face-up when the hand is empty.
func (g *GameState) unhide(pile uint8) {
	if g.HandLen > 0 {
		return
	}
	p := g.Pile(pile)
	if p.Len == 0 || p.Top().FaceUp() {
		return
	}
	p.Cards[p.Len-1] = p.Top().Up()
	g.emit(Event{Type: EventCardRevealed, Pile: pile})
}
