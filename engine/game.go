// Package engine implements the Spider Solitaire rules.
//
// The package owns the canonical game state, enumerates legal moves, applies
// moves to produce successor states, tests the goal condition and scores
// states. All state is held in flat value types (fixed arrays, no pointers,
// no slices): assigning an Observation is a deep copy and == compares two
// observations field by field, so no aliasing can cross a call boundary.
//
// Piles and completed-suit slots are 1-based at the API (pile 1..10) and
// stored 0-based in arrays (Piles[pile-1]).
package engine

import (
	"fmt"
	"math/rand/v2"
)

const (
	NumPiles      = 10
	NumSlots      = 8
	NumDecks      = 2
	NumRanks      = 13
	DeckSize      = NumDecks * 52
	InitialDeal   = 54
	BankSize      = DeckSize - InitialDeal
	MaxHandSize   = NumRanks
	InitialHidden = InitialDeal - NumPiles
)

// Pile is an ordered stack of cards, bottom (index 0) to top (index Len-1).
// Cards at index >= Len are always EmptyCard.
type Pile struct {
	Cards [DeckSize]Card
	Len   uint8
}

// Top returns the top card, or EmptyCard if the pile is empty.
func (p *Pile) Top() Card {
	if p.Len == 0 {
		return EmptyCard
	}
	return p.Cards[p.Len-1]
}

// Slice returns a copy of the pile's cards, bottom to top.
func (p *Pile) Slice() []Card {
	return append([]Card(nil), p.Cards[:p.Len]...)
}

// FaceDown returns the number of face-down cards in the pile.
func (p *Pile) FaceDown() int {
	n := 0
	for i := uint8(0); i < p.Len; i++ {
		if !p.Cards[i].FaceUp() {
			n++
		}
	}
	return n
}

func (p *Pile) push(c Card) {
	p.Cards[p.Len] = c
	p.Len++
}

func (p *Pile) pop() Card {
	p.Len--
	c := p.Cards[p.Len]
	p.Cards[p.Len] = EmptyCard
	return c
}

// Slot is a completed-suit slot: empty, or Ace..King of one suit with the
// Ace at index 0.
type Slot struct {
	Cards [NumRanks]Card
	Len   uint8
}

// Full reports whether the slot holds a complete run.
func (s *Slot) Full() bool { return s.Len == NumRanks }

// Observation is the complete, externally visible snapshot of a game.
//
// Hand holds the picked-up run in pickup order: Hand[0] was the top card of
// the source pile and Hand[HandLen-1], the bottom of the hand, is the card
// that will rest on the target pile. PickupPile is 0 iff HandLen is 0.
type Observation struct {
	Piles      [NumPiles]Pile
	Bank       [BankSize]Card // Bank[BankLen-1] is dealt first
	BankLen    uint8
	Hand       [MaxHandSize]Card
	HandLen    uint8
	PickupPile uint8
	Completed  [NumSlots]Slot
	NumMoves   uint32
	Score      int32
}

// Pile returns the pile at 1-based index i.
func (o *Observation) Pile(i uint8) *Pile { return &o.Piles[i-1] }

// HandBottom returns the bottom card of the hand, or EmptyCard if empty.
func (o *Observation) HandBottom() Card {
	if o.HandLen == 0 {
		return EmptyCard
	}
	return o.Hand[o.HandLen-1]
}

// FaceDownCount returns the number of face-down cards across all piles.
func (o *Observation) FaceDownCount() int {
	n := 0
	for i := range o.Piles {
		n += o.Piles[i].FaceDown()
	}
	return n
}

// CompletedCount returns the number of full completed-suit slots.
func (o *Observation) CompletedCount() int {
	n := 0
	for i := range o.Completed {
		if o.Completed[i].Full() {
			n++
		}
	}
	return n
}

// TotalCards returns the number of cards in piles, bank, hand and slots.
func (o *Observation) TotalCards() int {
	n := int(o.BankLen) + int(o.HandLen)
	for i := range o.Piles {
		n += int(o.Piles[i].Len)
	}
	for i := range o.Completed {
		n += int(o.Completed[i].Len)
	}
	return n
}

// Validate checks the structural invariants a caller is responsible for.
// A failure is a caller bug and is never reported as a rejected move.
func (o *Observation) Validate() error {
	for i := range o.Piles {
		if o.Piles[i].Len > DeckSize {
			return fmt.Errorf("%w: pile %d length %d exceeds %d", ErrMalformedObservation, i+1, o.Piles[i].Len, DeckSize)
		}
	}
	if o.BankLen > BankSize {
		return fmt.Errorf("%w: bank length %d exceeds %d", ErrMalformedObservation, o.BankLen, BankSize)
	}
	if o.HandLen > MaxHandSize {
		return fmt.Errorf("%w: hand length %d exceeds %d", ErrMalformedObservation, o.HandLen, MaxHandSize)
	}
	for i := range o.Completed {
		if o.Completed[i].Len > NumRanks {
			return fmt.Errorf("%w: slot %d length %d exceeds %d", ErrMalformedObservation, i+1, o.Completed[i].Len, NumRanks)
		}
	}
	if n := o.TotalCards(); n > DeckSize {
		return fmt.Errorf("%w: %d cards exceeds the %d-card deck", ErrMalformedObservation, n, DeckSize)
	}
	if o.PickupPile > NumPiles {
		return fmt.Errorf("%w: pickup pile %d out of range", ErrMalformedObservation, o.PickupPile)
	}
	if o.HandLen > 0 && o.PickupPile == 0 {
		return fmt.Errorf("%w: hand holds %d cards but pickup pile index is 0", ErrInconsistentHand, o.HandLen)
	}
	if o.HandLen == 0 && o.PickupPile != 0 {
		return fmt.Errorf("%w: hand is empty but pickup pile index is %d", ErrInconsistentHand, o.PickupPile)
	}
	return nil
}

// GameState is the mutable aggregate that owns every rule mutation. It
// embeds the Observation it mutates; Snapshot hands out a rescored copy.
type GameState struct {
	Observation
	Rules Rules
	RNG   uint64
	Sink  EventSink // nil discards events
}

// ---------------------------------------------------------------------------
// xorshift64 RNG, inline
// ---------------------------------------------------------------------------

func (g *GameState) nextRand() uint64 {
	x := g.RNG
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.RNG = x
	return x
}

// randN returns a random number in [0, n).
func (g *GameState) randN(n uint64) uint64 {
	return g.nextRand() % n
}

// NewSeed returns a non-deterministic seed for games whose caller did not
// supply one.
func NewSeed() uint64 {
	return rand.Uint64()
}

// ---------------------------------------------------------------------------
// NewGame and Deal
// ---------------------------------------------------------------------------

// mixSeed spreads seed with splitmix64 so neighbouring seeds start
// unrelated xorshift streams.
func mixSeed(seed uint64) uint64 {
	z := seed + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// NewGame initializes an undealt GameState with the given seed and rules.
// Every seed, including 0, selects its own shuffle.
func NewGame(seed uint64, rules Rules) GameState {
	var g GameState
	g.RNG = mixSeed(seed)
	if g.RNG == 0 {
		g.RNG = 1 // xorshift can't start at 0
	}
	g.Rules = rules
	return g
}

// FromObservation materializes a GameState around a copy of obs.
func FromObservation(obs Observation, sink EventSink) GameState {
	return GameState{Observation: obs, Rules: DefaultRules(), RNG: 1, Sink: sink}
}

// buildDeck returns the unshuffled two-deck set reduced to the rules' suits.
func (r Rules) buildDeck() [DeckSize]Card {
	var deck [DeckSize]Card
	idx := 0
	for d := 0; d < NumDecks; d++ {
		for rank := RankAce; rank <= RankKing; rank++ {
			for i := uint8(1); i <= 4; i++ {
				deck[idx] = NewCard(r.suitFor(i), rank)
				idx++
			}
		}
	}
	return deck
}

// Deal shuffles the deck, deals 54 cards round-robin across the piles, turns
// each pile's top card face-up and places the remainder in the bank.
func (g *GameState) Deal() {
	g.Observation = Observation{}

	deck := g.Rules.buildDeck()

	// Fisher-Yates shuffle.
	for i := DeckSize - 1; i > 0; i-- {
		j := int(g.randN(uint64(i + 1)))
		deck[i], deck[j] = deck[j], deck[i]
	}

	n := DeckSize
	for i := 0; i < InitialDeal; i++ {
		n--
		g.Piles[i%NumPiles].push(deck[n])
	}
	for i := range g.Piles {
		p := &g.Piles[i]
		p.Cards[p.Len-1] = p.Cards[p.Len-1].Up()
	}

	copy(g.Bank[:], deck[:n])
	g.BankLen = uint8(n)

	g.CalculateScore()
}

// Deal builds and deals a new game, returning its initial observation.
func Deal(seed uint64, rules Rules) (Observation, error) {
	if err := rules.Validate(); err != nil {
		return Observation{}, err
	}
	g := NewGame(seed, rules)
	g.Deal()
	return g.Snapshot(), nil
}

// Snapshot rescores the state and returns an independent copy of it.
func (g *GameState) Snapshot() Observation {
	g.CalculateScore()
	return g.Observation
}

func (g *GameState) emit(ev Event) {
	if g.Sink != nil {
		g.Sink.Emit(ev)
	}
}
