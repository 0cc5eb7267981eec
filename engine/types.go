package engine

import "fmt"

// Suit constants. Suit 0 is the sentinel used for hidden or absent cards.
const (
	SuitNone     uint8 = 0
	SuitSpades   uint8 = 1
	SuitHearts   uint8 = 2
	SuitDiamonds uint8 = 3
	SuitClubs    uint8 = 4
)

// Rank constants. Rank 0 is the sentinel used for hidden or absent cards.
const (
	RankNone  uint8 = 0
	RankAce   uint8 = 1
	RankTwo   uint8 = 2
	RankThree uint8 = 3
	RankFour  uint8 = 4
	RankFive  uint8 = 5
	RankSix   uint8 = 6
	RankSeven uint8 = 7
	RankEight uint8 = 8
	RankNine  uint8 = 9
	RankTen   uint8 = 10
	RankJack  uint8 = 11
	RankQueen uint8 = 12
	RankKing  uint8 = 13
)

// Card is a packed uint8: bits 0-3 = rank, bits 4-6 = suit, bit 7 = face-up.
type Card uint8

// EmptyCard is the sentinel card: rank 0, suit 0, face-down.
const EmptyCard Card = 0

const faceUpBit Card = 1 << 7

// NewCard constructs a face-down Card from suit and rank.
func NewCard(suit, rank uint8) Card {
	return Card((suit&0x07)<<4 | (rank & 0x0F))
}

// Rank returns the rank bits (lower 4).
func (c Card) Rank() uint8 { return uint8(c) & 0x0F }

// Suit returns the suit bits (4-6).
func (c Card) Suit() uint8 { return (uint8(c) >> 4) & 0x07 }

// FaceUp reports whether the card is visible.
func (c Card) FaceUp() bool { return c&faceUpBit != 0 }

// Up returns a face-up copy of c.
func (c Card) Up() Card { return c | faceUpBit }

// Down returns a face-down copy of c.
func (c Card) Down() Card { return c &^ faceUpBit }

// Continues reports whether next may follow c in a held run: same suit,
// exactly one rank higher, and face-up.
func (c Card) Continues(next Card) bool {
	return next.FaceUp() && next.Suit() == c.Suit() && next.Rank() == c.Rank()+1
}

// AcceptedBy reports whether c may be placed on top of target. Suit is not
// considered, only rank adjacency and visibility of target.
func (c Card) AcceptedBy(target Card) bool {
	return target.FaceUp() && c.Rank()+1 == target.Rank()
}

func (c Card) String() string {
	if c.Rank() == RankNone || c.Suit() == SuitNone {
		return "XX"
	}
	const ranks = "?A23456789TJQK"
	const suits = "?SHDC"
	s := string([]byte{ranks[c.Rank()], suits[c.Suit()]})
	if !c.FaceUp() {
		return "(" + s + ")"
	}
	return s
}

// ---------------------------------------------------------------------------
// Action index constants
// ---------------------------------------------------------------------------
//
// Layout (wire contract shared with every agent and search collaborator):
//   0       DrawBank
//   1..10   PickUp(pile 1..10)
//   11..20  PutDown(pile 1..10)

const (
	ActionDrawBank    uint16 = 0
	ActionBasePickUp  uint16 = 1
	ActionBasePutDown uint16 = ActionBasePickUp + NumPiles

	NumActions uint16 = 1 + 2*NumPiles
)

// EncodePickUp returns the action index for picking up from pile (1-based).
func EncodePickUp(pile uint8) uint16 { return ActionBasePickUp + uint16(pile) - 1 }

// EncodePutDown returns the action index for putting the hand down on pile (1-based).
func EncodePutDown(pile uint8) uint16 { return ActionBasePutDown + uint16(pile) - 1 }

// ActionIsPickUp returns the 1-based pile if idx encodes a PickUp action.
func ActionIsPickUp(idx uint16) (pile uint8, ok bool) {
	if idx >= ActionBasePickUp && idx < ActionBasePutDown {
		return uint8(idx-ActionBasePickUp) + 1, true
	}
	return 0, false
}

// ActionIsPutDown returns the 1-based pile if idx encodes a PutDown action.
func ActionIsPutDown(idx uint16) (pile uint8, ok bool) {
	if idx >= ActionBasePutDown && idx < NumActions {
		return uint8(idx-ActionBasePutDown) + 1, true
	}
	return 0, false
}

// MoveKind tags the variant held by a Move.
type MoveKind uint8

const (
	MoveDrawBank MoveKind = iota // 0
	MovePickUp                   // 1
	MovePutDown                  // 2
)

func (k MoveKind) String() string {
	switch k {
	case MoveDrawBank:
		return "draw_bank"
	case MovePickUp:
		return "pick_up"
	case MovePutDown:
		return "put_down"
	}
	return fmt.Sprintf("move_kind(%d)", uint8(k))
}

// Move is the decoded form of an action index. Pile is 1-based and unused
// for MoveDrawBank.
type Move struct {
	Kind MoveKind
	Pile uint8
}

// DecodeAction converts an action index into a Move.
func DecodeAction(idx uint16) (Move, error) {
	if idx == ActionDrawBank {
		return Move{Kind: MoveDrawBank}, nil
	}
	if pile, ok := ActionIsPickUp(idx); ok {
		return Move{Kind: MovePickUp, Pile: pile}, nil
	}
	if pile, ok := ActionIsPutDown(idx); ok {
		return Move{Kind: MovePutDown, Pile: pile}, nil
	}
	return Move{}, fmt.Errorf("%w: %d (want 0..%d)", ErrActionOutOfRange, idx, NumActions-1)
}

// Action returns the action index for m.
func (m Move) Action() uint16 {
	switch m.Kind {
	case MovePickUp:
		return EncodePickUp(m.Pile)
	case MovePutDown:
		return EncodePutDown(m.Pile)
	}
	return ActionDrawBank
}

func (m Move) String() string {
	if m.Kind == MoveDrawBank {
		return m.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", m.Kind, m.Pile)
}
