package engine

import "fmt"

// EventType identifies what an Event reports.
type EventType uint8

const (
	EventRejectedMove  EventType = iota // 0: request left the state unchanged
	EventBankDealt                      // 1: one bank card dealt to every pile
	EventSuitCompleted                  // 2: a full run moved into a completed slot
	EventCardRevealed                   // 3: a pile's top card was turned face-up
)

func (t EventType) String() string {
	switch t {
	case EventRejectedMove:
		return "rejected_move"
	case EventBankDealt:
		return "bank_dealt"
	case EventSuitCompleted:
		return "suit_completed"
	case EventCardRevealed:
		return "card_revealed"
	}
	return fmt.Sprintf("event_type(%d)", uint8(t))
}

// RejectReason explains an EventRejectedMove.
type RejectReason uint8

const (
	ReasonNone              RejectReason = iota // 0
	ReasonBankEmpty                             // 1
	ReasonHandNotEmpty                          // 2
	ReasonHandEmpty                             // 3
	ReasonPileOutOfRange                        // 4
	ReasonPileEmpty                             // 5
	ReasonWrongSourcePile                       // 6
	ReasonCardFaceDown                          // 7
	ReasonNotStackable                          // 8
	ReasonInconsistentHand                      // 9
)

func (r RejectReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonBankEmpty:
		return "bank must have at least one card"
	case ReasonHandNotEmpty:
		return "hand must be empty"
	case ReasonHandEmpty:
		return "hand must have at least one card"
	case ReasonPileOutOfRange:
		return "pile index must be between 1 and 10"
	case ReasonPileEmpty:
		return "pile must have at least one card"
	case ReasonWrongSourcePile:
		return "cards can only be picked up from the same pile"
	case ReasonCardFaceDown:
		return "cannot pick up a face-down card"
	case ReasonNotStackable:
		return "card does not follow the held run"
	case ReasonInconsistentHand:
		return "hand is not empty but pickup pile index is 0"
	}
	return fmt.Sprintf("reject_reason(%d)", uint8(r))
}

// Event is a diagnostic emitted by GameState mutations. Pile and Slot are
// 1-based; zero means not applicable.
type Event struct {
	Type   EventType
	Move   Move
	Pile   uint8
	Slot   uint8
	Reason RejectReason
}

// EventSink receives engine events. Implementations must not retain
// references into engine state; Event is a plain value.
type EventSink interface {
	Emit(Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

// Emit calls f(ev).
func (f EventSinkFunc) Emit(ev Event) { f(ev) }

// NopSink discards every event.
type NopSink struct{}

// Emit does nothing.
func (NopSink) Emit(Event) {}
