package engine

import (
	"errors"
	"slices"
	"testing"
)

func TestModelRejectsInconsistentHand(t *testing.T) {
	var o Observation
	setPile(&o, 1, up(SuitSpades, RankFive))
	o.Hand[0] = up(SuitSpades, RankFour)
	o.HandLen = 1

	m := NewModel(nil)
	if _, err := m.Actions(o); !errors.Is(err, ErrInconsistentHand) {
		t.Errorf("Actions error = %v, want ErrInconsistentHand", err)
	}
	if _, err := m.LegalActions(o); !errors.Is(err, ErrInconsistentHand) {
		t.Errorf("LegalActions error = %v, want ErrInconsistentHand", err)
	}
	if _, err := m.Result(o, EncodePutDown(2)); !errors.Is(err, ErrInconsistentHand) {
		t.Errorf("Result error = %v, want ErrInconsistentHand", err)
	}
}

// TestModelResultOverfullPile verifies a put-down that would overflow a
// pile is refused as malformed input instead of reaching the pile arrays.
func TestModelResultOverfullPile(t *testing.T) {
	var o Observation
	cards := make([]Card, 0, DeckSize)
	for len(cards) < DeckSize-1 {
		cards = append(cards, down(SuitClubs, RankKing))
	}
	cards = append(cards, up(SuitSpades, RankFive))
	setPile(&o, 1, cards...)
	o.Hand[0] = up(SuitHearts, RankFour)
	o.HandLen = 1
	o.PickupPile = 2

	var m Model
	if _, err := m.Result(o, EncodePutDown(1)); !errors.Is(err, ErrMalformedObservation) {
		t.Errorf("Result error = %v, want ErrMalformedObservation", err)
	}
	if _, err := m.Actions(o); !errors.Is(err, ErrMalformedObservation) {
		t.Errorf("Actions error = %v, want ErrMalformedObservation", err)
	}
}

func TestModelResultActionOutOfRange(t *testing.T) {
	obs, _ := Deal(3, DefaultRules())
	var m Model
	if _, err := m.Result(obs, NumActions); !errors.Is(err, ErrActionOutOfRange) {
		t.Errorf("Result(%d) error = %v, want ErrActionOutOfRange", NumActions, err)
	}
}

// TestModelResultDoesNotMutate verifies Result leaves its input untouched.
func TestModelResultDoesNotMutate(t *testing.T) {
	obs, _ := Deal(3, DefaultRules())
	orig := obs
	var m Model
	next, err := m.Result(obs, ActionDrawBank)
	if err != nil {
		t.Fatal(err)
	}
	if obs != orig {
		t.Error("Result mutated its input")
	}
	if next == obs {
		t.Error("bank draw produced an identical observation")
	}
	checkInvariants(t, next)
}

func TestModelGoalTest(t *testing.T) {
	var m Model
	var o Observation
	for i := 0; i < NumSlots-1; i++ {
		o.Completed[i] = fullSlot(SuitDiamonds)
	}
	if m.GoalTest(o) {
		t.Error("GoalTest true with seven full slots")
	}
	o.Completed[NumSlots-1] = fullSlot(SuitDiamonds)
	if !m.GoalTest(o) {
		t.Error("GoalTest false with eight full slots")
	}
}

func TestModelIsChanceNode(t *testing.T) {
	var m Model
	obs, _ := Deal(5, DefaultRules())

	next, _ := m.Result(obs, ActionDrawBank)
	if !m.IsChanceNode(obs, ActionDrawBank, next) {
		t.Error("bank draw should be a chance node")
	}

	g := stackGame(t, nil)
	start := g.Snapshot()
	held, _ := m.Result(start, EncodePickUp(1))
	if m.IsChanceNode(start, EncodePickUp(1), held) {
		t.Error("plain pickup should not be a chance node")
	}
	held, _ = m.Result(held, EncodePickUp(1))
	// Putting 6S 7S onto 8H exposes the face-down 10S.
	placed, _ := m.Result(held, EncodePutDown(2))
	if !m.IsChanceNode(held, EncodePutDown(2), placed) {
		t.Error("put-down revealing a card should be a chance node")
	}
}

func TestModelScoring(t *testing.T) {
	var m Model
	g := stackGame(t, nil)
	obs := g.Snapshot()
	next, _ := m.Result(obs, EncodePickUp(1))

	if got := m.StepCost(obs, EncodePickUp(1), next); got != next.ComputeScore() {
		t.Errorf("StepCost = %d, want absolute score %d", got, next.ComputeScore())
	}
	if got := m.Evaluate(next); got != int(next.Score) {
		t.Errorf("Evaluate = %d, want %d", got, next.Score)
	}
	if m.Heuristic(next) != 0 {
		t.Errorf("Heuristic = %d, want 0", m.Heuristic(next))
	}
	if m.NumPiles(next) != 10 {
		t.Errorf("NumPiles = %d, want 10", m.NumPiles(next))
	}
}

// TestModelSuitCompletionScore plays a King..Two spade run plus an Ace
// through the Model and checks the resulting score.
func TestModelSuitCompletionScore(t *testing.T) {
	var o Observation
	cards := []Card{down(SuitHearts, RankThree)}
	for r := RankKing; r >= RankTwo; r-- {
		cards = append(cards, up(SuitSpades, r))
	}
	setPile(&o, 1, cards...)
	setPile(&o, 2, up(SuitSpades, RankAce))

	var m Model
	held, err := m.Result(o, EncodePickUp(2))
	if err != nil {
		t.Fatal(err)
	}
	next, err := m.Result(held, EncodePutDown(1))
	if err != nil {
		t.Fatal(err)
	}
	// 440 base, ten clear piles, one suit, one move.
	if got := m.Evaluate(next); got != 639 {
		t.Errorf("score = %d, want 639", got)
	}
	if next.CompletedCount() != 1 || next.Pile(1).Len != 1 || next.Pile(2).Len != 0 {
		t.Errorf("completed=%d pile1=%d pile2=%d", next.CompletedCount(), next.Pile(1).Len, next.Pile(2).Len)
	}
}

// TestModelRoundTrip verifies pickup followed by put-back restores the
// layout and counts one move.
func TestModelRoundTrip(t *testing.T) {
	var m Model
	obs, _ := Deal(11, DefaultRules())
	held, _ := m.Result(obs, EncodePickUp(4))
	back, _ := m.Result(held, EncodePutDown(4))

	if back.Piles != obs.Piles {
		t.Error("piles differ after pickup and put-back")
	}
	if back.NumMoves != obs.NumMoves+1 {
		t.Errorf("NumMoves = %d, want %d", back.NumMoves, obs.NumMoves+1)
	}
}

// TestModelIllegalActionsAreNoOps verifies every action outside the legal
// set leaves the observation unchanged apart from the score.
func TestModelIllegalActionsAreNoOps(t *testing.T) {
	var m Model
	obs, _ := Deal(21, DefaultRules())
	states := []Observation{obs}
	held, _ := m.Result(obs, EncodePickUp(1))
	states = append(states, held)

	for si, s := range states {
		legal, err := m.Actions(s)
		if err != nil {
			t.Fatal(err)
		}
		for a := uint16(0); a < NumActions; a++ {
			if slices.Contains(legal, a) {
				continue
			}
			if s.HandLen > 0 && a == EncodePutDown(s.PickupPile) {
				continue
			}
			next, err := m.Result(s, a)
			if err != nil {
				t.Fatalf("state %d action %d: %v", si, a, err)
			}
			want := s
			want.Score = int32(s.ComputeScore())
			if next != want {
				t.Errorf("state %d: illegal action %d changed the observation", si, a)
			}
		}
	}
}

func TestModelSinkReceivesEvents(t *testing.T) {
	rec := &recorder{}
	m := NewModel(rec)
	var o Observation
	setPile(&o, 1, up(SuitSpades, RankTwo))

	// Putting down with nothing held is rejected.
	if _, err := m.Result(o, EncodePutDown(3)); err != nil {
		t.Fatal(err)
	}
	ev := rec.last(t)
	if ev.Type != EventRejectedMove || ev.Reason != ReasonHandEmpty {
		t.Errorf("event = %+v, want rejected move with empty hand", ev)
	}

	if _, err := m.Result(o, ActionDrawBank); err != nil {
		t.Fatal(err)
	}
	if ev := rec.last(t); ev.Reason != ReasonBankEmpty {
		t.Errorf("reason = %v, want %v", ev.Reason, ReasonBankEmpty)
	}
}

// TestModelSinkFunc verifies a plain function can receive events.
func TestModelSinkFunc(t *testing.T) {
	var got []EventType
	m := NewModel(EventSinkFunc(func(ev Event) { got = append(got, ev.Type) }))
	obs, _ := Deal(4, DefaultRules())
	if _, err := m.Result(obs, ActionDrawBank); err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 || got[0] != EventBankDealt {
		t.Errorf("events = %v, want bank_dealt first", got)
	}
}

// TestModelNopSink verifies NopSink leaves results identical to a nil sink.
func TestModelNopSink(t *testing.T) {
	obs, _ := Deal(4, DefaultRules())
	a, _ := NewModel(NopSink{}).Result(obs, EncodePutDown(2))
	b, _ := NewModel(nil).Result(obs, EncodePutDown(2))
	if a != b {
		t.Error("NopSink changed the result")
	}
}
