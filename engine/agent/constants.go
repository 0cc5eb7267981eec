package agent

import engine "github.com/Nathaniel-Reeves/CS4300-Artificial-Intelligence/engine"

// Feature layout for Encode. Each pile contributes PileDim features:
//
//	[0]     face-down count / MaxFaceDown
//	[1]     face-up count / NumRanks (clamped to 1)
//	[2-15]  top rank one-hot (0 = empty or hidden, 1..13 = Ace..King)
//	[16-20] top suit one-hot (0 = empty or hidden, 1..4 = S, H, D, C)
const (
	RankDim = engine.NumRanks + 1 // 14
	SuitDim = 5
	PileDim = 2 + RankDim + SuitDim // 21

	PickupDim = engine.NumPiles + 1 // 11: 0 = no pickup, 1..10 = source pile

	// MaxFaceDown is the largest face-down count any pile can hold; face-down
	// cards are only created by the deal.
	MaxFaceDown = 5

	// BankDeals is the number of bank deals available after the deal.
	BankDeals = engine.BankSize / engine.NumPiles // 5

	// MoveScale normalises the move counter. It matches the default
	// episode step cap.
	MoveScale = 700

	InputDim = engine.NumPiles*PileDim + // 210
		1 + // bank deals remaining
		1 + // hand length
		RankDim + // hand bottom rank
		PickupDim + // pickup pile
		1 + // completed slots
		1 // moves
	// = 239
)
