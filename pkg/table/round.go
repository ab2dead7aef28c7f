package table

import (
	"blackjack-server/pkg/blackjack"
	"encoding/json"
	"time"
)

// Round is one bet and the hand played for it
type Round struct {
	UUID    string
	Account string
	Wager   int64
	State   *blackjack.GameState
	// Payout is what was credited back to the account once the round settled
	Payout  int64
	Settled bool
	Started time.Time
}

// IsOver returns true once the hand has reached a terminal status
func (r *Round) IsOver() bool {
	return r.State.Status.IsTerminal()
}

func (r *Round) clone() *Round {
	cp := *r
	return &cp
}

type roundJSON struct {
	UUID           string           `json:"uuid"`
	Wager          int64            `json:"wager"`
	Payout         int64            `json:"payout"`
	Settled        bool             `json:"settled"`
	GameStatus     blackjack.Status `json:"gameStatus"`
	Message        string           `json:"message"`
	PlayerHand     blackjack.Hand   `json:"playerHand"`
	DealerHand     blackjack.Hand   `json:"dealerHand"`
	CanHit         bool             `json:"canHit"`
	CanStand       bool             `json:"canStand"`
	CardsRemaining int              `json:"cardsRemaining"`
	Started        time.Time        `json:"started"`
}

// MarshalJSON provides custom JSON marshalling for round
// The remaining deck is never sent, only its size
func (r *Round) MarshalJSON() ([]byte, error) {
	return json.Marshal(roundJSON{
		UUID:           r.UUID,
		Wager:          r.Wager,
		Payout:         r.Payout,
		Settled:        r.Settled,
		GameStatus:     r.State.Status,
		Message:        r.State.Status.Message(),
		PlayerHand:     r.State.PlayerHand,
		DealerHand:     r.State.DealerHand,
		CanHit:         r.State.CanHit,
		CanStand:       r.State.CanStand,
		CardsRemaining: r.State.Deck.CardsLeft(),
		Started:        r.Started,
	})
}
