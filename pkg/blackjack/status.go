package blackjack

import (
	"encoding/json"
	"fmt"
)

// Status is where a round is in its lifecycle
type Status int

// Status constants
const (
	StatusWaiting Status = iota
	StatusPlaying
	StatusPlayerWon
	StatusDealerWon
	StatusPush
	StatusPlayerBusted
	StatusDealerBusted
)

func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusPlaying:
		return "playing"
	case StatusPlayerWon:
		return "playerWon"
	case StatusDealerWon:
		return "dealerWon"
	case StatusPush:
		return "push"
	case StatusPlayerBusted:
		return "playerBusted"
	case StatusDealerBusted:
		return "dealerBusted"
	}

	panic(fmt.Sprintf("invalid status: %d", s))
}

// MarshalJSON encodes the status by name
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// IsTerminal returns true if the round is over
func (s Status) IsTerminal() bool {
	switch s {
	case StatusPlayerWon, StatusDealerWon, StatusPush, StatusPlayerBusted, StatusDealerBusted:
		return true
	}

	return false
}

// Message returns a human friendly description of the status
func (s Status) Message() string {
	switch s {
	case StatusWaiting:
		return "Place a bet and deal to start"
	case StatusPlaying:
		return "Your turn! Hit or Stand?"
	case StatusPlayerWon:
		return "You won!"
	case StatusDealerWon:
		return "Dealer won"
	case StatusPush:
		return "It's a tie"
	case StatusPlayerBusted:
		return "Bust! You went over 21"
	case StatusDealerBusted:
		return "Dealer busted! You won!"
	}

	return s.String()
}
