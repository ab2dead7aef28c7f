package table

import (
	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/ledger"
	"errors"
)

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// user errors
var (
	ErrInvalidWager     = UserError("wager must be greater than zero")
	ErrBetAlreadyPlaced = UserError("a bet has already been placed")
	ErrNoBet            = UserError("place a bet first")
	ErrRoundInProgress  = UserError("finish the current round first")
	ErrNoRound          = UserError("no round in progress")
)

// ErrActionInProgress is returned when an account sends a new action before the previous one finished
var ErrActionInProgress = errors.New("another action is in progress")

// IsUserError returns true if the error message is safe to show to the account holder
func IsUserError(err error) bool {
	var ue UserError
	if errors.As(err, &ue) {
		return true
	}

	return errors.Is(err, ErrActionInProgress) ||
		errors.Is(err, ledger.ErrInsufficientFunds) ||
		errors.Is(err, ledger.ErrInvalidAmount) ||
		errors.Is(err, ledger.ErrBalanceOverflow) ||
		errors.Is(err, blackjack.ErrWagerTooLarge) ||
		errors.Is(err, ledger.ErrInvalidAccount)
}
