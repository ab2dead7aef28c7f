package blackjack

import (
	"errors"
	"math"
)

// MaxWager is the largest wager whose winning payout still fits in an int64
const MaxWager = math.MaxInt64 / 2

// ErrRoundNotOver is returned when a payout is requested for a round that is still in play
var ErrRoundNotOver = errors.New("round is not over")

// ErrWagerTooLarge is returned when a wager is above MaxWager
var ErrWagerTooLarge = errors.New("wager is too large")

// Payout returns what the house pays back for a wager that has already been collected
// A win returns the wager plus an equal amount, a push returns the wager, and a loss returns nothing
func Payout(status Status, wager int64) (int64, error) {
	if wager > MaxWager {
		return 0, ErrWagerTooLarge
	}

	switch status {
	case StatusPlayerWon, StatusDealerBusted:
		return wager * 2, nil
	case StatusPush:
		return wager, nil
	case StatusDealerWon, StatusPlayerBusted:
		return 0, nil
	}

	return 0, ErrRoundNotOver
}
