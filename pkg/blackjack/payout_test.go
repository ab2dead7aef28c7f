package blackjack

import (
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestPayout(t *testing.T) {
	a := assert.New(t)

	tests := map[Status]int64{
		StatusPlayerWon:    200,
		StatusDealerBusted: 200,
		StatusPush:         100,
		StatusDealerWon:    0,
		StatusPlayerBusted: 0,
	}

	for status, expected := range tests {
		amount, err := Payout(status, 100)
		a.NoError(err, status.String())
		a.Equal(expected, amount, status.String())
	}

	amount, err := Payout(StatusPlaying, 100)
	a.Equal(int64(0), amount)
	a.Equal(ErrRoundNotOver, err)

	_, err = Payout(StatusWaiting, 100)
	a.Equal(ErrRoundNotOver, err)
}

func TestPayout_wagerTooLarge(t *testing.T) {
	amount, err := Payout(StatusPlayerWon, MaxWager)
	assert.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-1), amount)

	amount, err = Payout(StatusPlayerWon, MaxWager+1)
	assert.Equal(t, ErrWagerTooLarge, err)
	assert.Equal(t, int64(0), amount)

	_, err = Payout(StatusPush, MaxWager+1)
	assert.Equal(t, ErrWagerTooLarge, err)
}
