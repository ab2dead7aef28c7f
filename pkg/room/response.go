package room

import (
	"blackjack-server/pkg/ledger"
	"blackjack-server/pkg/playable"
	"blackjack-server/pkg/table"
)

func newErrorResponse(ctx string, err error) *playable.Response {
	return &playable.Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

func newRoundResponse(ctx string, round *table.Round) *playable.Response {
	return &playable.Response{
		Key:     "round",
		Value:   round.State.Status.String(),
		Data:    round,
		Context: ctx,
	}
}

type balanceData struct {
	Balance int64  `json:"balance"`
	Display string `json:"display"`
}

func newLogsResponse(messages []*playable.LogMessage) *playable.Response {
	return &playable.Response{
		Key:  "logs",
		Data: messages,
	}
}

func newBalanceResponse(ctx string, balance int64) *playable.Response {
	return &playable.Response{
		Key:   "balance",
		Value: ledger.FormatAmount(balance),
		Data: balanceData{
			Balance: balance,
			Display: ledger.FormatAmount(balance),
		},
		Context: ctx,
	}
}
