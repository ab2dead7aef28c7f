package mux

import (
	"blackjack-server/pkg/table"
	"context"
	"net/http"
)

func (m *Mux) getRound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		round, ok := m.table.Round(accountFromContext(r.Context()))
		if !ok {
			writeJSONError(w, http.StatusNotFound, table.ErrNoRound)
			return
		}

		writeJSON(w, http.StatusOK, round)
	}
}

func (m *Mux) postRoundBet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload amountPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		account := accountFromContext(r.Context())
		balance, err := m.table.PlaceBet(r.Context(), account, payload.Amount)
		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, newBalanceResponse(account, balance))
	}
}

// postRoundAction handles deal, hit and stand
func (m *Mux) postRoundAction(action func(ctx context.Context, account string) (*table.Round, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		round, err := action(r.Context(), accountFromContext(r.Context()))
		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, round)
	}
}
