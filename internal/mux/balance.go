package mux

import (
	"blackjack-server/pkg/ledger"
	"context"
	"errors"
	"net/http"
)

type balanceResponse struct {
	Account string `json:"account"`
	Balance int64  `json:"balance"`
	Display string `json:"display"`
}

func newBalanceResponse(account string, balance int64) balanceResponse {
	return balanceResponse{
		Account: account,
		Balance: balance,
		Display: ledger.FormatAmount(balance),
	}
}

var errDepositsDisabled = errors.New("deposits are disabled, transfer tokens to the house wallet instead")

type amountPayload struct {
	Amount int64 `json:"amount"`
}

func (m *Mux) getBalance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account := accountFromContext(r.Context())
		balance, err := m.table.Balance(r.Context(), account)
		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newBalanceResponse(account, balance))
	}
}

func (m *Mux) postDeposit() http.HandlerFunc {
	deposit := m.postAmount(m.table.Deposit)
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.options.allowDeposits {
			writeJSONError(w, http.StatusForbidden, errDepositsDisabled)
			return
		}

		deposit(w, r)
	}
}

func (m *Mux) postWithdraw() http.HandlerFunc {
	return m.postAmount(m.table.Withdraw)
}

// postAmount handles endpoints that move an amount in or out of the account
func (m *Mux) postAmount(fn func(ctx context.Context, account string, amount int64) (int64, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload amountPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		account := accountFromContext(r.Context())
		balance, err := fn(r.Context(), account, payload.Amount)
		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newBalanceResponse(account, balance))
	}
}
