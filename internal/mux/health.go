package mux

import "net/http"

type healthResponse struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	Ledger       string `json:"ledger"`
	ActiveRounds int    `json:"activeRounds"`
}

// getHealth reports the build and which ledger backs the table
// activeRounds counts the accounts that have money on the table right now
func (m *Mux) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:       "OK",
			Version:      m.version,
			Ledger:       m.options.ledgerDriver,
			ActiveRounds: m.table.ActiveRounds(),
		})
	}
}
