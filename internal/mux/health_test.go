package mux

import (
	"blackjack-server/internal/config"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/bmizerany/assert"
)

func TestHealthHandler(t *testing.T) {
	tbl := newTestTable()
	m := NewMux("v1.2.3", tbl)
	defer m.Close()

	ts := httptest.NewServer(m)
	defer ts.Close()

	var expects healthResponse
	assertGet(t, ts, "/health", &expects, 200)
	assert.Equal(t, "OK", expects.Status)
	assert.Equal(t, "v1.2.3", expects.Version)
	assert.Equal(t, config.Instance().Ledger.Driver, expects.Ledger)
	assert.Equal(t, 0, expects.ActiveRounds)

	if _, err := tbl.PlaceBet(context.Background(), "alice", 10); err != nil {
		t.Fatal(err)
	}

	assertGet(t, ts, "/health", &expects, 200)
	assert.Equal(t, 1, expects.ActiveRounds)
}
