package main

import (
	"blackjack-server/internal/rng"
	"blackjack-server/pkg/deck"
	"blackjack-server/pkg/ledger"
	"blackjack-server/pkg/table"
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestGame(input string, bankroll int64) (*game, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &game{
		table:  table.NewTable(logrus.StandardLogger(), ledger.NewMemory(bankroll), rng.NewSeeded(3)),
		in:     bufio.NewReader(strings.NewReader(input)),
		out:    out,
		wager:  10,
		prompt: "? ",
	}, out
}

func TestGame_run(t *testing.T) {
	// deal one round, stand, then quit
	g, out := newTestGame("y\ns\nn\n", 100)
	assert.NoError(t, g.run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Balance: 0.0000001 $HOUSE")
	assert.Contains(t, output, "Dealer:")
	assert.Contains(t, output, "> player placed a bet of 0.00000001 $HOUSE")

	round, ok := g.table.Round(account)
	assert.True(t, ok)
	assert.True(t, round.Settled)
}

func TestGame_run_brokeStops(t *testing.T) {
	g, out := newTestGame("", 5)
	assert.NoError(t, g.run(context.Background()))
	assert.Contains(t, out.String(), "Not enough to bet")
}

func Test_renderCards(t *testing.T) {
	cards := deck.CardsFromString("14s,?10h")
	rendered := renderCards(cards)
	assert.Contains(t, rendered, "A♠")
	assert.Contains(t, rendered, "??")
	assert.NotContains(t, rendered, "10")
}
