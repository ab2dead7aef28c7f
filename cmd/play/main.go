package main

import (
	"blackjack-server/internal/rng"
	"blackjack-server/pkg/deck"
	"blackjack-server/pkg/ledger"
	"blackjack-server/pkg/table"
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const account = "player"

type cli struct {
	Seed     int64 `kong:"default='0',help='Seed for a reproducible shuffle, 0 uses crypto/rand'"`
	Bet      int64 `kong:"default='10',help='Whole tokens to bet each round'"`
	Bankroll int64 `kong:"default='100',help='Whole tokens to start with'"`
}

var (
	redCard   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	blackCard = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	faceDown  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
	result    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
)

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("play"),
		kong.Description("Play blackjack against the dealer in the terminal"),
		kong.UsageOnError(),
	)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		ctx.Fatalf("play must be run from an interactive terminal")
	}

	if c.Bet <= 0 || c.Bankroll <= 0 {
		ctx.Fatalf("--bet and --bankroll must be greater than zero")
	}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	g := &game{
		table:  table.NewTable(logger, ledger.NewMemory(ledger.Tokens(c.Bankroll)), rng.ForSeed(c.Seed)),
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		wager:  ledger.Tokens(c.Bet),
		prompt: "(h)it or (s)tand? ",
	}

	if err := g.run(context.Background()); err != nil && !errors.Is(err, io.EOF) {
		ctx.FatalIfErrorf(err)
	}
}

type game struct {
	table  *table.Table
	in     *bufio.Reader
	out    io.Writer
	wager  int64
	prompt string
}

func (g *game) run(ctx context.Context) error {
	for {
		balance, err := g.table.Balance(ctx, account)
		if err != nil {
			return err
		}

		g.printf("\nBalance: %s\n", ledger.FormatAmount(balance))
		if balance < g.wager {
			g.printf("Not enough to bet %s. Thanks for playing!\n", ledger.FormatAmount(g.wager))
			return nil
		}

		answer, err := g.ask(fmt.Sprintf("Bet %s and deal? (Y/n) ", ledger.FormatAmount(g.wager)))
		if err != nil {
			return err
		}

		if answer != "" && answer[0] != 'y' {
			return nil
		}

		if err := g.playRound(ctx); err != nil {
			return err
		}
	}
}

func (g *game) playRound(ctx context.Context) error {
	if _, err := g.table.PlaceBet(ctx, account, g.wager); err != nil {
		return err
	}

	round, err := g.table.Deal(ctx, account)
	if err != nil {
		return err
	}
	g.printLogs()

	for !round.IsOver() {
		g.printRound(round)

		answer, err := g.ask(g.prompt)
		if err != nil {
			return err
		}

		switch {
		case strings.HasPrefix(answer, "h"):
			round, err = g.table.Hit(ctx, account)
		case strings.HasPrefix(answer, "s"):
			round, err = g.table.Stand(ctx, account)
		default:
			continue
		}

		if err != nil {
			return err
		}
		g.printLogs()
	}

	g.printRound(round)
	g.printf("%s\n", result.Render(round.State.Status.Message()))
	return nil
}

func (g *game) printRound(round *table.Round) {
	state := round.State
	g.printf("Dealer: %s (%d)\n", renderCards(state.DealerHand.Cards), state.DealerHand.Score)
	g.printf("You:    %s (%d)\n", renderCards(state.PlayerHand.Cards), state.PlayerHand.Score)
}

func renderCards(cards deck.Hand) string {
	rendered := make([]string, len(cards))
	for i, card := range cards {
		switch {
		case card.Hidden:
			rendered[i] = faceDown.Render(card.String())
		case card.Suit == deck.Hearts || card.Suit == deck.Diamonds:
			rendered[i] = redCard.Render(card.String())
		default:
			rendered[i] = blackCard.Render(card.String())
		}
	}

	return strings.Join(rendered, " ")
}

// printLogs prints whatever the table logged so far without waiting for more
func (g *game) printLogs() {
	for {
		select {
		case messages := <-g.table.LogChan():
			for _, msg := range messages {
				if msg.Account != "" {
					g.printf("> %s %s\n", msg.Account, msg.Message)
				} else {
					g.printf("> %s\n", msg.Message)
				}
			}
		default:
			return
		}
	}
}

func (g *game) ask(question string) (string, error) {
	g.printf("%s", question)
	str, err := g.in.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.ToLower(strings.TrimSpace(str)), nil
}

func (g *game) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(g.out, format, a...)
}
