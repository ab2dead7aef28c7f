package blackjack

import (
	"blackjack-server/internal/rng"
	"blackjack-server/pkg/deck"
	"blackjack-server/pkg/snapshot"
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewDeck(t *testing.T) {
	a := assert.New(t)

	for seed := int64(1); seed <= 20; seed++ {
		d := NewDeck(rng.NewSeeded(seed))
		a.Equal(52, d.CardsLeft())

		seen := make(map[string]int)
		for _, card := range d.Cards {
			a.False(card.Hidden)
			seen[deck.CardToString(card)]++
		}

		for _, suit := range deck.Suits {
			for _, rank := range deck.Ranks {
				card := deck.Card{Rank: rank, Suit: suit}
				a.Equal(1, seen[deck.CardToString(&card)], card.String())
			}
		}
	}

	a.Equal(NewDeck(rng.NewSeeded(5)).HashCode(), NewDeck(rng.NewSeeded(5)).HashCode())
	a.NotEqual(deck.New().HashCode(), NewDeck(rng.NewSeeded(5)).HashCode())
}

func TestInitializeGame(t *testing.T) {
	a := assert.New(t)

	expected := NewDeck(rng.NewSeeded(7))
	g := InitializeGame(rng.NewSeeded(7))

	a.Equal(StatusPlaying, g.Status)
	a.True(g.CanHit)
	a.True(g.CanStand)
	a.Equal(48, g.Deck.CardsLeft())

	a.Equal(2, len(g.PlayerHand.Cards))
	a.Equal(2, len(g.DealerHand.Cards))

	// cards come off the top of the deck: player, player, dealer, dealer
	a.True(g.PlayerHand.Cards[0].Equal(expected.Cards[51]))
	a.True(g.PlayerHand.Cards[1].Equal(expected.Cards[50]))
	a.True(g.DealerHand.Cards[0].Equal(expected.Cards[49]))
	a.True(g.DealerHand.Cards[1].Equal(expected.Cards[48]))

	a.False(g.PlayerHand.Cards[0].Hidden)
	a.False(g.PlayerHand.Cards[1].Hidden)
	a.False(g.DealerHand.Cards[0].Hidden)
	a.True(g.DealerHand.Cards[1].Hidden)

	a.Equal(Score(g.PlayerHand.Cards), g.PlayerHand.Score)
	a.Equal(CardValue(g.DealerHand.Cards[0]), g.DealerHand.Score)
}

func TestInitializeGame_manySeeds(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		g := InitializeGame(rng.NewSeeded(seed))
		assert.Equal(t, 2, len(g.PlayerHand.Cards))
		assert.Equal(t, 2, len(g.DealerHand.Cards))
		assert.True(t, g.DealerHand.Cards[1].Hidden)
		assert.Equal(t, StatusPlaying, g.Status)
		assert.True(t, g.CanHit && g.CanStand)
	}
}

func TestHit(t *testing.T) {
	a := assert.New(t)

	g := riggedState("10c,2d", "6s,?8h", "5c,9d")
	next := Hit(g)

	a.Equal("10c,2d,5c", next.PlayerHand.Cards.String())
	a.Equal(17, next.PlayerHand.Score)
	a.Equal(StatusPlaying, next.Status)
	a.True(next.CanHit)
	a.True(next.CanStand)
	a.Equal(1, next.Deck.CardsLeft())

	// the previous state is untouched
	a.Equal("10c,2d", g.PlayerHand.Cards.String())
	a.Equal(12, g.PlayerHand.Score)
	a.Equal(2, g.Deck.CardsLeft())
}

func TestHit_bust(t *testing.T) {
	a := assert.New(t)

	g := riggedState("10c,9d", "6s,?8h", "5c,7d")
	next := Hit(g)

	a.Equal(24, next.PlayerHand.Score)
	a.Equal(StatusPlayerBusted, next.Status)
	a.False(next.CanHit)
	a.False(next.CanStand)

	// the dealer does not play and the hole card stays hidden
	a.Equal("6s,?8h", next.DealerHand.Cards.String())
	a.Equal(6, next.DealerHand.Score)

	a.Same(next, Hit(next))
	a.Same(next, Stand(next))
	a.Equal(1, next.Deck.CardsLeft())
}

func TestHit_softAceSaves(t *testing.T) {
	g := riggedState("14c,6d", "10s,?7h", "9c")
	next := Hit(g)

	assert.Equal(t, 16, next.PlayerHand.Score)
	assert.Equal(t, StatusPlaying, next.Status)
	assert.False(t, next.PlayerHand.IsSoft())
}

func TestHit_cannotHit(t *testing.T) {
	g := riggedState("10c,2d", "6s,?8h", "5c")
	g.CanHit = false

	assert.Same(t, g, Hit(g))
	assert.Equal(t, 1, g.Deck.CardsLeft())
	assert.Nil(t, Hit(nil))
}

func TestHit_deckExhausted(t *testing.T) {
	g := riggedState("2c,2d", "6s,?8h", "")
	assert.PanicsWithError(t, "could not deal to the player: deck exhausted", func() {
		Hit(g)
	})
}

func TestStand_dealerStandsOn17(t *testing.T) {
	a := assert.New(t)

	g := riggedState("10c,8d", "10s,?7h", "5c")
	next := Stand(g)

	a.Equal("10s,7h", next.DealerHand.Cards.String())
	a.Equal(17, next.DealerHand.Score)
	a.Equal(StatusPlayerWon, next.Status)
	a.False(next.CanHit)
	a.False(next.CanStand)
	a.Equal(1, next.Deck.CardsLeft())

	// previous state keeps its hole card hidden
	a.Equal("10s,?7h", g.DealerHand.Cards.String())
	a.Equal(10, g.DealerHand.Score)
	a.True(g.CanStand)
}

func TestStand_dealerStandsOnSoft17(t *testing.T) {
	g := riggedState("10c,9d", "14s,?6h", "5c")
	next := Stand(g)

	assert.Equal(t, 17, next.DealerHand.Score)
	assert.True(t, next.DealerHand.IsSoft())
	assert.Equal(t, 2, len(next.DealerHand.Cards))
	assert.Equal(t, StatusPlayerWon, next.Status)
}

func TestStand_dealerWins(t *testing.T) {
	a := assert.New(t)

	// dealer reveals 14 and draws to 21
	g := riggedState("10c,9d", "6s,?8h", "7c,10d")
	next := Stand(g)

	a.Equal("6s,8h,7c", next.DealerHand.Cards.String())
	a.Equal(21, next.DealerHand.Score)
	a.Equal(StatusDealerWon, next.Status)
}

func TestStand_dealerBusts(t *testing.T) {
	a := assert.New(t)

	g := riggedState("10c,9d", "6s,?8h", "10c,7d")
	next := Stand(g)

	a.Equal("6s,8h,10c", next.DealerHand.Cards.String())
	a.Equal(24, next.DealerHand.Score)
	a.Equal(StatusDealerBusted, next.Status)
}

func TestStand_dealerDrawsSeveral(t *testing.T) {
	a := assert.New(t)

	g := riggedState("10c,8d", "2s,?3h", "2c,2d,14h,3c,9s")
	next := Stand(g)

	// 5, 7, 9, 20 (ace as 11)
	a.Equal("2s,3h,2c,2d,14h", next.DealerHand.Cards.String())
	a.Equal(20, next.DealerHand.Score)
	a.Equal(StatusDealerWon, next.Status)
	a.Equal(2, next.Deck.CardsLeft())
}

func TestStand_push(t *testing.T) {
	g := riggedState("10c,13d", "12s,?11h", "5c")
	next := Stand(g)

	assert.Equal(t, 20, next.PlayerHand.Score)
	assert.Equal(t, 20, next.DealerHand.Score)
	assert.Equal(t, StatusPush, next.Status)
}

func TestStand_cannotStand(t *testing.T) {
	g := riggedState("10c,2d", "6s,?8h", "5c")
	g.CanStand = false

	assert.Same(t, g, Stand(g))
	assert.Equal(t, "6s,?8h", g.DealerHand.Cards.String())
}

func TestStand_deckExhausted(t *testing.T) {
	g := riggedState("10c,9d", "2s,?3h", "2c")
	assert.PanicsWithError(t, "could not deal to the dealer: deck exhausted", func() {
		Stand(g)
	})
}

// plays many seeded rounds with a simple strategy and checks the dealer rule holds
func TestRounds_dealerRule(t *testing.T) {
	for seed := int64(0); seed < 500; seed++ {
		g := InitializeGame(rng.NewSeeded(seed))
		for g.PlayerHand.Score < 15 {
			g = Hit(g)
		}

		if g.Status == StatusPlayerBusted {
			assert.Equal(t, 2, len(g.DealerHand.Cards))
			continue
		}

		g = Stand(g)
		msg := fmt.Sprintf("seed %d", seed)
		assert.True(t, g.Status.IsTerminal(), msg)
		assert.True(t, g.DealerHand.Score >= 17, msg)

		dealer := g.DealerHand.Cards
		for i := 2; i < len(dealer); i++ {
			// every drawn card was drawn while the dealer was below 17
			assert.True(t, Score(dealer[:i]) < 17, msg)
		}

		for _, card := range dealer {
			assert.False(t, card.Hidden, msg)
		}

		assert.Equal(t, 52, len(g.PlayerHand.Cards)+len(g.DealerHand.Cards)+g.Deck.CardsLeft(), msg)
	}
}

func TestGameState_Clone(t *testing.T) {
	g := riggedState("10c,2d", "6s,?8h", "5c")
	cp := g.Clone()
	cp.PlayerHand.Cards[0].Rank = 2
	cp.DealerHand.Cards[1].Hidden = false
	cp.Deck.Cards = nil

	assert.Equal(t, "10c,2d", g.PlayerHand.Cards.String())
	assert.Equal(t, "6s,?8h", g.DealerHand.Cards.String())
	assert.Equal(t, 1, g.Deck.CardsLeft())
}

func TestGameState_MarshalJSON(t *testing.T) {
	state := riggedState("10h,9c", "6s,?8d", "13s")
	snapshot.ValidateSnapshot(t, state, "hole card must stay hidden")

	snapshot.ValidateSnapshot(t, Stand(state))
}
