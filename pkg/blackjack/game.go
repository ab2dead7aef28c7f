package blackjack

import (
	"errors"
	"fmt"

	"blackjack-server/internal/rng"
	"blackjack-server/pkg/deck"
)

// ErrDeckExhausted is the panic value when a card is needed and the deck is empty
// A single deck and a single hand cannot run out, so this is an invariant violation
var ErrDeckExhausted = errors.New("deck exhausted")

// Hand is the cards dealt to one party and their score
type Hand struct {
	Cards deck.Hand `json:"cards"`
	Score int       `json:"score"`
}

func newHand(cards deck.Hand) Hand {
	return Hand{
		Cards: cards,
		Score: Score(cards),
	}
}

// IsSoft returns true if the hand counts an ace as 11
func (h Hand) IsSoft() bool {
	return IsSoft(h.Cards)
}

// IsBusted returns true if the score exceeds 21
func (h Hand) IsBusted() bool {
	return h.Score > Blackjack
}

func (h Hand) clone() Hand {
	return Hand{
		Cards: h.Cards.Clone(),
		Score: h.Score,
	}
}

// GameState is everything needed to continue a round
// Transitions never modify a GameState in place, they return a new one
type GameState struct {
	Deck       *deck.Deck `json:"-"`
	PlayerHand Hand       `json:"playerHand"`
	DealerHand Hand       `json:"dealerHand"`
	Status     Status     `json:"gameStatus"`
	CanHit     bool       `json:"canHit"`
	CanStand   bool       `json:"canStand"`
}

// Clone returns a deep copy of the game state
func (g *GameState) Clone() *GameState {
	cp := *g
	if g.Deck != nil {
		cp.Deck = g.Deck.Clone()
	}

	cp.PlayerHand = g.PlayerHand.clone()
	cp.DealerHand = g.DealerHand.clone()
	return &cp
}

// NewDeck returns a shuffled 52 card deck
func NewDeck(r rng.Generator) *deck.Deck {
	d := deck.New()
	d.Shuffle(r)
	return d
}

// InitializeGame deals a new round from a fresh deck
// The player receives two cards, the dealer receives one visible card and one hidden hole card
func InitializeGame(r rng.Generator) *GameState {
	g := &GameState{
		Deck: NewDeck(r),
	}

	player := deck.Hand{g.draw("player"), g.draw("player")}

	up := g.draw("dealer")
	hole := g.draw("dealer")
	hole.Hidden = true
	dealer := deck.Hand{up, hole}

	g.PlayerHand = newHand(player)
	g.DealerHand = newHand(dealer)
	g.Status = StatusPlaying
	g.CanHit = true
	g.CanStand = true

	return g
}

// Hit deals one card to the player
// If the player cannot hit, the state is returned as-is
func Hit(state *GameState) *GameState {
	if state == nil || !state.CanHit {
		return state
	}

	g := state.Clone()
	g.PlayerHand.Cards.AddCard(g.draw("player"))
	g.PlayerHand.Score = Score(g.PlayerHand.Cards)

	if g.PlayerHand.IsBusted() {
		g.Status = StatusPlayerBusted
		g.CanHit = false
		g.CanStand = false
	}

	return g
}

// Stand ends the player's turn, reveals the hole card and plays out the dealer's hand
// If the player cannot stand, the state is returned as-is
func Stand(state *GameState) *GameState {
	if state == nil || !state.CanStand {
		return state
	}

	g := state.Clone()
	g.CanHit = false
	g.CanStand = false

	for i, card := range g.DealerHand.Cards {
		g.DealerHand.Cards[i] = card.Revealed()
	}
	g.DealerHand.Score = Score(g.DealerHand.Cards)

	for g.DealerHand.Score < dealerStandsOn {
		g.DealerHand.Cards.AddCard(g.draw("dealer"))
		g.DealerHand.Score = Score(g.DealerHand.Cards)
	}

	g.Status = resolve(g.PlayerHand.Score, g.DealerHand.Score)
	return g
}

func resolve(player, dealer int) Status {
	switch {
	case dealer > Blackjack:
		return StatusDealerBusted
	case dealer > player:
		return StatusDealerWon
	case dealer < player:
		return StatusPlayerWon
	}

	return StatusPush
}

func (g *GameState) draw(to string) *deck.Card {
	if g.Deck == nil {
		panic(fmt.Errorf("could not deal to the %s: %w", to, ErrDeckExhausted))
	}

	card, err := g.Deck.Draw()
	if err != nil {
		panic(fmt.Errorf("could not deal to the %s: %w", to, ErrDeckExhausted))
	}

	return card
}
