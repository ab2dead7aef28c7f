package deck

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits is the fixed enumeration order used when building a deck
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`

	// Hidden is only set on the dealer's hole card while the player is acting
	Hidden bool `json:"hidden"`
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// Ranks is the fixed enumeration order used when building a deck: A, 2-10, J, Q, K
var Ranks = []int{Ace, 2, 3, 4, 5, 6, 7, 8, 9, 10, Jack, Queen, King}

// RankSymbol returns the rank as it is printed on the card (A, 2-10, J, Q, K)
func (c *Card) RankSymbol() string {
	switch c.Rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}

	return strconv.Itoa(c.Rank)
}

func (c *Card) String() string {
	if c.Hidden {
		return "??"
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", c.RankSymbol(), suit)
}

type cardJSON struct {
	Rank   int    `json:"rank,omitempty"`
	Symbol string `json:"symbol,omitempty"`
	Suit   Suit   `json:"suit,omitempty"`
	Hidden bool   `json:"hidden"`
}

// MarshalJSON never leaks the rank or suit of a hidden card
func (c *Card) MarshalJSON() ([]byte, error) {
	if c.Hidden {
		return json.Marshal(cardJSON{Hidden: true})
	}

	return json.Marshal(cardJSON{
		Rank:   c.Rank,
		Symbol: c.RankSymbol(),
		Suit:   c.Suit,
	})
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Clone returns a clone of the card
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

// Revealed returns a copy of the card with the hidden flag cleared
func (c *Card) Revealed() *Card {
	cp := c.Clone()
	cp.Hidden = false
	return cp
}

var cardRx = regexp.MustCompile(`(?i)^(\?)?([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs].
// A leading "?" marks the card as hidden.
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[2])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[3]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank:   rank,
		Suit:   suit,
		Hidden: match[1] == "?",
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	hidden := ""
	if card.Hidden {
		hidden = "?"
	}

	return fmt.Sprintf("%s%d%s", hidden, card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
