package deck

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	card := Card{
		Rank: 2,
		Suit: Hearts,
	}

	assert.Equal(t, "2♡", card.String())

	card = Card{
		Rank: 11,
		Suit: Clubs,
	}

	assert.Equal(t, "J♣", card.String())

	card = Card{
		Rank: 12,
		Suit: Diamonds,
	}

	assert.Equal(t, "Q♢", card.String())

	card = Card{
		Rank: 13,
		Suit: Spades,
	}

	assert.Equal(t, "K♠", card.String())

	card = Card{
		Rank: 14,
		Suit: Spades,
	}

	assert.Equal(t, "A♠", card.String())

	card.Hidden = true
	assert.Equal(t, "??", card.String())
}

func TestCard_RankSymbol(t *testing.T) {
	a := assert.New(t)
	a.Equal("A", CardFromString("14c").RankSymbol())
	a.Equal("10", CardFromString("10c").RankSymbol())
	a.Equal("7", CardFromString("7c").RankSymbol())
	a.Equal("J", CardFromString("11c").RankSymbol())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Nil(CardFromString(""))
	a.Equal(&Card{Rank: 10, Suit: Hearts}, CardFromString("10h"))
	a.Equal(&Card{Rank: 8, Suit: Spades, Hidden: true}, CardFromString("?8s"))

	a.PanicsWithValue("could not parse card: 1c", func() {
		CardFromString("1c")
	})

	a.Equal("2c,?14d", CardsToString(CardsFromString("2c,?14d")))
	a.Equal(0, len(CardsFromString("")))
}

func TestCard_MarshalJSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(CardFromString("12d"))
	a.NoError(err)
	a.Equal(`{"rank":12,"symbol":"Q","suit":"diamonds","hidden":false}`, string(b))

	b, err = json.Marshal(CardFromString("?12d"))
	a.NoError(err)
	a.Equal(`{"hidden":true}`, string(b))
}

func TestCard_Revealed(t *testing.T) {
	card := CardFromString("?9h")
	revealed := card.Revealed()
	assert.True(t, card.Hidden)
	assert.False(t, revealed.Hidden)
	assert.True(t, card.Equal(revealed))
}
