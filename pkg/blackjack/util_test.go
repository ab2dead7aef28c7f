package blackjack

import (
	"blackjack-server/pkg/deck"
)

// riggedState builds a playing state. draws lists the upcoming deck cards in the order they will be dealt.
func riggedState(player, dealer, draws string) *GameState {
	upcoming := deck.CardsFromString(draws)
	cards := make([]*deck.Card, len(upcoming))
	for i, card := range upcoming {
		cards[len(upcoming)-1-i] = card
	}

	return &GameState{
		Deck:       &deck.Deck{Cards: cards},
		PlayerHand: newHand(deck.CardsFromString(player)),
		DealerHand: newHand(deck.CardsFromString(dealer)),
		Status:     StatusPlaying,
		CanHit:     true,
		CanStand:   true,
	}
}
