package blackjack

import (
	"blackjack-server/pkg/deck"
)

// Blackjack is the best possible score
const Blackjack = 21

// dealerStandsOn is the score at which the dealer stops drawing, soft or hard
const dealerStandsOn = 17

// CardValue returns the value of a card before any ace adjustment
// Aces count as 11, face cards as 10
func CardValue(card *deck.Card) int {
	switch {
	case card.Rank == deck.Ace:
		return 11
	case card.Rank >= 10:
		return 10
	}

	return card.Rank
}

// score returns the best total and how many aces are still counted as 11
func score(cards []*deck.Card) (total int, softAces int) {
	for _, card := range cards {
		if card.Hidden {
			continue
		}

		if card.Rank == deck.Ace {
			softAces++
		}

		total += CardValue(card)
	}

	for total > Blackjack && softAces > 0 {
		total -= 10
		softAces--
	}

	return total, softAces
}

// Score returns the blackjack score of the cards
// Hidden cards are ignored. An ace counts as 11 unless that would bust the hand.
func Score(cards []*deck.Card) int {
	total, _ := score(cards)
	return total
}

// IsSoft returns true if an ace in the cards is still counted as 11
func IsSoft(cards []*deck.Card) bool {
	_, softAces := score(cards)
	return softAces > 0
}
