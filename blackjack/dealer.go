package blackjack

import "github.com/CodeStranger-Fred/blackjack/mdp"

// DealerTurn draws until the total reaches DealerStand. The dealer never holds
// a usable ace: a drawn ace counts as one only if eleven would bust.
func DealerTurn(total int, cards CardSource) int {
	for total < DealerStand {
		card := cards.Draw()
		if card == MaxCard && total+card > Blackjack {
			card = 1
		}
		total += card
	}
	return total
}

// Outcome scores the hand from the player's side. A busted player loses even
// if the dealer would have busted too.
func Outcome(player, dealer int) mdp.Reward {
	switch {
	case player > Blackjack || (dealer <= Blackjack && dealer > player):
		return mdp.Loss
	case dealer == player:
		return mdp.Draw
	default:
		return mdp.Win
	}
}
