package blackjack

import "math/rand"

const (
	Blackjack   = 21
	DealerStand = 17

	MinCard = 2
	// MaxCard is an ace counted as eleven.
	MaxCard = 11
)

// CardSource yields card values in [MinCard, MaxCard].
type CardSource interface {
	Draw() int
}

type randomCards struct {
	rng *rand.Rand
}

func (c randomCards) Draw() int {
	return MinCard + c.rng.Intn(MaxCard-MinCard+1)
}

// Hand is the player's running total. The game does not track the cards
// themselves, only whether an ace is currently counted as eleven.
type Hand struct {
	Sum       int
	UsableAce bool
}

func (h Hand) Bust() bool {
	return h.Sum > Blackjack
}

// Hit adds one card. A usable ace is demoted to one before the card is added
// if the card would bust the hand; a drawn ace counts as one when eleven
// would bust.
func (h Hand) Hit(card int) Hand {
	if h.UsableAce && h.Sum+card > Blackjack {
		h.Sum -= 10
		h.UsableAce = false
	}
	if card == MaxCard {
		if h.Sum+card > Blackjack {
			card = 1
		} else {
			h.UsableAce = true
		}
	}
	h.Sum += card
	return h
}
