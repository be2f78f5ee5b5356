package blackjack

import (
	"math/rand"

	"github.com/CodeStranger-Fred/blackjack/mdp"
)

// Game simulates hands of the simplified game. It is not safe for concurrent
// use; all randomness comes from one generator.
type Game struct {
	rng   *rand.Rand
	cards CardSource
}

func NewGame(seed int64) *Game {
	return NewGameWithRand(rand.New(rand.NewSource(seed)))
}

func NewGameWithRand(rng *rand.Rand) *Game {
	return &Game{rng: rng, cards: randomCards{rng: rng}}
}

// Deal returns the opening player hand and the dealer's visible card.
func (g *Game) Deal() (Hand, int) {
	player := Hand{Sum: mdp.MinPlayerSum + g.rng.Intn(mdp.MaxPlayerSum-mdp.MinPlayerSum+1)}
	dealer := mdp.MinDealerCard + g.rng.Intn(mdp.MaxDealerCard-mdp.MinDealerCard+1)
	if player.Sum > 20 {
		player.UsableAce = true
	} else {
		player.UsableAce = g.rng.Intn(2) == 1
	}
	return player, dealer
}

// GenerateEpisode plays one hand with the actions the named policy prescribes
// in space. The space is only read.
func (g *Game) GenerateEpisode(space *mdp.StateSpace, policy mdp.PolicyName) mdp.Episode {
	player, dealer := g.Deal()
	return g.play(space, policy, player, dealer)
}

func (g *Game) play(space *mdp.StateSpace, policy mdp.PolicyName, player Hand, dealer int) mdp.Episode {
	var episode mdp.Episode

turn:
	for !player.Bust() {
		s := mdp.State{PlayerSum: player.Sum, DealerCard: dealer, UsableAce: player.UsableAce}
		action := space.Policy(s, policy)
		episode = append(episode, mdp.Timestep{State: s, Action: action, Reward: 0})

		switch action {
		case mdp.Hit:
			player = player.Hit(g.cards.Draw())
		case mdp.Stick:
			break turn
		default:
			panic("unhandled action: " + action.String())
		}
	}

	if !player.Bust() {
		dealer = DealerTurn(dealer, g.cards)
	}
	episode[len(episode)-1].Reward = Outcome(player.Sum, dealer)
	return episode
}
