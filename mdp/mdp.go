package mdp

import "fmt"

// Bounds of the canonical state space. Hands below MinPlayerSum never need a
// decision, the player always draws.
const (
	MinPlayerSum  = 12
	MaxPlayerSum  = 21
	MinDealerCard = 1
	MaxDealerCard = 10

	playerSums  = MaxPlayerSum - MinPlayerSum + 1
	dealerCards = MaxDealerCard - MinDealerCard + 1

	NumStates = playerSums * dealerCards * 2
)

type Reward float64

const (
	Loss Reward = -1
	Draw Reward = 0
	Win  Reward = 1
)

type State struct {
	PlayerSum  int
	DealerCard int
	UsableAce  bool
}

func (s State) Valid() bool {
	return s.PlayerSum >= MinPlayerSum && s.PlayerSum <= MaxPlayerSum &&
		s.DealerCard >= MinDealerCard && s.DealerCard <= MaxDealerCard
}

// Index packs the state into [0, NumStates). Only valid for canonical states.
func (s State) Index() int {
	ace := 0
	if s.UsableAce {
		ace = 1
	}
	return ((s.PlayerSum-MinPlayerSum)*dealerCards+(s.DealerCard-MinDealerCard))*2 + ace
}

func StateFromIndex(i int) State {
	if i < 0 || i >= NumStates {
		panic(fmt.Sprintf("state index %d out of range", i))
	}
	return State{
		PlayerSum:  MinPlayerSum + i/(dealerCards*2),
		DealerCard: MinDealerCard + (i/2)%dealerCards,
		UsableAce:  i%2 == 1,
	}
}

func CanonicalStates() []State {
	states := make([]State, 0, NumStates)
	for i := 0; i < NumStates; i++ {
		states = append(states, StateFromIndex(i))
	}
	return states
}

func (s State) String() string {
	ace := 0
	if s.UsableAce {
		ace = 1
	}
	return fmt.Sprintf("(%d, %d, %d)", s.PlayerSum, s.DealerCard, ace)
}
