package mdp

import "fmt"

// BehaviourKind selects how the behaviour policy is drawn when the state
// space is built.
type BehaviourKind int

const (
	// RandomBehaviour picks HIT or STICK uniformly for every state.
	RandomBehaviour BehaviourKind = iota
	// ExploratoryBehaviour keeps the initial target action with probability
	// 1-epsilon+epsilon/|A| and spreads the rest uniformly.
	ExploratoryBehaviour
)

func (k BehaviourKind) String() string {
	switch k {
	case RandomBehaviour:
		return "random"
	case ExploratoryBehaviour:
		return "exploratory"
	default:
		return fmt.Sprintf("BehaviourKind(%d)", int(k))
	}
}

func ParseBehaviourKind(s string) (BehaviourKind, error) {
	switch s {
	case "random":
		return RandomBehaviour, nil
	case "exploratory":
		return ExploratoryBehaviour, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBehaviour, s)
}

type PolicyEpsilonGreedy struct {
	Greedy  Action
	Epsilon float64
}

func (p PolicyEpsilonGreedy) Act() DiscretePdf[Action] {
	pdf := DiscretePdf[Action]{}
	n := float64(len(Actions))
	for _, a := range Actions {
		if a == p.Greedy {
			pdf.Add(a, Probability(1.0-p.Epsilon+p.Epsilon/n))
		} else {
			pdf.Add(a, Probability(p.Epsilon/n))
		}
	}
	return pdf
}
