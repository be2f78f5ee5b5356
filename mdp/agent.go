package mdp

import "fmt"

type Timestep struct {
	State  State
	Action Action
	Reward Reward
}

// Episode is one hand in forward chronological order.
type Episode []Timestep

// Return is the terminal reward of the hand.
func (e Episode) Return() Reward {
	if len(e) == 0 {
		return Draw
	}
	return e[len(e)-1].Reward
}

func (e Episode) Validate() error {
	if len(e) == 0 {
		return fmt.Errorf("empty episode")
	}
	for i, step := range e {
		if !step.State.Valid() {
			return fmt.Errorf("step %d: state %v outside the canonical space", i, step.State)
		}
		if i < len(e)-1 && step.Reward != 0 {
			return fmt.Errorf("step %d: non-terminal reward %v", i, step.Reward)
		}
	}
	switch e.Return() {
	case Win, Draw, Loss:
	default:
		return fmt.Errorf("terminal reward %v not in {-1, 0, 1}", e.Return())
	}
	return nil
}

type StateValueEstimator interface {
	Estimate(State) float64
}
