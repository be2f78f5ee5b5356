package mdp

import "gonum.org/v1/gonum/floats"

// Argmax returns the action with the highest Q. Ties go to the first action
// in Actions order.
func (r *StateRecord) Argmax() Action {
	var q [len(Actions)]float64
	for i := range Actions {
		q[i] = r.ActionValues[i].Q
	}
	return Actions[floats.MaxIdx(q[:])]
}

func (r *StateRecord) ActionValue(a Action) *ActionValue {
	return &r.ActionValues[a.Index()]
}

// PolicyGreedy acts greedily on the action values held in Space.
type PolicyGreedy struct {
	Space *StateSpace
}

func (g PolicyGreedy) Act(s State) Action {
	return g.Space.Record(s).Argmax()
}
