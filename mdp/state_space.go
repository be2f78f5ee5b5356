package mdp

import (
	"fmt"
	"math"
	"math/rand"
)

type PolicyName string

const (
	Target    PolicyName = "target"
	Behaviour PolicyName = "behaviour"
)

func (p PolicyName) Valid() bool {
	return p == Target || p == Behaviour
}

type StateRecord struct {
	Policies     map[PolicyName]Action
	ActionValues [len(Actions)]ActionValue
	Value        float64
	Visits       int
}

// InitialTarget sticks on 20 or 21 and hits otherwise.
func InitialTarget(s State) Action {
	if s.PlayerSum >= 20 {
		return Stick
	}
	return Hit
}

// StateSpace holds one record per canonical state, indexed by State.Index.
type StateSpace struct {
	records [NumStates]StateRecord
}

// NewStateSpace builds all canonical records. The behaviour policy is drawn
// here from rng and never changes afterwards.
func NewStateSpace(rng *rand.Rand, kind BehaviourKind, epsilon float64) (*StateSpace, error) {
	if epsilon < 0 || epsilon > 1 || math.IsNaN(epsilon) {
		return nil, fmt.Errorf("%w: epsilon %v", ErrInvalidBehaviour, epsilon)
	}
	switch kind {
	case RandomBehaviour:
		epsilon = 1
	case ExploratoryBehaviour:
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownBehaviour, kind)
	}

	space := &StateSpace{}
	for i := range space.records {
		s := StateFromIndex(i)
		target := InitialTarget(s)
		behaviour := PolicyEpsilonGreedy{Greedy: target, Epsilon: epsilon}.Act().Choose(rng)
		space.records[i] = StateRecord{
			Policies: map[PolicyName]Action{
				Target:    target,
				Behaviour: behaviour,
			},
		}
	}
	return space, nil
}

// Record returns the mutable record for s. States outside the canonical space
// are a programming error.
func (sp *StateSpace) Record(s State) *StateRecord {
	if !s.Valid() {
		panic(fmt.Sprintf("state %v outside the canonical state space", s))
	}
	return &sp.records[s.Index()]
}

// Policy returns the action prescribed by the named policy in state s.
func (sp *StateSpace) Policy(s State, name PolicyName) Action {
	a, ok := sp.Record(s).Policies[name]
	if !ok {
		panic(fmt.Sprintf("no policy %q for state %v", name, s))
	}
	return a
}

func (sp *StateSpace) Estimate(s State) float64 {
	return sp.Record(s).Value
}

// Each visits every record in index order.
func (sp *StateSpace) Each(fn func(State, *StateRecord)) {
	for i := range sp.records {
		fn(StateFromIndex(i), &sp.records[i])
	}
}

func (sp *StateSpace) Clone() *StateSpace {
	c := &StateSpace{records: sp.records}
	for i := range c.records {
		policies := make(map[PolicyName]Action, len(sp.records[i].Policies))
		for name, a := range sp.records[i].Policies {
			policies[name] = a
		}
		c.records[i].Policies = policies
	}
	return c
}
