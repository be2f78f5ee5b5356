package mdp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSpace(t *testing.T, seed int64) *StateSpace {
	t.Helper()
	space, err := NewStateSpace(rand.New(rand.NewSource(seed)), RandomBehaviour, 0)
	require.NoError(t, err)
	return space
}

func TestNewStateSpaceInitialTarget(t *testing.T) {
	space := newTestSpace(t, 1)
	space.Each(func(s State, rec *StateRecord) {
		want := Hit
		if s.PlayerSum >= 20 {
			want = Stick
		}
		assert.Equal(t, want, rec.Policies[Target], "state %v", s)
		assert.Contains(t, Actions[:], rec.Policies[Behaviour])
		assert.Zero(t, rec.Value)
		assert.Zero(t, rec.Visits)
		for _, av := range rec.ActionValues {
			assert.Zero(t, av.Q)
			assert.Zero(t, av.C)
		}
	})
}

func TestNewStateSpaceBehaviourIsSeeded(t *testing.T) {
	a, b := newTestSpace(t, 42), newTestSpace(t, 42)
	assert.Equal(t, a, b)

	hits := 0
	a.Each(func(_ State, rec *StateRecord) {
		if rec.Policies[Behaviour] == Hit {
			hits++
		}
	})
	// Uniform behaviour: both actions are well represented among 200 states.
	assert.Greater(t, hits, 60)
	assert.Less(t, hits, 140)
}

func TestNewStateSpaceExploratory(t *testing.T) {
	space, err := NewStateSpace(rand.New(rand.NewSource(3)), ExploratoryBehaviour, 0)
	require.NoError(t, err)
	space.Each(func(s State, rec *StateRecord) {
		assert.Equal(t, rec.Policies[Target], rec.Policies[Behaviour], "state %v", s)
	})
}

func TestNewStateSpaceRejectsBadBehaviour(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := NewStateSpace(rng, ExploratoryBehaviour, 1.5)
	assert.ErrorIs(t, err, ErrInvalidBehaviour)
	_, err = NewStateSpace(rng, BehaviourKind(9), 0)
	assert.ErrorIs(t, err, ErrUnknownBehaviour)

	kind, err := ParseBehaviourKind("exploratory")
	require.NoError(t, err)
	assert.Equal(t, ExploratoryBehaviour, kind)
	_, err = ParseBehaviourKind("greedy")
	assert.ErrorIs(t, err, ErrUnknownBehaviour)
}

func TestStateSpaceLookupBoundary(t *testing.T) {
	space := newTestSpace(t, 1)
	assert.Panics(t, func() { space.Record(State{PlayerSum: 11, DealerCard: 3}) })
	assert.Panics(t, func() { space.Policy(State{PlayerSum: 15, DealerCard: 3}, PolicyName("greedy")) })
	assert.NotPanics(t, func() { space.Policy(State{PlayerSum: 15, DealerCard: 3}, Behaviour) })
}

func TestStateSpaceClone(t *testing.T) {
	space := newTestSpace(t, 1)
	s := State{PlayerSum: 16, DealerCard: 7}
	clone := space.Clone()
	require.Equal(t, space, clone)

	rec := space.Record(s)
	rec.Value = 0.5
	rec.Visits = 3
	rec.Policies[Target] = Stick
	rec.ActionValue(Hit).Add(1, -1)

	crec := clone.Record(s)
	assert.Zero(t, crec.Value)
	assert.Zero(t, crec.Visits)
	assert.Equal(t, Hit, crec.Policies[Target])
	assert.Zero(t, crec.ActionValue(Hit).C)
}

func TestArgmaxTieBreak(t *testing.T) {
	rec := &StateRecord{}
	assert.Equal(t, Hit, rec.Argmax())

	rec.ActionValue(Stick).Q = 0.1
	assert.Equal(t, Stick, rec.Argmax())

	rec.ActionValue(Hit).Q = 0.1
	assert.Equal(t, Hit, rec.Argmax())
}

func TestDiscretePdf(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	sure := PolicyEpsilonGreedy{Greedy: Stick, Epsilon: 0}.Act()
	for i := 0; i < 100; i++ {
		assert.Equal(t, Stick, sure.Choose(rng))
	}

	uniform := PolicyEpsilonGreedy{Greedy: Stick, Epsilon: 1}.Act()
	assert.InDelta(t, 0.5, float64(uniform.Prob(Hit)), 1e-12)
	assert.InDelta(t, 0.5, float64(uniform.Prob(Stick)), 1e-12)

	assert.Panics(t, func() { DiscretePdf[Action]{}.Choose(rng) })
	bad := DiscretePdf[Action]{}
	bad.Add(Hit, 0.2)
	assert.Panics(t, func() { bad.Choose(rng) })
}
