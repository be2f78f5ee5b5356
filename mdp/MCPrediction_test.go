package mdp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestFirstVisitRepeatedStateUpdatesOnce(t *testing.T) {
	space := newTestSpace(t, 1)
	s := State{PlayerSum: 14, DealerCard: 6, UsableAce: true}
	other := State{PlayerSum: 17, DealerCard: 6}
	episode := Episode{
		{State: s, Action: Hit},
		{State: other, Action: Hit},
		{State: s, Action: Stick, Reward: Win},
	}

	FirstVisitPrediction{}.ProcessEpisode(space, episode, 1)

	rec := space.Record(s)
	assert.Equal(t, 1, rec.Visits)
	assert.Equal(t, 1.0, rec.Value)
	assert.Equal(t, 1, space.Record(other).Visits)
}

func TestFirstVisitUsesEarliestOccurrence(t *testing.T) {
	space := newTestSpace(t, 1)
	s := State{PlayerSum: 14, DealerCard: 6, UsableAce: true}
	other := State{PlayerSum: 17, DealerCard: 6}
	episode := Episode{
		{State: s, Action: Hit},
		{State: other, Action: Hit},
		{State: s, Action: Stick, Reward: Loss},
	}

	FirstVisitPrediction{}.ProcessEpisode(space, episode, 0.5)

	assert.Equal(t, 1, space.Record(s).Visits)
	assert.InDelta(t, -0.25, space.Record(s).Value, 1e-12)
	assert.InDelta(t, -0.5, space.Record(other).Value, 1e-12)
}

func TestFirstVisitIncrementalMean(t *testing.T) {
	space := newTestSpace(t, 1)
	s := State{PlayerSum: 19, DealerCard: 2}
	rng := rand.New(rand.NewSource(7))

	rewards := []Reward{Loss, Draw, Win}
	var returns []float64
	for i := 0; i < 1000; i++ {
		r := rewards[rng.Intn(len(rewards))]
		returns = append(returns, float64(r))
		FirstVisitPrediction{}.ProcessEpisode(space, Episode{{State: s, Action: Stick, Reward: r}}, 1)
	}

	rec := space.Record(s)
	require.Equal(t, len(returns), rec.Visits)
	assert.InDelta(t, stat.Mean(returns, nil), rec.Value, 1e-9)
	assert.Equal(t, rec.Value, space.Estimate(s))
}

func TestFirstVisitLeavesPoliciesAlone(t *testing.T) {
	space := newTestSpace(t, 1)
	before := space.Clone()
	s := State{PlayerSum: 13, DealerCard: 9}
	FirstVisitPrediction{}.ProcessEpisode(space, Episode{{State: s, Action: Stick, Reward: Loss}}, 1)

	assert.Equal(t, before.Record(s).Policies, space.Record(s).Policies)
	assert.Equal(t, before.Record(s).ActionValues, space.Record(s).ActionValues)
}
