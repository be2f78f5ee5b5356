package mdp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedGenerator replays one-step episodes cycling through rewards and
// reads the action from the named policy.
type scriptedGenerator struct {
	state   State
	rewards []Reward
	calls   int
}

func (g *scriptedGenerator) GenerateEpisode(space *StateSpace, policy PolicyName) Episode {
	r := g.rewards[g.calls%len(g.rewards)]
	g.calls++
	return Episode{{State: g.state, Action: space.Policy(g.state, policy), Reward: r}}
}

func TestRunPrediction(t *testing.T) {
	space := newTestSpace(t, 1)
	s := State{PlayerSum: 18, DealerCard: 10}
	gen := &scriptedGenerator{state: s, rewards: []Reward{Win, Loss, Loss, Draw}}

	var fractions []float64
	cfg := DefaultConfig()
	cfg.Episodes = 8
	res, err := Run(context.Background(), space, gen, cfg, Hooks{
		Progress: func(f float64) { fractions = append(fractions, f) },
	})
	require.NoError(t, err)

	assert.Equal(t, 8, gen.calls)
	assert.Equal(t, 8, res.Episodes)
	assert.Equal(t, 2, res.Wins)
	assert.Equal(t, 4, res.Losses)
	assert.Equal(t, 2, res.Draws)
	assert.Empty(t, res.Snapshots)

	rec := space.Record(s)
	assert.Equal(t, 8, rec.Visits)
	assert.InDelta(t, -0.25, rec.Value, 1e-12)

	require.Len(t, fractions, 8)
	assert.Equal(t, 0.125, fractions[0])
	assert.Equal(t, 1.0, fractions[7])
}

func TestRunBothFeedsEveryEstimator(t *testing.T) {
	space := newTestSpace(t, 1)
	s := State{PlayerSum: 15, DealerCard: 3}
	gen := &scriptedGenerator{state: s, rewards: []Reward{Win}}

	cfg := DefaultConfig()
	cfg.Episodes = 3
	cfg.Policy = Behaviour
	cfg.Method = Both
	_, err := Run(context.Background(), space, gen, cfg, Hooks{})
	require.NoError(t, err)

	rec := space.Record(s)
	assert.Equal(t, 3, rec.Visits)
	assert.Equal(t, 1.0, rec.Value)
	taken := rec.Policies[Behaviour]
	assert.Equal(t, 3.0, rec.ActionValue(taken).C)
	assert.Equal(t, taken, rec.Policies[Target])
}

func TestRunSnapshots(t *testing.T) {
	space := newTestSpace(t, 1)
	s := State{PlayerSum: 18, DealerCard: 10}
	gen := &scriptedGenerator{state: s, rewards: []Reward{Win}}

	cfg := DefaultConfig()
	cfg.Episodes = 10
	cfg.TrackSnapshots = true
	cfg.Schedule = FirstN(3)
	res, err := Run(context.Background(), space, gen, cfg, Hooks{})
	require.NoError(t, err)

	require.Len(t, res.Snapshots, 3)
	for i, snap := range res.Snapshots {
		assert.Equal(t, i+1, snap.Episode)
		assert.Equal(t, i+1, snap.Space.Record(s).Visits)
	}
	assert.Equal(t, 10, space.Record(s).Visits)
}

func TestRunRejectsConfigBeforeGenerating(t *testing.T) {
	space := newTestSpace(t, 1)
	gen := &scriptedGenerator{state: State{PlayerSum: 18, DealerCard: 10}, rewards: []Reward{Win}}

	cfg := DefaultConfig()
	cfg.Episodes = 0
	res, err := Run(context.Background(), space, gen, cfg, Hooks{})
	assert.ErrorIs(t, err, ErrInvalidEpisodes)
	assert.Nil(t, res)
	assert.Zero(t, gen.calls)
}

func TestRunStopsOnCancel(t *testing.T) {
	space := newTestSpace(t, 1)
	s := State{PlayerSum: 18, DealerCard: 10}
	gen := &scriptedGenerator{state: s, rewards: []Reward{Win}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfg := DefaultConfig()
	cfg.Episodes = 100
	res, err := Run(ctx, space, gen, cfg, Hooks{
		Episode: func(i int, _ Episode) {
			if i == 5 {
				cancel()
			}
		},
	})
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Equal(t, 5, res.Episodes)
	assert.Equal(t, 5, space.Record(s).Visits)
}
