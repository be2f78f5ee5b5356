package mdp

import (
	"context"
	"fmt"
	"time"

	"github.com/golang/glog"
)

type EpisodeGenerator interface {
	GenerateEpisode(space *StateSpace, policy PolicyName) Episode
}

// Hooks are optional callbacks for reporting. They must not touch the space.
type Hooks struct {
	// Progress receives episode/total after every episode.
	Progress func(fraction float64)
	// Episode receives every generated episode after it has been processed.
	Episode func(index int, episode Episode)
}

type Result struct {
	Episodes int
	Wins     int
	Draws    int
	Losses   int

	Snapshots []Snapshot
}

func (r *Result) record(ret Reward) {
	r.Episodes++
	switch {
	case ret > 0:
		r.Wins++
	case ret < 0:
		r.Losses++
	default:
		r.Draws++
	}
}

// Run generates cfg.Episodes episodes and feeds each one to the estimators
// selected by cfg.Method, mutating space in place. Cancelling ctx stops the run
// between episodes; the partial result is returned together with ctx.Err().
func Run(ctx context.Context, space *StateSpace, gen EpisodeGenerator, cfg Config, hooks Hooks) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if space == nil || gen == nil {
		return nil, fmt.Errorf("run: nil state space or generator")
	}

	estimators := cfg.estimators()
	var history *SnapshotHistory
	if cfg.TrackSnapshots {
		history = NewSnapshotHistory(cfg.MaxSnapshots)
	}

	glog.V(1).Infof("running %d episodes: method=%v policy=%s gamma=%v",
		cfg.Episodes, cfg.Method, cfg.Policy, cfg.Gamma)
	for _, e := range estimators {
		glog.V(1).Infof("estimator: %s", e.Name())
	}

	res := &Result{}
	var err error
	for ep := 1; ep <= cfg.Episodes; ep++ {
		if err = ctx.Err(); err != nil {
			glog.Warningf("run interrupted after %d episodes: %v", res.Episodes, err)
			break
		}

		start := time.Now()
		episode := gen.GenerateEpisode(space, cfg.Policy)
		for _, e := range estimators {
			e.ProcessEpisode(space, episode, cfg.Gamma)
		}
		elapsed := time.Since(start)

		res.record(episode.Return())
		if glog.V(2) {
			glog.Infof("episode %d: %d steps, return %v", ep, len(episode), episode.Return())
		}
		if hooks.Episode != nil {
			hooks.Episode(ep, episode)
		}
		if hooks.Progress != nil {
			hooks.Progress(float64(ep) / float64(cfg.Episodes))
		}
		if history != nil && cfg.Schedule.Includes(ep, cfg.Episodes) {
			history.Add(TakeSnapshot(space, ep, elapsed))
			glog.V(1).Infof("snapshot at episode %d (%v)", ep, elapsed)
		}
	}

	if history != nil {
		res.Snapshots = history.Snapshots()
	}
	glog.Infof("finished %d/%d episodes: %d wins, %d draws, %d losses",
		res.Episodes, cfg.Episodes, res.Wins, res.Draws, res.Losses)
	return res, err
}
