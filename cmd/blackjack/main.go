package main

import (
	"context"
	"errors"
	"flag"
	"math"
	"math/rand"
	"os"
	"os/signal"

	"github.com/golang/glog"
	"github.com/logrusorgru/aurora"

	"github.com/CodeStranger-Fred/blackjack/blackjack"
	"github.com/CodeStranger-Fred/blackjack/mdp"
	"github.com/CodeStranger-Fred/blackjack/plot"
	"github.com/CodeStranger-Fred/blackjack/render"
)

func main() {
	defer glog.Flush()

	o, err := loadOptions(flag.CommandLine, os.Args[1:])
	if err != nil {
		glog.Exitf("flags: %v", err)
	}
	cfg, err := o.config()
	if err != nil {
		glog.Exitf("config: %v", err)
	}
	behaviour, err := mdp.ParseBehaviourKind(o.Behaviour)
	if err != nil {
		glog.Exitf("config: %v", err)
	}

	rng := rand.New(rand.NewSource(o.Seed))
	space, err := mdp.NewStateSpace(rng, behaviour, o.Epsilon)
	if err != nil {
		glog.Exitf("config: %v", err)
	}
	game := blackjack.NewGameWithRand(rng)

	au := aurora.NewAurora(!o.NoColor)
	var hooks mdp.Hooks
	if !o.Quiet {
		// Redrawing on every episode would dominate the run time.
		step := max(cfg.Episodes/1000, 1)
		hooks.Progress = func(f float64) {
			if n := int(math.Round(f * float64(cfg.Episodes))); n%step == 0 || n == cfg.Episodes {
				render.ProgressBar(os.Stdout, au, f)
			}
		}
	}

	if glog.V(3) {
		hooks.Episode = func(n int, ep mdp.Episode) {
			for t, step := range ep {
				glog.Infof("episode %d step %d: %v %v reward=%v", n, t, step.State, step.Action, step.Reward)
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := mdp.Run(ctx, space, game, cfg, hooks)
	if err != nil && !errors.Is(err, context.Canceled) {
		glog.Exitf("run: %v", err)
	}

	for _, ace := range []bool{false, true} {
		render.PrintValueEstimates(os.Stdout, au, space, ace)
	}
	if cfg.Method != mdp.Prediction {
		for _, ace := range []bool{false, true} {
			render.PrintPolicy(os.Stdout, au, space, mdp.Target, ace)
		}
	}

	if o.PlotDir != "" && len(res.Snapshots) > 0 {
		path, err := plot.WriteReport(o.PlotDir, "blackjack.html", res.Snapshots)
		if err != nil {
			glog.Exitf("plot: %v", err)
		}
		glog.Infof("wrote %s", path)
		if o.Serve != "" {
			glog.Fatal(plot.Serve(o.Serve, o.PlotDir))
		}
	}
}
