package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/CodeStranger-Fred/blackjack/mdp"
)

// options is the CLI surface. A YAML file may provide any of them; flags given
// explicitly on the command line win over the file.
type options struct {
	Episodes     int     `yaml:"episodes"`
	Gamma        float64 `yaml:"gamma"`
	Policy       string  `yaml:"policy"`
	Method       string  `yaml:"method"`
	Behaviour    string  `yaml:"behaviour"`
	Epsilon      float64 `yaml:"epsilon"`
	Seed         int64   `yaml:"seed"`
	Snapshots    bool    `yaml:"snapshots"`
	Schedule     string  `yaml:"schedule"`
	MaxSnapshots int     `yaml:"max_snapshots"`
	PlotDir      string  `yaml:"plot_dir"`
	Serve        string  `yaml:"serve"`
	NoColor      bool    `yaml:"no_color"`
	Quiet        bool    `yaml:"quiet"`
}

func defaultOptions() options {
	d := mdp.DefaultConfig()
	return options{
		Episodes:     d.Episodes,
		Gamma:        d.Gamma,
		Policy:       string(d.Policy),
		Method:       d.Method.String(),
		Behaviour:    mdp.RandomBehaviour.String(),
		Epsilon:      0.3,
		Seed:         1,
		Schedule:     d.Schedule.String(),
		MaxSnapshots: d.MaxSnapshots,
	}
}

func (o *options) bind(fs *flag.FlagSet) {
	fs.IntVar(&o.Episodes, "episodes", o.Episodes, "number of episodes to simulate")
	fs.Float64Var(&o.Gamma, "gamma", o.Gamma, "discount factor in [0, 1]")
	fs.StringVar(&o.Policy, "policy", o.Policy, "policy generating episodes: target or behaviour")
	fs.StringVar(&o.Method, "method", o.Method, "prediction, control or both")
	fs.StringVar(&o.Behaviour, "behaviour", o.Behaviour, "behaviour policy: random or exploratory")
	fs.Float64Var(&o.Epsilon, "epsilon", o.Epsilon, "exploration rate of the exploratory behaviour policy")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "random seed")
	fs.BoolVar(&o.Snapshots, "snapshots", o.Snapshots, "record state-space snapshots")
	fs.StringVar(&o.Schedule, "schedule", o.Schedule, "snapshot schedule: every, first:N or exp:B")
	fs.IntVar(&o.MaxSnapshots, "max-snapshots", o.MaxSnapshots, "maximum retained snapshots")
	fs.StringVar(&o.PlotDir, "plot-dir", o.PlotDir, "write an HTML report of the snapshots into this directory")
	fs.StringVar(&o.Serve, "serve", o.Serve, "serve the plot directory on this address after the run")
	fs.BoolVar(&o.NoColor, "no-color", o.NoColor, "disable coloured output")
	fs.BoolVar(&o.Quiet, "quiet", o.Quiet, "do not print the progress bar")
}

// loadOptions parses args, overlaying the optional -config YAML file below
// the flags that were set explicitly.
func loadOptions(fs *flag.FlagSet, args []string) (options, error) {
	opts := defaultOptions()
	opts.bind(fs)
	configPath := fs.String("config", "", "YAML config file")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if *configPath == "" {
		return opts, nil
	}

	set := map[string]string{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })

	opts = defaultOptions()
	b, err := os.ReadFile(*configPath)
	if err != nil {
		return options{}, err
	}
	if err := yaml.UnmarshalStrict(b, &opts); err != nil {
		return options{}, fmt.Errorf("config %s: %w", *configPath, err)
	}

	overlay := flag.NewFlagSet("overlay", flag.ContinueOnError)
	opts.bind(overlay)
	for name, value := range set {
		if overlay.Lookup(name) == nil {
			continue
		}
		if err := overlay.Set(name, value); err != nil {
			return options{}, err
		}
	}
	return opts, nil
}

func (o options) config() (mdp.Config, error) {
	method, err := mdp.ParseMethod(o.Method)
	if err != nil {
		return mdp.Config{}, err
	}
	cfg := mdp.Config{
		Episodes:       o.Episodes,
		Gamma:          o.Gamma,
		Policy:         mdp.PolicyName(o.Policy),
		Method:         method,
		TrackSnapshots: o.Snapshots || o.PlotDir != "",
		MaxSnapshots:   o.MaxSnapshots,
	}
	if cfg.TrackSnapshots {
		if cfg.Schedule, err = mdp.ParseSchedule(o.Schedule); err != nil {
			return mdp.Config{}, err
		}
	}
	return cfg, cfg.Validate()
}
