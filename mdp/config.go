package mdp

import (
	"fmt"
	"math"
)

// Method selects which estimators consume each generated episode.
type Method int

const (
	Prediction Method = iota
	Control
	Both
)

func (m Method) String() string {
	switch m {
	case Prediction:
		return "prediction"
	case Control:
		return "control"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

func ParseMethod(s string) (Method, error) {
	for _, m := range []Method{Prediction, Control, Both} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

type Config struct {
	Episodes int
	Gamma    float64

	// Policy that generates the episodes.
	Policy PolicyName
	Method Method

	TrackSnapshots bool
	Schedule       Schedule
	// MaxSnapshots caps the retained history. Required when tracking.
	MaxSnapshots int
}

func DefaultConfig() Config {
	return Config{
		Episodes:     500000,
		Gamma:        1,
		Policy:       Target,
		Method:       Prediction,
		Schedule:     Exponential(2),
		MaxSnapshots: 64,
	}
}

func (c Config) Validate() error {
	if c.Episodes <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidEpisodes, c.Episodes)
	}
	if math.IsNaN(c.Gamma) || c.Gamma < 0 || c.Gamma > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidGamma, c.Gamma)
	}
	if !c.Policy.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPolicy, c.Policy)
	}
	switch c.Method {
	case Prediction:
	case Control, Both:
		if c.Policy != Behaviour {
			return fmt.Errorf("%w: %v requires episodes from the %q policy, got %q",
				ErrUnknownPolicy, c.Method, Behaviour, c.Policy)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownMethod, c.Method)
	}
	if c.TrackSnapshots {
		if c.Schedule == nil {
			return fmt.Errorf("%w: no schedule", ErrInvalidSchedule)
		}
		if err := c.Schedule.Validate(); err != nil {
			return err
		}
		if c.MaxSnapshots <= 0 {
			return fmt.Errorf("%w: MaxSnapshots must be > 0, got %d", ErrInvalidSchedule, c.MaxSnapshots)
		}
	}
	return nil
}

func (c Config) estimators() []Estimator {
	switch c.Method {
	case Prediction:
		return []Estimator{FirstVisitPrediction{}}
	case Control:
		return []Estimator{OffPolicyControl{}}
	case Both:
		return []Estimator{FirstVisitPrediction{}, OffPolicyControl{}}
	default:
		panic("unhandled method: " + c.Method.String())
	}
}
