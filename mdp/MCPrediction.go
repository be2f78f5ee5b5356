package mdp

// Estimator folds a finished episode into the state space.
type Estimator interface {
	Name() string
	ProcessEpisode(space *StateSpace, episode Episode, gamma float64)
}

// FirstVisitPrediction estimates state values under the policy that generated
// the episodes. Only the first occurrence of a state within an episode counts.
type FirstVisitPrediction struct{}

func (FirstVisitPrediction) Name() string { return "first-visit MC prediction" }

func (FirstVisitPrediction) ProcessEpisode(space *StateSpace, episode Episode, gamma float64) {
	first := make(map[State]int, len(episode))
	for t := len(episode) - 1; t >= 0; t-- {
		first[episode[t].State] = t
	}

	G := 0.0
	for t := len(episode) - 1; t >= 0; t-- {
		step := episode[t]
		G = gamma*G + float64(step.Reward)
		if first[step.State] != t {
			continue
		}
		rec := space.Record(step.State)
		rec.Visits++
		rec.Value = incrementalMean(rec.Value, rec.Visits, G)
	}
}
