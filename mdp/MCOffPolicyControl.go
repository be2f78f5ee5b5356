package mdp

// OffPolicyControl learns the greedy target policy from episodes generated
// under the behaviour policy, using weighted importance sampling.
type OffPolicyControl struct{}

func (OffPolicyControl) Name() string { return "off-policy MC control (weighted IS)" }

func (OffPolicyControl) ProcessEpisode(space *StateSpace, episode Episode, gamma float64) {
	greedy := PolicyGreedy{Space: space}
	G := 0.0
	W := 1.0
	for t := len(episode) - 1; t >= 0; t-- {
		step := episode[t]
		G = gamma*G + float64(step.Reward)

		rec := space.Record(step.State)
		// Once the behaviour and target actions diverge every earlier step
		// carries zero weight: Q and C stay put, the target is still refreshed.
		rec.ActionValue(step.Action).Add(W, G)
		target := greedy.Act(step.State)
		rec.Policies[Target] = target

		if W == 0 {
			continue
		}
		if step.Action != target {
			W = 0
			continue
		}
		W *= 1.0 / float64(len(Actions))
	}
}
