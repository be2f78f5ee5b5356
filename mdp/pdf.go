package mdp

import (
	"math"
	"math/rand"
)

type Probability float64

// DiscretePdf is a distribution over a fixed, ordered set of outcomes so that
// sampling with a seeded generator is reproducible.
type DiscretePdf[Category comparable] struct {
	Outcomes []Category
	Probs    []Probability
}

func (p *DiscretePdf[Category]) Add(outcome Category, prob Probability) {
	for i, o := range p.Outcomes {
		if o == outcome {
			p.Probs[i] += prob
			return
		}
	}
	p.Outcomes = append(p.Outcomes, outcome)
	p.Probs = append(p.Probs, prob)
}

func (p DiscretePdf[Category]) Prob(outcome Category) Probability {
	for i, o := range p.Outcomes {
		if o == outcome {
			return p.Probs[i]
		}
	}
	return 0
}

func (p DiscretePdf[Category]) Choose(rng *rand.Rand) Category {
	p.Check()
	v := rng.Float64()
	cumulative := 0.0
	for i, prob := range p.Probs {
		cumulative += float64(prob)
		if v < cumulative {
			return p.Outcomes[i]
		}
	}
	return p.Outcomes[len(p.Outcomes)-1]
}

func (p DiscretePdf[Category]) Check() {
	if len(p.Outcomes) == 0 {
		panic("empty distribution")
	}
	sum := 0.0
	for _, prob := range p.Probs {
		sum += float64(prob)
	}
	if math.Abs(sum-1) > .001 {
		panic("probabilities do not sum to 1")
	}
}
