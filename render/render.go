// Package render prints the state space as coloured terminal grids: one row
// per player sum, one column per dealer card.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/CodeStranger-Fred/blackjack/mdp"
	"github.com/logrusorgru/aurora"
)

func header(w io.Writer, au aurora.Aurora, title string) {
	fmt.Fprintln(w, au.Bold(title))
	fmt.Fprint(w, "     ")
	for d := mdp.MinDealerCard; d <= mdp.MaxDealerCard; d++ {
		label := fmt.Sprint(d)
		if d == 1 {
			label = "A"
		}
		fmt.Fprintf(w, "%7s", label)
	}
	fmt.Fprintln(w)
}

func PrintPolicy(w io.Writer, au aurora.Aurora, space *mdp.StateSpace, policy mdp.PolicyName, usableAce bool) {
	header(w, au, fmt.Sprintf("%s policy, usable ace: %v", policy, usableAce))
	for p := mdp.MaxPlayerSum; p >= mdp.MinPlayerSum; p-- {
		fmt.Fprintf(w, "%4d ", p)
		for d := mdp.MinDealerCard; d <= mdp.MaxDealerCard; d++ {
			a := space.Policy(mdp.State{PlayerSum: p, DealerCard: d, UsableAce: usableAce}, policy)
			cell := fmt.Sprintf("%6s ", a)
			if a == mdp.Stick {
				fmt.Fprint(w, au.Green(cell))
			} else {
				fmt.Fprint(w, au.Blue(cell))
			}
		}
		fmt.Fprintln(w, au.White("|"))
	}
}

func PrintValueEstimates(w io.Writer, au aurora.Aurora, estimator mdp.StateValueEstimator, usableAce bool) {
	header(w, au, fmt.Sprintf("state values, usable ace: %v", usableAce))
	for p := mdp.MaxPlayerSum; p >= mdp.MinPlayerSum; p-- {
		fmt.Fprintf(w, "%4d ", p)
		for d := mdp.MinDealerCard; d <= mdp.MaxDealerCard; d++ {
			v := estimator.Estimate(mdp.State{PlayerSum: p, DealerCard: d, UsableAce: usableAce})
			cell := format2x2(v)
			switch {
			case v > 0:
				fmt.Fprint(w, au.Green(cell))
			case v < 0:
				fmt.Fprint(w, au.Red(cell))
			default:
				fmt.Fprint(w, au.Blue(cell))
			}
		}
		fmt.Fprintln(w, au.White("|"))
	}
}

const barWidth = 40

// ProgressBar redraws a single progress line in place.
func ProgressBar(w io.Writer, au aurora.Aurora, fraction float64) {
	fraction = min(max(fraction, 0), 1)
	done := int(fraction * barWidth)
	bar := strings.Repeat("#", done) + strings.Repeat(".", barWidth-done)
	fmt.Fprintf(w, "\r[%s] %6.2f%%", au.Cyan(bar), fraction*100)
	if fraction == 1 {
		fmt.Fprintln(w)
	}
}

func format2x2(x float64) string {
	if x < 0 {
		return fmt.Sprintf(" -%05.2f", -x)
	}
	return fmt.Sprintf("  %05.2f", x)
}
