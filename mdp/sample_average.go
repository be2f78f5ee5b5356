package mdp

// incrementalMean folds sample x into a running mean taken over n samples,
// x included. Exact without keeping the sample history.
func incrementalMean(avg float64, n int, x float64) float64 {
	return avg + (x-avg)/float64(n)
}

type ActionValue struct {
	Q float64
	// C is the cumulative importance-sampling weight.
	C float64
}

// Add applies the weighted incremental mean for return g observed with weight w.
func (v *ActionValue) Add(w, g float64) {
	v.C += w
	if v.C == 0 {
		return
	}
	v.Q += (w / v.C) * (g - v.Q)
}
