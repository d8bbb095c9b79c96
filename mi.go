package mutinfo

import "math"

// MutualInformation estimates the mutual information between two equal-length
// sample vectors in nats. Each vector is discretized against its own sorted
// copy into the given number of quantile bins; the score is the plug-in
// estimate over the joint and marginal bin frequencies. Passing the same
// vector twice yields the entropy of its binned distribution. Empty input
// returns 0. NaN and infinite values are not supported.
func MutualInformation(x, y []float64, bins int) float64 {
	if len(x) == 0 || len(y) == 0 {
		return 0
	}
	return miFromBins(binRow(x, bins), binRow(y, bins), bins)
}

// miFromBins computes the plug-in MI estimate from paired bin assignments.
// Counts live in dense slices rather than maps so the accumulation order is
// fixed and repeated runs stay bit-identical.
func miFromBins(xBins, yBins []int, bins int) float64 {
	n := len(xBins)
	if n == 0 {
		return 0
	}

	joint := make([]int, bins*bins)
	xFreq := make([]int, bins)
	yFreq := make([]int, bins)
	for i := 0; i < n; i++ {
		joint[xBins[i]*bins+yBins[i]]++
		xFreq[xBins[i]]++
		yFreq[yBins[i]]++
	}

	var mi float64
	nf := float64(n)
	for xb := 0; xb < bins; xb++ {
		if xFreq[xb] == 0 {
			continue
		}
		px := float64(xFreq[xb]) / nf
		for yb := 0; yb < bins; yb++ {
			c := joint[xb*bins+yb]
			if c == 0 || yFreq[yb] == 0 {
				continue
			}
			pxy := float64(c) / nf
			py := float64(yFreq[yb]) / nf
			mi += pxy * math.Log(pxy/(px*py))
		}
	}
	return mi
}
