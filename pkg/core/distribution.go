package core

import "sort"

// DiscreteDistribution1D samples indices proportionally to non-negative weights
type DiscreteDistribution1D struct {
	cdf []float64
}

// NewDiscreteDistribution1D builds the normalised CDF of weights.
// All-zero weights fall back to a uniform distribution.
func NewDiscreteDistribution1D(weights []float64) DiscreteDistribution1D {
	cdf := make([]float64, len(weights)+1)
	for i, w := range weights {
		cdf[i+1] = cdf[i] + max(0, w)
	}
	total := cdf[len(weights)]
	for i := 1; i < len(cdf); i++ {
		if total > 0 {
			cdf[i] /= total
		} else {
			cdf[i] = float64(i) / float64(len(weights))
		}
	}
	return DiscreteDistribution1D{cdf: cdf}
}

// Len returns the number of entries
func (d DiscreteDistribution1D) Len() int {
	return len(d.cdf) - 1
}

// Sample returns the index whose CDF interval contains u, and its probability
func (d DiscreteDistribution1D) Sample(u float64) (int, float64) {
	n := d.Len()
	if n <= 0 {
		return 0, 0
	}
	// first index with cdf[idx+1] > u, skipping zero-probability entries
	idx := sort.Search(n, func(i int) bool { return d.cdf[i+1] > u })
	if idx >= n {
		idx = n - 1
		for idx > 0 && d.PMF(idx) == 0 {
			idx--
		}
	}
	return idx, d.PMF(idx)
}

// PMF returns the probability of index i
func (d DiscreteDistribution1D) PMF(i int) float64 {
	if i < 0 || i >= d.Len() {
		return 0
	}
	return d.cdf[i+1] - d.cdf[i]
}
