package namegen

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// WeightedSampler draws indices with probability proportional to a fixed set
// of weights using Walker's alias method. Building the table costs O(n); each
// draw afterwards costs O(1), which is what makes it preferable to a
// cumulative-weight binary search when many draws are made against the same
// weight set.
//
// A WeightedSampler is immutable once built. Index i is drawn with
// probability weights[i] / sum(weights); zero-weight entries are legal and
// are never drawn.
type WeightedSampler struct {
	prob  []float64
	alias []int
}

// NewWeightedSampler builds an alias table from the given weights. It returns
// an error wrapping ErrInvalidWeights if any weight is negative or not
// finite, or if the weights do not sum to a positive value (which includes an
// empty slice).
func NewWeightedSampler(weights []float64) (*WeightedSampler, error) {
	n := len(weights)

	sum, err := checkWeights(weights)
	if err != nil {
		return nil, err
	}

	// Scale every weight so the average bucket probability is exactly 1,
	// then split the indices into buckets that are under- or over-full.
	scaled := make([]float64, n)
	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, w := range weights {
		scaled[i] = w * float64(n) / sum
		if scaled[i] < 1.0 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	prob := make([]float64, n)
	alias := make([]int, n)

	// Pair each under-full bucket with an over-full one: the under-full
	// bucket keeps its own probability and borrows the rest from its alias.
	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		prob[s] = scaled[s]
		alias[s] = l

		scaled[l] -= 1.0 - scaled[s]
		if scaled[l] < 1.0 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}

	// Leftovers on either side are exactly full, modulo floating-point
	// rounding, so their coin flip always lands on the bucket itself.
	for _, i := range large {
		prob[i] = 1.0
	}
	for _, i := range small {
		prob[i] = 1.0
	}

	return &WeightedSampler{prob: prob, alias: alias}, nil
}

// checkWeights validates a weight set for sampling and returns its sum.
func checkWeights(weights []float64) (float64, error) {
	var sum float64
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, fmt.Errorf("weight at index %d is not finite: %w", i, ErrInvalidWeights)
		}
		if w < 0 {
			return 0, fmt.Errorf("weight at index %d is negative: %w", i, ErrInvalidWeights)
		}
		sum += w
	}
	if sum <= 0 {
		return 0, fmt.Errorf("%d weights with total weight 0: %w", len(weights), ErrInvalidWeights)
	}
	return sum, nil
}

// Len returns the number of weighted entries the sampler was built over.
func (s *WeightedSampler) Len() int {
	return len(s.prob)
}

// Sample draws one index in O(1). It consumes exactly two values from rng
// (one IntN, one Float64) on every call, so a seeded generator replays an
// identical index sequence.
func (s *WeightedSampler) Sample(rng *rand.Rand) int {
	i := rng.IntN(len(s.prob))
	if rng.Float64() < s.prob[i] {
		return i
	}
	return s.alias[i]
}

// SampleBatch draws count independent indices over the prebuilt table. The
// result is stream-identical to count sequential calls to Sample with the
// same rng. A count of zero or less yields an empty slice.
func (s *WeightedSampler) SampleBatch(rng *rand.Rand, count int) []int {
	if count <= 0 {
		return nil
	}
	indices := make([]int, count)
	for i := range indices {
		indices[i] = s.Sample(rng)
	}
	return indices
}
