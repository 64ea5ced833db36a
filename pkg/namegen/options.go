package namegen

import (
	"math"
	"sort"
)

// sampleOptions is used by the sampling functions to configure default options.
type sampleOptions struct {
	temperature float64
	topK        int
}

// SampleOption is a function that configures sampling parameters. It's used
// as a variadic argument in sampling functions like Sample and SampleBatch.
type SampleOption func(*sampleOptions)

// WithTemperature adjusts the randomness of the selection.
// A value of 1.0 is standard weighted random selection.
// Values > 1.0 increase randomness (making low-weight names more likely).
// Values < 1.0 decrease randomness (making high-weight names even more likely).
// A value of 0 or less results in deterministic selection (always choosing
// the highest-weighted name, the earliest one on ties), consuming nothing
// from the caller's rng. Zero-weight names stay excluded at any temperature.
func WithTemperature(t float64) SampleOption {
	return func(o *sampleOptions) { o.temperature = t }
}

// WithTopK restricts the selection pool to the `k` highest-weighted names.
// A value of 0 or less disables Top-K sampling, and a value of k at or above
// the list length leaves the pool unchanged.
func WithTopK(k int) SampleOption {
	return func(o *sampleOptions) { o.topK = k }
}

func newSampleOptions(opts []SampleOption) *sampleOptions {
	options := &sampleOptions{
		temperature: 1.0,
		topK:        0,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// shapeWeights applies top-K filtering and temperature scaling, returning a
// fresh slice so the caller's weights are never mutated. Indices are kept
// stable: top-K exclusion zeroes a weight rather than removing it.
func shapeWeights(weights []float64, options *sampleOptions) []float64 {
	shaped := make([]float64, len(weights))
	copy(shaped, weights)

	// topK filtering
	if options.topK > 0 && options.topK < len(shaped) {
		order := make([]int, len(shaped))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return shaped[order[a]] > shaped[order[b]]
		})
		for _, i := range order[options.topK:] {
			shaped[i] = 0
		}
	}

	// temperature scaling
	if options.temperature > 0 && options.temperature != 1.0 {
		// Work in the log domain and subtract the maximum before
		// exponentiating, so extreme temperatures stay in float range.
		// log(0) is -Inf, which maps back to exactly 0.
		maxLog := math.Inf(-1)
		for i, w := range shaped {
			shaped[i] = math.Log(w) / options.temperature
			if shaped[i] > maxLog {
				maxLog = shaped[i]
			}
		}
		for i, lw := range shaped {
			shaped[i] = math.Exp(lw - maxLog)
		}
	}

	return shaped
}

// argmaxWeight returns the index of the highest weight, preferring the
// earliest index on ties. It is the deterministic selection path used when
// the temperature is zero or below.
func argmaxWeight(weights []float64) int {
	best := 0
	for i, w := range weights {
		if w > weights[best] {
			best = i
		}
	}
	return best
}
