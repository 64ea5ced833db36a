package namegen

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWeightedSamplerInvalidWeights(t *testing.T) {
	testCases := []struct {
		name    string
		weights []float64
	}{
		{name: "Empty weights", weights: nil},
		{name: "All zero", weights: []float64{0, 0, 0}},
		{name: "Negative weight", weights: []float64{1, -0.5, 2}},
		{name: "NaN weight", weights: []float64{1, math.NaN(), 2}},
		{name: "Positive infinity", weights: []float64{1, math.Inf(1)}},
		{name: "Negative infinity", weights: []float64{1, math.Inf(-1)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewWeightedSampler(tc.weights)
			if !errors.Is(err, ErrInvalidWeights) {
				t.Errorf("NewWeightedSampler(%v) error = %v, want ErrInvalidWeights", tc.weights, err)
			}
		})
	}
}

func TestNewWeightedSamplerValid(t *testing.T) {
	// Zero-weight entries are legal as long as the sum is positive.
	sampler, err := NewWeightedSampler([]float64{2, 0, 1})
	require.NoError(t, err)
	require.Equal(t, 3, sampler.Len())
}

func TestSamplerDistribution(t *testing.T) {
	sampler, err := NewWeightedSampler([]float64{2, 1})
	require.NoError(t, err)

	rng := newTestRNG()
	counts := make([]int, 2)
	for i := 0; i < sampleCount; i++ {
		counts[sampler.Sample(rng)]++
	}

	require.Equal(t, sampleCount, counts[0]+counts[1])
	require.InEpsilon(t, 2.0, float64(counts[0])/float64(counts[1]), sampleEpsilon)
}

func TestSamplerZeroWeightExclusion(t *testing.T) {
	sampler, err := NewWeightedSampler([]float64{1, 0, 3})
	require.NoError(t, err)

	rng := newTestRNG()
	for i := 0; i < 10000; i++ {
		if idx := sampler.Sample(rng); idx == 1 {
			t.Fatalf("Sample() returned zero-weight index 1 on draw %d", i)
		}
	}
}

func TestSamplerDeterminism(t *testing.T) {
	weights := []float64{0.5, 3, 1.25, 0, 2}

	first, err := NewWeightedSampler(weights)
	require.NoError(t, err)
	second, err := NewWeightedSampler(weights)
	require.NoError(t, err)

	// Identical seeds must replay the identical index sequence.
	rngA := rand.New(rand.NewPCG(42, 7))
	rngB := rand.New(rand.NewPCG(42, 7))
	for i := 0; i < 1000; i++ {
		a, b := first.Sample(rngA), second.Sample(rngB)
		if a != b {
			t.Fatalf("draw %d diverged: %d vs %d", i, a, b)
		}
	}
}

func TestSamplerBatchMatchesSingleDraws(t *testing.T) {
	sampler, err := NewWeightedSampler([]float64{2, 1, 4})
	require.NoError(t, err)

	rngBatch := rand.New(rand.NewPCG(9, 9))
	rngSingle := rand.New(rand.NewPCG(9, 9))

	batch := sampler.SampleBatch(rngBatch, sampleCount)
	require.Len(t, batch, sampleCount)

	for i, idx := range batch {
		if single := sampler.Sample(rngSingle); single != idx {
			t.Fatalf("draw %d diverged: batch %d vs single %d", i, idx, single)
		}
	}
}

func TestSamplerBatchEmptyCount(t *testing.T) {
	sampler, err := NewWeightedSampler([]float64{1, 1})
	require.NoError(t, err)
	require.Empty(t, sampler.SampleBatch(newTestRNG(), 0))
	require.Empty(t, sampler.SampleBatch(newTestRNG(), -3))
}

func TestSamplerSingleEntry(t *testing.T) {
	sampler, err := NewWeightedSampler([]float64{0.001})
	require.NoError(t, err)

	rng := newTestRNG()
	for i := 0; i < 100; i++ {
		require.Equal(t, 0, sampler.Sample(rng))
	}
}

func BenchmarkSamplerBuild(b *testing.B) {
	rng := newTestRNG()
	weights := make([]float64, 1024)
	for i := range weights {
		weights[i] = rng.Float64()
	}
	weights[0] = 1 // keep the sum positive regardless of the draw above

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := NewWeightedSampler(weights); err != nil {
			b.Fatalf("NewWeightedSampler() error = %v", err)
		}
	}
}

func BenchmarkSamplerSample(b *testing.B) {
	rng := newTestRNG()
	weights := make([]float64, 1024)
	for i := range weights {
		weights[i] = rng.Float64() + 0.01
	}
	sampler, err := NewWeightedSampler(weights)
	if err != nil {
		b.Fatalf("NewWeightedSampler() error = %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sampler.Sample(rng)
	}
}
