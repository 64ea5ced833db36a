package namegen

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
)

// Entry is a single name together with its relative selection weight. It is
// the element type for literal NameList tables.
type Entry[S any] struct {
	Name   S
	Weight float64
}

// NameList is a weighted list of singular names. Use it when full names are
// not needed (e.g. only a character's family name is ever shown).
//
// Names and weights grow in lockstep and are append-only; entries are never
// removed or reweighted in place. The zero value is a valid empty list.
//
// Sample rebuilds the alias table over the current weights on every call,
// which keeps insertion cheap but makes a single draw O(n). Callers that draw
// many names from an unchanging list should use SampleBatch, which builds the
// table once per call and amortizes it across the batch, or build a
// WeightedSampler themselves and hold on to it.
type NameList[S any] struct {
	names   []S
	weights []float64
	logger  *slog.Logger
}

// NewNameList creates a NameList from parallel name and weight sequences.
// It returns an error wrapping ErrLengthMismatch if the sequences differ in
// length; no weight validation happens here, so a list that is never sampled
// may hold any weights. Equal-length inputs of any size, including zero,
// succeed.
func NewNameList[S any](names []S, weights []float64) (*NameList[S], error) {
	if len(names) != len(weights) {
		return nil, fmt.Errorf("%d names against %d weights: %w", len(names), len(weights), ErrLengthMismatch)
	}
	return &NameList[S]{
		names:   append([]S(nil), names...),
		weights: append([]float64(nil), weights...),
		logger:  discard,
	}, nil
}

// NameListFromEntries creates a NameList from a literal sequence of
// (name, weight) entries. It cannot fail; invalid weights surface later, at
// sampling time.
func NameListFromEntries[S any](entries []Entry[S]) *NameList[S] {
	list := &NameList[S]{
		names:   make([]S, 0, len(entries)),
		weights: make([]float64, 0, len(entries)),
		logger:  discard,
	}
	for _, entry := range entries {
		list.Insert(entry.Name, entry.Weight)
	}
	return list
}

// SetLogger sets the logger for the NameList. By default, all logs are
// discarded. Providing a `log/slog.Logger` enables debug records for sampler
// rebuilds, which is useful when hunting down hot Sample call sites that
// should be using SampleBatch.
func (l *NameList[S]) SetLogger(logger *slog.Logger) {
	if logger != nil {
		l.logger = logger
	}
}

// Insert appends a name and its weight to the list. It never rebuilds the
// sampler; the cost is deferred to the next sampling call.
func (l *NameList[S]) Insert(name S, weight float64) {
	l.names = append(l.names, name)
	l.weights = append(l.weights, weight)
}

// WithEntry appends a name and its weight and returns the list, so literal
// lists can be built up in a single chained expression.
func (l *NameList[S]) WithEntry(name S, weight float64) *NameList[S] {
	l.Insert(name, weight)
	return l
}

// Len returns the number of entries in the list.
func (l *NameList[S]) Len() int {
	return len(l.names)
}

// Name returns the name at index i. Indices are stable: an index drawn by a
// WeightedSampler built over this list's weights remains valid for as long
// as the list exists, since entries are never removed.
func (l *NameList[S]) Name(i int) S {
	return l.names[i]
}

// Weight returns the weight at index i.
func (l *NameList[S]) Weight(i int) float64 {
	return l.weights[i]
}

// TotalWeight returns the sum of all weights in the list.
func (l *NameList[S]) TotalWeight() float64 {
	var sum float64
	for _, w := range l.weights {
		sum += w
	}
	return sum
}

// Sample draws a single random name from the list. The alias table is
// rebuilt over the current weights on every call, so this is O(n) per draw;
// see SampleBatch for the amortized variant.
//
// It returns an error wrapping ErrEmptyList if the list has no entries, or
// ErrInvalidWeights if the current weights cannot be sampled from.
func (l *NameList[S]) Sample(rng *rand.Rand, opts ...SampleOption) (S, error) {
	var zero S
	draw, err := l.drawer(newSampleOptions(opts))
	if err != nil {
		return zero, err
	}
	return l.names[draw(rng)], nil
}

// SampleBatch draws count random names, independently and with replacement.
// The alias table is built once and reused for the whole batch, so the cost
// is O(n + count) rather than count times O(n). The drawn sequence is
// stream-identical to count sequential Sample calls with the same rng.
//
// The validity preconditions are the same as for Sample, and they are checked
// even when count is zero or less (which otherwise yields an empty result).
func (l *NameList[S]) SampleBatch(rng *rand.Rand, count int, opts ...SampleOption) ([]S, error) {
	draw, err := l.drawer(newSampleOptions(opts))
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, nil
	}
	names := make([]S, count)
	for i := range names {
		names[i] = l.names[draw(rng)]
	}
	return names, nil
}

// drawer validates the current weights and returns a draw function bound to
// a freshly shaped weight set. The deterministic zero-temperature path
// consumes nothing from the rng; every other path consumes exactly two
// values per draw.
func (l *NameList[S]) drawer(options *sampleOptions) (func(rng *rand.Rand) int, error) {
	if len(l.names) == 0 {
		return nil, ErrEmptyList
	}
	if _, err := checkWeights(l.weights); err != nil {
		return nil, err
	}

	shaped := shapeWeights(l.weights, options)

	if options.temperature <= 0 {
		best := argmaxWeight(shaped)
		return func(*rand.Rand) int { return best }, nil
	}

	sampler, err := NewWeightedSampler(shaped)
	if err != nil {
		return nil, fmt.Errorf("could not build sampler: %w", err)
	}
	l.log().Debug("Rebuilt alias table for sampling",
		slog.Int("entries", len(l.names)),
	)
	return sampler.Sample, nil
}

func (l *NameList[S]) log() *slog.Logger {
	// The zero-value list has no logger; treat it as discard.
	if l.logger == nil {
		return discard
	}
	return l.logger
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))
