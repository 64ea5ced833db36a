package namegen

import (
	"math/rand/v2"
)

const (
	// sampleCount draws are enough for ratio checks to hold well within
	// sampleEpsilon, and the seeded generators keep them reproducible.
	sampleCount   = 3000
	sampleEpsilon = 0.2
)

// newTestRNG returns a deterministically seeded generator so distribution
// checks cannot flake across runs.
func newTestRNG() *rand.Rand {
	return rand.New(rand.NewPCG(0x5eed, 0xcafe))
}

// newTestList builds the canonical two-entry test list.
func newTestList() *NameList[string] {
	return NameListFromEntries([]Entry[string]{
		{Name: "Foo", Weight: 2},
		{Name: "Bar", Weight: 1},
	})
}

// countNames tallies how often each name appears in a sample run.
func countNames(names []string) map[string]int {
	counts := make(map[string]int)
	for _, name := range names {
		counts[name]++
	}
	return counts
}
