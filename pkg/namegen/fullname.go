package namegen

import (
	"math/rand/v2"
)

// FullName is a sampled (given name, family name) pair. The locale-neutral
// terms are deliberate: whether the given name is written first or last
// varies by culture, so "first" and "last" would be ambiguous.
type FullName[S any] struct {
	Given  S
	Family S
}

// FullNameList composes two independent NameLists, one for given names and
// one for family names. The two lists need not agree on length or weight
// scale; each draw takes one name from each.
type FullNameList[S any] struct {
	givenNames  *NameList[S]
	familyNames *NameList[S]
}

// NewFullNameList creates a FullNameList from a given-name list and a
// family-name list. No validation happens beyond each list being usable on
// its own; an empty or badly weighted sub-list surfaces at sampling time.
func NewFullNameList[S any](given, family *NameList[S]) *FullNameList[S] {
	return &FullNameList[S]{
		givenNames:  given,
		familyNames: family,
	}
}

// GivenNames returns the underlying given-name list.
func (l *FullNameList[S]) GivenNames() *NameList[S] {
	return l.givenNames
}

// FamilyNames returns the underlying family-name list.
func (l *FullNameList[S]) FamilyNames() *NameList[S] {
	return l.familyNames
}

// Sample draws one full name: a given name first, then a family name,
// sequentially from the same rng stream. The two draws share no state, so
// the pair components are independent.
func (l *FullNameList[S]) Sample(rng *rand.Rand, opts ...SampleOption) (FullName[S], error) {
	given, err := l.givenNames.Sample(rng, opts...)
	if err != nil {
		return FullName[S]{}, err
	}
	family, err := l.familyNames.Sample(rng, opts...)
	if err != nil {
		return FullName[S]{}, err
	}
	return FullName[S]{Given: given, Family: family}, nil
}

// SampleBatch draws count full names with replacement. Each side's alias
// table is built once for the whole batch, and the draws still alternate
// given-then-family per pair, so the rng stream is consumed in the same
// order as count sequential Sample calls.
func (l *FullNameList[S]) SampleBatch(rng *rand.Rand, count int, opts ...SampleOption) ([]FullName[S], error) {
	options := newSampleOptions(opts)
	drawGiven, err := l.givenNames.drawer(options)
	if err != nil {
		return nil, err
	}
	drawFamily, err := l.familyNames.drawer(options)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, nil
	}
	fullNames := make([]FullName[S], count)
	for i := range fullNames {
		fullNames[i] = FullName[S]{
			Given:  l.givenNames.names[drawGiven(rng)],
			Family: l.familyNames.names[drawFamily(rng)],
		}
	}
	return fullNames, nil
}
