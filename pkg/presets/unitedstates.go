package presets

import "github.com/CTAG07/Nomina/pkg/namegen"

// Source: https://namecensus.com/first-names/
var unitedStatesGivenNames = []namegen.Entry[string]{
	{Name: "James", Weight: 10.836}, {Name: "John", Weight: 10.682},
	{Name: "Robert", Weight: 10.264}, {Name: "Mary", Weight: 8.586},
	{Name: "Michael", Weight: 8.586}, {Name: "William", Weight: 8.004},
	{Name: "David", Weight: 7.717}, {Name: "Richard", Weight: 5.561},
	{Name: "Charles", Weight: 4.974}, {Name: "Joseph", Weight: 4.585},
	{Name: "Thomas", Weight: 4.507}, {Name: "Patricia", Weight: 3.504},
	{Name: "Linda", Weight: 3.380}, {Name: "Barbara", Weight: 3.200},
	{Name: "Elizabeth", Weight: 3.060}, {Name: "Jennifer", Weight: 3.044},
	{Name: "Maria", Weight: 2.704}, {Name: "Susan", Weight: 2.593},
	{Name: "Margaret", Weight: 2.508}, {Name: "Dorothy", Weight: 2.374},
}

// Source: https://www.thoughtco.com/most-common-us-surnames-1422656
var unitedStatesFamilyNames = []namegen.Entry[string]{
	{Name: "Smith", Weight: 2.443}, {Name: "Johnson", Weight: 1.933},
	{Name: "Williams", Weight: 1.625}, {Name: "Brown", Weight: 1.437},
	{Name: "Jones", Weight: 1.425}, {Name: "Garcia", Weight: 1.166},
	{Name: "Miller", Weight: 1.161}, {Name: "Davis", Weight: 1.116},
	{Name: "Rodriguez", Weight: 1.095}, {Name: "Martinez", Weight: 1.060},
	{Name: "Hernandez", Weight: 1.040}, {Name: "Lopez", Weight: 0.875},
	{Name: "Gonzalez", Weight: 0.841}, {Name: "Wilson", Weight: 0.802},
	{Name: "Anderson", Weight: 0.784}, {Name: "Thomas", Weight: 0.756},
	{Name: "Taylor", Weight: 0.751}, {Name: "Moore", Weight: 0.724},
	{Name: "Jackson", Weight: 0.708}, {Name: "Martin", Weight: 0.703},
}

// UnitedStatesGivenNames returns a fresh list of common given names in the
// United States of America, weighted by frequency.
func UnitedStatesGivenNames() *namegen.NameList[string] {
	return namegen.NameListFromEntries(unitedStatesGivenNames)
}

// UnitedStatesFamilyNames returns a fresh list of common family names in the
// United States of America, weighted by frequency.
func UnitedStatesFamilyNames() *namegen.NameList[string] {
	return namegen.NameListFromEntries(unitedStatesFamilyNames)
}

// UnitedStatesFullNames returns a fresh full-name list combining
// UnitedStatesGivenNames and UnitedStatesFamilyNames.
func UnitedStatesFullNames() *namegen.FullNameList[string] {
	return namegen.NewFullNameList(UnitedStatesGivenNames(), UnitedStatesFamilyNames())
}
