package presets

import "github.com/CTAG07/Nomina/pkg/namegen"

// Source: https://forebears.io/russia/forenames
var russiaGivenNames = []namegen.Entry[string]{
	{Name: "Sergey", Weight: 4.943}, {Name: "Aleksandr", Weight: 4.530},
	{Name: "Elena", Weight: 4.312}, {Name: "Tatyana", Weight: 3.744},
	{Name: "Olga", Weight: 3.609}, {Name: "Natalya", Weight: 3.605},
	{Name: "Andrey", Weight: 3.487}, {Name: "Ekaterina", Weight: 3.285},
	{Name: "Dmitriy", Weight: 3.196}, {Name: "Irina", Weight: 3.030},
	{Name: "Vladimir", Weight: 2.940}, {Name: "Aleksey", Weight: 2.850},
	{Name: "Svetlana", Weight: 2.768}, {Name: "Anastasiya", Weight: 2.769},
	{Name: "Anna", Weight: 2.278}, {Name: "Maksim", Weight: 1.910},
	{Name: "Marina", Weight: 1.882}, {Name: "Ivan", Weight: 1.834},
	{Name: "Evgeniy", Weight: 1.799}, {Name: "Alexander", Weight: 1.748},
}

// Source: https://forebears.io/russia/surnames
var russiaFamilyNames = []namegen.Entry[string]{
	{Name: "Ivanova", Weight: 0.928}, {Name: "Ivanov", Weight: 0.881},
	{Name: "Kuznetsova", Weight: 0.454}, {Name: "Kuznetsov", Weight: 0.437},
	{Name: "Petrov", Weight: 0.430}, {Name: "Smirnova", Weight: 0.428},
	{Name: "Magomedov", Weight: 0.385}, {Name: "Petrova", Weight: 0.383},
	{Name: "Smirnov", Weight: 0.366}, {Name: "Popov", Weight: 0.366},
	{Name: "Popova", Weight: 0.366}, {Name: "Volkova", Weight: 0.304},
	{Name: "Novikova", Weight: 0.258}, {Name: "Morozova", Weight: 0.240},
	{Name: "Sokolova", Weight: 0.230}, {Name: "Pavlova", Weight: 0.223},
	{Name: "Romanova", Weight: 0.222}, {Name: "Volkov", Weight: 0.219},
	{Name: "Shevchenko", Weight: 0.218}, {Name: "Andreeva", Weight: 0.216},
}

// RussiaGivenNames returns a fresh list of the most common given names in
// the Russian Federation, weighted by frequency.
func RussiaGivenNames() *namegen.NameList[string] {
	return namegen.NameListFromEntries(russiaGivenNames)
}

// RussiaFamilyNames returns a fresh list of the most common family names in
// the Russian Federation, weighted by frequency.
func RussiaFamilyNames() *namegen.NameList[string] {
	return namegen.NameListFromEntries(russiaFamilyNames)
}

// RussiaFullNames returns a fresh full-name list combining RussiaGivenNames
// and RussiaFamilyNames.
func RussiaFullNames() *namegen.FullNameList[string] {
	return namegen.NewFullNameList(RussiaGivenNames(), RussiaFamilyNames())
}
