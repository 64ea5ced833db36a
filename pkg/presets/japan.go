package presets

import "github.com/CTAG07/Nomina/pkg/namegen"

// Weights are the percentage frequencies published by the sources below.

// Source: https://forebears.io/japan/forenames
var japanGivenNames = []namegen.Entry[string]{
	{Name: "Kenji", Weight: 1.545}, {Name: "Hiroshi", Weight: 1.511},
	{Name: "Shigeru", Weight: 1.208}, {Name: "Sachiko", Weight: 1.042},
	{Name: "Masako", Weight: 1.009}, {Name: "Katsumi", Weight: 0.989},
	{Name: "Yoko", Weight: 0.959}, {Name: "Michiko", Weight: 0.911},
	{Name: "Toshio", Weight: 0.871}, {Name: "Yoshiko", Weight: 0.871},
	{Name: "Hiromi", Weight: 0.830}, {Name: "Hiroko", Weight: 0.826},
	{Name: "Yoshio", Weight: 0.790}, {Name: "Kazuo", Weight: 0.760},
	{Name: "Akira", Weight: 0.753}, {Name: "Keiko", Weight: 0.739},
	{Name: "Hisako", Weight: 0.728}, {Name: "Yoshimi", Weight: 0.705},
	{Name: "Fumiko", Weight: 0.675}, {Name: "Masao", Weight: 0.671},
}

// Source: https://forebears.io/japan/surnames
var japanFamilyNames = []namegen.Entry[string]{
	{Name: "Sato", Weight: 1.957}, {Name: "Suzuki", Weight: 1.889},
	{Name: "Tanaka", Weight: 1.414}, {Name: "Watanabe", Weight: 1.364},
	{Name: "Takahashi", Weight: 1.343}, {Name: "Ito", Weight: 1.240},
	{Name: "Yamamoto", Weight: 1.131}, {Name: "Nakamura", Weight: 1.124},
	{Name: "Kobayashi", Weight: 1.075}, {Name: "Saito", Weight: 1.038},
	{Name: "Kato", Weight: 0.936}, {Name: "Yoshida", Weight: 0.867},
	{Name: "Yamada", Weight: 0.848}, {Name: "Sasaki", Weight: 0.707},
	{Name: "Matsumoto", Weight: 0.685}, {Name: "Yamaguchi", Weight: 0.674},
	{Name: "Inoue", Weight: 0.649}, {Name: "Kimura", Weight: 0.601},
	{Name: "Shimizu", Weight: 0.574}, {Name: "Hayashi", Weight: 0.572},
}

// JapanGivenNames returns a fresh list of common given names in Japan,
// weighted by frequency.
func JapanGivenNames() *namegen.NameList[string] {
	return namegen.NameListFromEntries(japanGivenNames)
}

// JapanFamilyNames returns a fresh list of common family names in Japan,
// weighted by frequency.
func JapanFamilyNames() *namegen.NameList[string] {
	return namegen.NameListFromEntries(japanFamilyNames)
}

// JapanFullNames returns a fresh full-name list combining JapanGivenNames
// and JapanFamilyNames.
func JapanFullNames() *namegen.FullNameList[string] {
	return namegen.NewFullNameList(JapanGivenNames(), JapanFamilyNames())
}
