package presets

import (
	"errors"
	"fmt"

	"github.com/CTAG07/Nomina/pkg/namegen"
)

// ErrUnknownLocale is returned when a locale code has no preset tables.
var ErrUnknownLocale = errors.New("no preset name tables for locale")

// Locale identifies a preset table set by its ISO 3166-1 alpha-2 country
// code.
type Locale string

const (
	// Japan is included as an example of a name set that requires the
	// generic terms "given" and "family": "first" and "last" names are
	// reversed in Japanese, making those terms confusing or contradictory.
	Japan Locale = "jp"
	// Russia covers the Russian Federation.
	Russia Locale = "ru"
	// UnitedStates covers the United States of America.
	UnitedStates Locale = "us"
)

// Locales returns every locale with preset tables, in a stable order.
func Locales() []Locale {
	return []Locale{Japan, Russia, UnitedStates}
}

// GivenNames returns a freshly built given-name list for the locale. It
// returns an error wrapping ErrUnknownLocale for a code without presets.
func GivenNames(locale Locale) (*namegen.NameList[string], error) {
	switch locale {
	case Japan:
		return JapanGivenNames(), nil
	case Russia:
		return RussiaGivenNames(), nil
	case UnitedStates:
		return UnitedStatesGivenNames(), nil
	default:
		return nil, fmt.Errorf("%q: %w", locale, ErrUnknownLocale)
	}
}

// FamilyNames returns a freshly built family-name list for the locale. It
// returns an error wrapping ErrUnknownLocale for a code without presets.
func FamilyNames(locale Locale) (*namegen.NameList[string], error) {
	switch locale {
	case Japan:
		return JapanFamilyNames(), nil
	case Russia:
		return RussiaFamilyNames(), nil
	case UnitedStates:
		return UnitedStatesFamilyNames(), nil
	default:
		return nil, fmt.Errorf("%q: %w", locale, ErrUnknownLocale)
	}
}

// FullNames returns a freshly built full-name list for the locale. It
// returns an error wrapping ErrUnknownLocale for a code without presets.
func FullNames(locale Locale) (*namegen.FullNameList[string], error) {
	given, err := GivenNames(locale)
	if err != nil {
		return nil, err
	}
	family, err := FamilyNames(locale)
	if err != nil {
		return nil, err
	}
	return namegen.NewFullNameList(given, family), nil
}
