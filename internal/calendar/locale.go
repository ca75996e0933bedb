package calendar

import (
	"fmt"

	"golang.org/x/text/language"
)

// Locale selects which literal name tables are used.
// It is always passed explicitly; nothing in persiandt reads a process-wide
// language setting.
type Locale int

const (
	// Farsi selects Persian names. The week starts on Saturday (شنبه).
	Farsi Locale = iota
	// English selects transliterated month names and English weekday names.
	English
)

// String returns the BCP 47 base language of the locale.
func (l Locale) String() string {
	switch l {
	case Farsi:
		return "fa"
	case English:
		return "en"
	default:
		return fmt.Sprintf("Locale(%d)", int(l))
	}
}

// Tag returns the language tag used for case mapping.
func (l Locale) Tag() language.Tag {
	if l == English {
		return language.English
	}
	return language.Persian
}

// IsEnglish reports whether l selects the English tables.
func (l Locale) IsEnglish() bool {
	return l == English
}

// ParseLocale maps a BCP 47 tag ("fa", "fa-IR", "en-US", ...) to a Locale.
// Only the base language is considered.
func ParseLocale(s string) (Locale, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return Farsi, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	base, _ := tag.Base()
	switch base.String() {
	case "fa":
		return Farsi, nil
	case "en":
		return English, nil
	default:
		return Farsi, fmt.Errorf("unsupported locale %q: must be fa or en", s)
	}
}
