// internal/models/locale.go
package models

import (
	"fmt"
	"strings"
)

// Locale is one of the supported content languages of an exhibitor profile.
type Locale string

const (
	LocaleDE Locale = "de"
	LocaleEN Locale = "en"
	LocaleFR Locale = "fr"
)

// AllLocales lists the supported locales in their canonical order.
func AllLocales() []Locale {
	return []Locale{LocaleDE, LocaleEN, LocaleFR}
}

// ValidLocales is the canonical set of accepted locale tags.
var ValidLocales = map[Locale]bool{
	LocaleDE: true,
	LocaleEN: true,
	LocaleFR: true,
}

var primaryCapable = map[Locale]bool{
	LocaleDE: true,
	LocaleEN: true,
}

// ParseLocale normalizes a locale tag such as "DE" or " en ".
func ParseLocale(s string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	if !ValidLocales[l] {
		return "", fmt.Errorf("unsupported locale: %q", s)
	}
	return l, nil
}

func (l Locale) String() string {
	return string(l)
}

// IsValid reports whether l belongs to the supported set.
func (l Locale) IsValid() bool {
	return ValidLocales[l]
}

// CanBePrimary reports whether l may be used as a profile's primary locale.
func (l Locale) CanBePrimary() bool {
	return primaryCapable[l]
}

// LocaleSet is the primary locale plus the ordered secondary locales of a profile.
type LocaleSet struct {
	Primary   Locale   `json:"primary"`
	Secondary []Locale `json:"secondary,omitempty"`
}

// Active returns the primary locale followed by the secondary locales.
func (s LocaleSet) Active() []Locale {
	out := make([]Locale, 0, 1+len(s.Secondary))
	out = append(out, s.Primary)
	out = append(out, s.Secondary...)
	return out
}

// Contains reports whether l is the primary or one of the secondary locales.
func (s LocaleSet) Contains(l Locale) bool {
	if s.Primary == l {
		return true
	}
	for _, sec := range s.Secondary {
		if sec == l {
			return true
		}
	}
	return false
}

// Validate checks that the primary locale is primary-capable and that all
// secondary locales are supported, distinct and disjoint from the primary.
func (s LocaleSet) Validate() error {
	if !s.Primary.IsValid() {
		return fmt.Errorf("unsupported primary locale: %q", s.Primary)
	}
	if !s.Primary.CanBePrimary() {
		return fmt.Errorf("locale %q cannot be used as primary locale", s.Primary)
	}
	seen := map[Locale]bool{s.Primary: true}
	for _, l := range s.Secondary {
		if !l.IsValid() {
			return fmt.Errorf("unsupported secondary locale: %q", l)
		}
		if seen[l] {
			return fmt.Errorf("locale %q listed more than once", l)
		}
		seen[l] = true
	}
	return nil
}
