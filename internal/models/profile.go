// internal/models/profile.go
package models

import "time"

// ProfileSection is one addressable unit of the exhibitor profile with a
// value per active locale.
type ProfileSection struct {
	ID            SectionID    `json:"id"`
	Name          string       `json:"name"`
	Group         SectionGroup `json:"group"`
	Kind          SectionKind  `json:"kind"`
	IsMandatory   bool         `json:"isMandatory"`
	IsNotRelevant bool         `json:"isNotRelevant"`
	// Fields names the positional entries of a multi-field section.
	Fields []string `json:"fields,omitempty"`
	// AggregateStatus is derived from LocaleValues and refreshed on every write.
	AggregateStatus SectionStatus          `json:"aggregateStatus"`
	LocaleValues    map[Locale]LocaleValue `json:"localeValues"`
}

// Clone returns a copy that shares no mutable state with s.
func (s ProfileSection) Clone() ProfileSection {
	out := s
	if s.Fields != nil {
		out.Fields = make([]string, len(s.Fields))
		copy(out.Fields, s.Fields)
	}
	if s.LocaleValues != nil {
		out.LocaleValues = make(map[Locale]LocaleValue, len(s.LocaleValues))
		for l, v := range s.LocaleValues {
			out.LocaleValues[l] = v
		}
	}
	return out
}

// IsProducts reports whether completeness of s is decided by product existence.
func (s ProfileSection) IsProducts() bool {
	return s.Kind == KindProducts || s.ID == SectionProducts
}

// LocaleStatus returns the status for l; a missing locale reads as Empty.
func (s ProfileSection) LocaleStatus(l Locale) SectionStatus {
	if v, ok := s.LocaleValues[l]; ok {
		return v.Status
	}
	return StatusEmpty
}

// ExhibitorProfile is the aggregate root of the completion engine.
type ExhibitorProfile struct {
	ID               string           `json:"id"`
	CompanyName      string           `json:"companyName"`
	PrimaryLocale    Locale           `json:"primaryLocale"`
	SecondaryLocales []Locale         `json:"secondaryLocales"`
	PackageType      PackageType      `json:"packageType"`
	Sections         []ProfileSection `json:"sections"`
	ProductCount     int              `json:"productCount"`
	Version          int64            `json:"version"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// Locales returns the profile's locale set.
func (p ExhibitorProfile) Locales() LocaleSet {
	return LocaleSet{Primary: p.PrimaryLocale, Secondary: p.SecondaryLocales}
}

// ActiveLocales returns the primary locale followed by the secondary locales.
func (p ExhibitorProfile) ActiveLocales() []Locale {
	return p.Locales().Active()
}

func (p ExhibitorProfile) HasProducts() bool {
	return p.ProductCount > 0
}

// SectionIndex returns the position of id in Sections, or -1.
func (p ExhibitorProfile) SectionIndex(id SectionID) int {
	for i := range p.Sections {
		if p.Sections[i].ID == id {
			return i
		}
	}
	return -1
}

func (p ExhibitorProfile) Section(id SectionID) (ProfileSection, bool) {
	if i := p.SectionIndex(id); i >= 0 {
		return p.Sections[i], true
	}
	return ProfileSection{}, false
}

// Clone returns a deep copy of p.
func (p ExhibitorProfile) Clone() ExhibitorProfile {
	out := p
	if p.SecondaryLocales != nil {
		out.SecondaryLocales = make([]Locale, len(p.SecondaryLocales))
		copy(out.SecondaryLocales, p.SecondaryLocales)
	}
	if p.Sections != nil {
		out.Sections = make([]ProfileSection, len(p.Sections))
		for i, s := range p.Sections {
			out.Sections[i] = s.Clone()
		}
	}
	return out
}
