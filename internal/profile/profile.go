package profile

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"exhibitor-profile/internal/common/errors"
	"exhibitor-profile/internal/models"
)

// newID is swapped in tests that need stable profile ids.
var newID = uuid.NewString

// NewProfile builds an empty profile with one section per catalog entry the
// package tier is eligible for, each holding an Empty value for every
// active locale.
func NewProfile(companyName string, primary models.Locale, secondaries []models.Locale, pkg models.PackageType, catalog models.Catalog) (models.ExhibitorProfile, error) {
	if strings.TrimSpace(companyName) == "" {
		return models.ExhibitorProfile{}, errors.NewInvalidProfileError("companyName is required")
	}
	if !pkg.IsValid() {
		return models.ExhibitorProfile{}, errors.NewInvalidProfileError(fmt.Sprintf("unknown packageType: %s", pkg))
	}

	locales := models.LocaleSet{Primary: primary, Secondary: append([]models.Locale(nil), secondaries...)}
	if err := locales.Validate(); err != nil {
		return models.ExhibitorProfile{}, errors.NewInvalidLocaleSetError(err.Error())
	}

	active := locales.Active()
	defs := EligibleSections(pkg, catalog)
	sections := make([]models.ProfileSection, 0, len(defs))
	for _, d := range defs {
		s := models.ProfileSection{
			ID:           d.ID,
			Name:         d.Name,
			Group:        d.Group,
			Kind:         d.Kind,
			IsMandatory:  d.Mandatory,
			LocaleValues: make(map[models.Locale]models.LocaleValue, len(active)),
		}
		if len(d.Fields) > 0 {
			s.Fields = append([]string(nil), d.Fields...)
		}
		for _, l := range active {
			s.LocaleValues[l] = models.EmptyLocaleValue()
		}
		refresh(&s)
		sections = append(sections, s)
	}

	return models.ExhibitorProfile{
		ID:               newID(),
		CompanyName:      strings.TrimSpace(companyName),
		PrimaryLocale:    locales.Primary,
		SecondaryLocales: locales.Secondary,
		PackageType:      pkg,
		Sections:         sections,
	}, nil
}

// EligibleSections returns the catalog entries a package tier may show,
// in catalog order. Gold-only entries are dropped for every other tier.
func EligibleSections(pkg models.PackageType, catalog models.Catalog) []models.SectionDefinition {
	out := make([]models.SectionDefinition, 0, len(catalog))
	for _, d := range catalog {
		if !isEligible(pkg, d.ID, d.GoldOnly) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// FilterForPackage returns a copy of p without the sections its package tier
// is not eligible for. Nothing is deleted from p itself.
func FilterForPackage(p models.ExhibitorProfile) models.ExhibitorProfile {
	out := p.Clone()
	out.Sections = eligibleSections(out)
	return out
}

func eligibleSections(p models.ExhibitorProfile) []models.ProfileSection {
	out := make([]models.ProfileSection, 0, len(p.Sections))
	for _, s := range p.Sections {
		if !isEligible(p.PackageType, s.ID, false) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// isEligible treats the sponsored category as gold-only even when a stored
// profile predates the catalog flag.
func isEligible(pkg models.PackageType, id models.SectionID, goldOnly bool) bool {
	if goldOnly || id == models.SectionSponsoredCategory {
		return pkg == models.PackageGold
	}
	return true
}

// Validate checks the structural invariants every engine operation assumes.
func Validate(p models.ExhibitorProfile) error {
	if strings.TrimSpace(p.CompanyName) == "" {
		return errors.NewInvalidProfileError("companyName is required")
	}
	if !p.PackageType.IsValid() {
		return errors.NewInvalidProfileError(fmt.Sprintf("unknown packageType: %s", p.PackageType))
	}
	if p.ProductCount < 0 {
		return errors.NewInvalidProductCountError(p.ProductCount)
	}
	if err := p.Locales().Validate(); err != nil {
		return errors.NewInvalidLocaleSetError(err.Error())
	}

	active := p.ActiveLocales()
	seen := make(map[models.SectionID]bool, len(p.Sections))
	for _, s := range p.Sections {
		if !s.ID.IsKnown() {
			return errors.NewUnknownSectionError(string(s.ID))
		}
		if seen[s.ID] {
			return errors.NewInvalidProfileError(fmt.Sprintf("duplicate section: %s", s.ID))
		}
		seen[s.ID] = true

		if !s.Group.IsValid() {
			return errors.NewInvalidProfileError(fmt.Sprintf("section %s has unknown group %q", s.ID, s.Group))
		}
		if s.IsMandatory && s.IsNotRelevant {
			return errors.NewInvalidProfileError(fmt.Sprintf("mandatory section %s is marked not relevant", s.ID))
		}
		if len(s.LocaleValues) != len(active) {
			return errors.NewInvalidProfileError(fmt.Sprintf("section %s has %d locale values, want %d", s.ID, len(s.LocaleValues), len(active)))
		}
		for _, l := range active {
			lv, ok := s.LocaleValues[l]
			if !ok {
				return errors.NewInvalidProfileError(fmt.Sprintf("section %s is missing locale %s", s.ID, l))
			}
			if lv.Value.IsNull() != lv.Status.IsEmpty() {
				return errors.NewInvalidProfileError(fmt.Sprintf("section %s locale %s: status %s does not match value", s.ID, l, lv.Status))
			}
		}
	}
	return nil
}

// Normalize returns a copy of p with every aggregate status re-derived from
// its locale values. Profiles read from storage go through here before use.
func Normalize(p models.ExhibitorProfile) models.ExhibitorProfile {
	out := p.Clone()
	for i := range out.Sections {
		refresh(&out.Sections[i])
	}
	return out
}
