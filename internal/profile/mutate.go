package profile

import (
	"fmt"

	"exhibitor-profile/internal/common/errors"
	"exhibitor-profile/internal/models"
)

// UpdateSection writes one (status, value) pair for a section in one locale
// and returns the updated profile with the section's aggregate status
// re-derived. p is not modified.
//
// A blank value is stored as (Empty, null) whatever status was passed.
// A non-blank value must not be paired with Empty, and Partial is only
// accepted for multi-field sections.
func UpdateSection(p models.ExhibitorProfile, id models.SectionID, locale models.Locale, value models.Value, status models.SectionStatus) (models.ExhibitorProfile, error) {
	idx, err := writableSection(p, id)
	if err != nil {
		return p, err
	}
	if !p.Locales().Contains(locale) {
		return p, errors.NewUnknownLocaleError(string(locale))
	}
	if !validStatus(status) {
		return p, errors.NewInvalidSectionValueError(string(id), fmt.Sprintf("invalid status %q", status))
	}

	section := p.Sections[idx]
	lv, err := normalizeWrite(section, value, status)
	if err != nil {
		return p, err
	}

	out := p.Clone()
	s := &out.Sections[idx]
	if s.LocaleValues == nil {
		s.LocaleValues = make(map[models.Locale]models.LocaleValue, 1)
	}
	s.LocaleValues[locale] = lv
	refresh(s)
	return out, nil
}

func validStatus(s models.SectionStatus) bool {
	for _, st := range models.AllStatuses() {
		if s == st {
			return true
		}
	}
	return false
}

// UpdateSectionValue is UpdateSection with the status derived from the
// value by StatusForValue.
func UpdateSectionValue(p models.ExhibitorProfile, id models.SectionID, locale models.Locale, value models.Value) (models.ExhibitorProfile, error) {
	idx, err := writableSection(p, id)
	if err != nil {
		return p, err
	}
	return UpdateSection(p, id, locale, value, StatusForValue(p.Sections[idx], value))
}

func normalizeWrite(s models.ProfileSection, value models.Value, status models.SectionStatus) (models.LocaleValue, error) {
	if value.IsBlank() {
		return models.EmptyLocaleValue(), nil
	}
	if status.IsEmpty() {
		return models.LocaleValue{}, errors.NewInvalidSectionValueError(string(s.ID), "non-empty value requires status partial or complete")
	}

	if s.Kind == models.KindMultiField {
		items, ok := value.Items()
		if !ok {
			return models.LocaleValue{}, errors.NewInvalidSectionValueError(string(s.ID), "multi-field value must be a list")
		}
		if len(s.Fields) > 0 && len(items) > len(s.Fields) {
			return models.LocaleValue{}, errors.NewInvalidSectionValueError(string(s.ID),
				fmt.Sprintf("got %d fields, section has %d", len(items), len(s.Fields)))
		}
		return models.LocaleValue{Status: status, Value: value}, nil
	}

	if status == models.StatusPartial {
		return models.LocaleValue{}, errors.NewInvalidSectionValueError(string(s.ID), "partial status requires a multi-field section")
	}
	return models.LocaleValue{Status: status, Value: value}, nil
}

// writableSection finds id among the sections the package tier may edit.
func writableSection(p models.ExhibitorProfile, id models.SectionID) (int, error) {
	idx := p.SectionIndex(id)
	if idx < 0 || !isEligible(p.PackageType, id, false) {
		return -1, errors.NewUnknownSectionError(string(id))
	}
	return idx, nil
}

// ToggleNotRelevant flips the not-relevant flag of a section. When the gate
// refuses, the profile comes back unchanged and no error is returned; only an
// unknown section id is an error.
func ToggleNotRelevant(p models.ExhibitorProfile, id models.SectionID) (models.ExhibitorProfile, error) {
	idx, err := writableSection(p, id)
	if err != nil {
		return p, err
	}
	out := p.Clone()
	if !CanToggleInProfile(p, id) {
		return out, nil
	}
	out.Sections[idx] = ToggleNotRelevantSection(p.Sections[idx])
	return out, nil
}

// SetProductCount records the product-existence signal.
func SetProductCount(p models.ExhibitorProfile, count int) (models.ExhibitorProfile, error) {
	if count < 0 {
		return p, errors.NewInvalidProductCountError(count)
	}
	out := p.Clone()
	out.ProductCount = count
	return out, nil
}

// AddSecondaryLocale activates l on every section with an Empty value.
func AddSecondaryLocale(p models.ExhibitorProfile, l models.Locale) (models.ExhibitorProfile, error) {
	if !l.IsValid() {
		return p, errors.NewUnknownLocaleError(string(l))
	}
	next := models.LocaleSet{Primary: p.PrimaryLocale, Secondary: append(append([]models.Locale(nil), p.SecondaryLocales...), l)}
	if err := next.Validate(); err != nil {
		return p, errors.NewInvalidLocaleSetError(err.Error())
	}

	out := p.Clone()
	out.SecondaryLocales = next.Secondary
	for i := range out.Sections {
		s := &out.Sections[i]
		if s.LocaleValues == nil {
			s.LocaleValues = make(map[models.Locale]models.LocaleValue, 1)
		}
		s.LocaleValues[l] = models.EmptyLocaleValue()
		refresh(s)
	}
	return out, nil
}

// RemoveSecondaryLocale drops l and its values from every section. The
// primary locale cannot be removed.
func RemoveSecondaryLocale(p models.ExhibitorProfile, l models.Locale) (models.ExhibitorProfile, error) {
	if l == p.PrimaryLocale {
		return p, errors.NewInvalidLocaleSetError(fmt.Sprintf("cannot remove primary locale %q", l))
	}
	pos := -1
	for i, sec := range p.SecondaryLocales {
		if sec == l {
			pos = i
			break
		}
	}
	if pos < 0 {
		return p, errors.NewUnknownLocaleError(string(l))
	}

	out := p.Clone()
	out.SecondaryLocales = append(out.SecondaryLocales[:pos], out.SecondaryLocales[pos+1:]...)
	if len(out.SecondaryLocales) == 0 {
		out.SecondaryLocales = nil
	}
	for i := range out.Sections {
		s := &out.Sections[i]
		delete(s.LocaleValues, l)
		refresh(s)
	}
	return out, nil
}
