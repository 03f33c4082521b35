// Package profile is the exhibitor profile state and completion-scoring engine.
//
// Every exported function is a pure transformation over a models.ExhibitorProfile
// value: inputs are never mutated and no I/O happens here. Persistence, caching
// and job transport live in the host packages around it.
package profile

import (
	"exhibitor-profile/internal/models"
)

// DeriveSectionStatus reduces the per-locale statuses of a section to its
// aggregate status: complete when every locale is complete, partial when at
// least one locale has content, empty otherwise (including no locales at all).
func DeriveSectionStatus(statuses []models.SectionStatus) models.SectionStatus {
	if len(statuses) == 0 {
		return models.StatusEmpty
	}

	allComplete := true
	anyContent := false
	for _, s := range statuses {
		if !s.IsComplete() {
			allComplete = false
		}
		if s.Rank() > 0 {
			anyContent = true
		}
	}

	switch {
	case allComplete:
		return models.StatusComplete
	case anyContent:
		return models.StatusPartial
	default:
		return models.StatusEmpty
	}
}

// SectionStatusOf derives the aggregate status of s from its locale values.
func SectionStatusOf(s models.ProfileSection) models.SectionStatus {
	statuses := make([]models.SectionStatus, 0, len(s.LocaleValues))
	for _, lv := range s.LocaleValues {
		statuses = append(statuses, lv.Status)
	}
	return DeriveSectionStatus(statuses)
}

// refresh recomputes the cached aggregate status in place.
func refresh(s *models.ProfileSection) {
	s.AggregateStatus = SectionStatusOf(*s)
}

// StatusForValue is the status a writer must pass alongside v for a section
// of the given shape. Text, list and products sections are complete once the
// trimmed value is non-empty. Multi-field sections are partial while only
// some of their fields are filled.
func StatusForValue(s models.ProfileSection, v models.Value) models.SectionStatus {
	if v.IsBlank() {
		return models.StatusEmpty
	}
	if s.Kind != models.KindMultiField {
		return models.StatusComplete
	}

	items, ok := v.Items()
	if !ok {
		return models.StatusPartial
	}
	want := len(s.Fields)
	if want == 0 {
		want = len(items)
	}
	filled := 0
	for i := 0; i < want && i < len(items); i++ {
		if !models.TextValue(items[i]).IsBlank() {
			filled++
		}
	}
	if filled >= want {
		return models.StatusComplete
	}
	return models.StatusPartial
}
