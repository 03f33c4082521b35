package profile

import (
	"exhibitor-profile/internal/models"
)

// CanToggleNotRelevant reports whether the not-relevant flag of s may be
// flipped. Mandatory sections never can. A marked section can always be
// unmarked; an unmarked one only while nothing has been entered.
func CanToggleNotRelevant(s models.ProfileSection) bool {
	if s.IsMandatory {
		return false
	}
	if s.IsNotRelevant {
		return true
	}
	return SectionStatusOf(s).IsEmpty()
}

// ToggleNotRelevantSection flips the flag when the gate allows it and
// returns s unchanged otherwise. Locale values are never touched.
func ToggleNotRelevantSection(s models.ProfileSection) models.ProfileSection {
	out := s.Clone()
	if !CanToggleNotRelevant(s) {
		return out
	}
	out.IsNotRelevant = !out.IsNotRelevant
	return out
}

// CanToggleInProfile applies the section gate plus the profile-level rule
// that the products section cannot be hidden once products exist.
func CanToggleInProfile(p models.ExhibitorProfile, id models.SectionID) bool {
	s, ok := p.Section(id)
	if !ok {
		return false
	}
	if s.IsProducts() && !s.IsNotRelevant && p.HasProducts() {
		return false
	}
	return CanToggleNotRelevant(s)
}
