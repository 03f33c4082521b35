package profile

import (
	"exhibitor-profile/internal/models"
)

// SectionSummary is the read-only view of one section for status badges.
type SectionSummary struct {
	ID            models.SectionID                       `json:"id"`
	Name          string                                 `json:"name"`
	Group         models.SectionGroup                    `json:"group"`
	IsMandatory   bool                                   `json:"isMandatory"`
	IsNotRelevant bool                                   `json:"isNotRelevant"`
	Status        models.SectionStatus                   `json:"status"`
	CanToggle     bool                                   `json:"canToggle"`
	Locales       map[models.Locale]models.SectionStatus `json:"locales"`
}

// Summary bundles everything a profile page renders from one snapshot.
type Summary struct {
	ProfileID       string           `json:"profileId"`
	Completion      CompletionResult `json:"completion"`
	Sections        []SectionSummary `json:"sections"`
	Steps           []Step           `json:"steps"`
	ProfileComplete bool             `json:"profileComplete"`
}

// Summarize derives the section view, score and plan of p. The products
// section reports Complete as soon as a product exists.
func Summarize(p models.ExhibitorProfile) Summary {
	hasProducts := p.HasProducts()
	eligible := eligibleSections(p)
	sections := make([]SectionSummary, 0, len(eligible))
	for _, s := range eligible {
		locales := make(map[models.Locale]models.SectionStatus, len(s.LocaleValues))
		for _, l := range p.ActiveLocales() {
			locales[l] = s.LocaleStatus(l)
		}
		status := SectionStatusOf(s)
		if s.IsProducts() && hasProducts {
			status = models.StatusComplete
		}
		sections = append(sections, SectionSummary{
			ID:            s.ID,
			Name:          s.Name,
			Group:         s.Group,
			IsMandatory:   s.IsMandatory,
			IsNotRelevant: s.IsNotRelevant,
			Status:        status,
			CanToggle:     CanToggleInProfile(p, s.ID),
			Locales:       locales,
		})
	}

	steps := PlanSteps(p)
	return Summary{
		ProfileID:       p.ID,
		Completion:      Score(p),
		Sections:        sections,
		Steps:           steps,
		ProfileComplete: len(steps) == 0,
	}
}
