package profile

import (
	"math"

	"exhibitor-profile/internal/models"
)

const (
	// PrimaryLocaleWeight is the primary locale's share of the overall score
	// once the profile has at least one secondary locale.
	PrimaryLocaleWeight = 0.9
	// SecondaryLocalesWeight is split evenly across the secondary locales.
	SecondaryLocalesWeight = 0.1
)

// CompletionResult is the completion of a profile in whole percent.
type CompletionResult struct {
	Overall               int                   `json:"overall"`
	PrimaryLocalePct      int                   `json:"primaryLocalePct"`
	PerSecondaryLocalePct map[models.Locale]int `json:"perSecondaryLocalePct"`
	GroupAPct             int                   `json:"groupAPct"`
	GroupBPct             int                   `json:"groupBPct"`
	HasProducts           bool                  `json:"hasProducts"`
}

// LocaleScore is the completion of one locale.
type LocaleScore struct {
	GroupAPct int
	GroupBPct int
	// Score is GroupAPct*0.8 + GroupBPct*0.2, unrounded.
	Score float64
}

// LocaleWeights returns the weight of the primary locale and of each
// secondary locale for a profile with secondaryCount secondary locales.
// primary + secondaryCount*perSecondary is always 1.
func LocaleWeights(secondaryCount int) (primary, perSecondary float64) {
	if secondaryCount <= 0 {
		return 1, 0
	}
	return PrimaryLocaleWeight, SecondaryLocalesWeight / float64(secondaryCount)
}

// Score computes the completion percentages of p. Sections marked not
// relevant and sections the package is not eligible for are ignored. The
// products section is done in every locale as soon as one product exists.
func Score(p models.ExhibitorProfile) CompletionResult {
	sections := relevantSections(p)
	hasProducts := p.HasProducts()

	primary := scoreLocale(sections, p.PrimaryLocale, hasProducts)
	primaryWeight, secondaryWeight := LocaleWeights(len(p.SecondaryLocales))

	overall := primary.Score * primaryWeight
	perSecondary := make(map[models.Locale]int, len(p.SecondaryLocales))
	for _, l := range p.SecondaryLocales {
		ls := scoreLocale(sections, l, hasProducts)
		overall += ls.Score * secondaryWeight
		perSecondary[l] = roundHalfUp(ls.Score)
	}

	return CompletionResult{
		Overall:               clampPct(roundHalfUp(overall)),
		PrimaryLocalePct:      clampPct(roundHalfUp(primary.Score)),
		PerSecondaryLocalePct: perSecondary,
		GroupAPct:             primary.GroupAPct,
		GroupBPct:             primary.GroupBPct,
		HasProducts:           hasProducts,
	}
}

// ScoreLocale computes the group percentages and locale score of l.
func ScoreLocale(p models.ExhibitorProfile, l models.Locale) LocaleScore {
	return scoreLocale(relevantSections(p), l, p.HasProducts())
}

func scoreLocale(sections []models.ProfileSection, l models.Locale, hasProducts bool) LocaleScore {
	var doneA, totalA, doneB, totalB int
	for _, s := range sections {
		done := isDone(s, l, hasProducts)
		switch s.Group {
		case models.GroupA:
			totalA++
			if done {
				doneA++
			}
		case models.GroupB:
			totalB++
			if done {
				doneB++
			}
		}
	}

	a := groupPct(doneA, totalA)
	b := groupPct(doneB, totalB)
	return LocaleScore{
		GroupAPct: a,
		GroupBPct: b,
		Score:     float64(a)*models.GroupA.Weight() + float64(b)*models.GroupB.Weight(),
	}
}

func isDone(s models.ProfileSection, l models.Locale, hasProducts bool) bool {
	if s.IsProducts() {
		return hasProducts
	}
	return s.LocaleStatus(l).IsComplete()
}

// groupPct floors the denominator at 1 so an empty group scores 0.
func groupPct(done, total int) int {
	if total < 1 {
		total = 1
	}
	return roundHalfUp(100 * float64(done) / float64(total))
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clampPct(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// relevantSections drops sections marked not relevant and sections the
// package tier is not eligible for, keeping catalog order.
func relevantSections(p models.ExhibitorProfile) []models.ProfileSection {
	out := make([]models.ProfileSection, 0, len(p.Sections))
	for _, s := range eligibleSections(p) {
		if s.IsNotRelevant {
			continue
		}
		out = append(out, s)
	}
	return out
}
