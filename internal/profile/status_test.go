package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"exhibitor-profile/internal/models"
)

func TestDeriveSectionStatus(t *testing.T) {
	e, p, c := models.StatusEmpty, models.StatusPartial, models.StatusComplete

	tests := []struct {
		name     string
		statuses []models.SectionStatus
		want     models.SectionStatus
	}{
		{"no locales", nil, e},
		{"single empty", []models.SectionStatus{e}, e},
		{"single partial", []models.SectionStatus{p}, p},
		{"single complete", []models.SectionStatus{c}, c},
		{"all complete", []models.SectionStatus{c, c, c}, c},
		{"one missing", []models.SectionStatus{c, c, e}, p},
		{"partial and empty", []models.SectionStatus{e, p}, p},
		{"all empty", []models.SectionStatus{e, e, e}, e},
		{"all partial", []models.SectionStatus{p, p}, p},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveSectionStatus(tt.statuses))
		})
	}
}

// Every combination over up to three locales: aggregate is Complete iff all
// locales are Complete, and Empty iff all are Empty.
func TestDeriveSectionStatus_Exhaustive(t *testing.T) {
	all := models.AllStatuses()
	var walk func(prefix []models.SectionStatus)
	walk = func(prefix []models.SectionStatus) {
		if len(prefix) > 0 {
			got := DeriveSectionStatus(prefix)
			allComplete, allEmpty := true, true
			for _, s := range prefix {
				allComplete = allComplete && s == models.StatusComplete
				allEmpty = allEmpty && s == models.StatusEmpty
			}
			assert.Equal(t, allComplete, got == models.StatusComplete, "%v", prefix)
			assert.Equal(t, allEmpty, got == models.StatusEmpty, "%v", prefix)
		}
		if len(prefix) == 3 {
			return
		}
		for _, s := range all {
			walk(append(append([]models.SectionStatus(nil), prefix...), s))
		}
	}
	walk(nil)
}

func TestStatusForValue(t *testing.T) {
	text := models.ProfileSection{ID: models.SectionWebsite, Kind: models.KindText}
	person := models.ProfileSection{ID: models.SectionContactPerson, Kind: models.KindMultiField, Fields: []string{"name", "role", "email"}}

	tests := []struct {
		name    string
		section models.ProfileSection
		value   models.Value
		want    models.SectionStatus
	}{
		{"null", text, models.EmptyValue(), models.StatusEmpty},
		{"whitespace text", text, models.TextValue("   \t"), models.StatusEmpty},
		{"blank list", text, models.ListValue(" ", ""), models.StatusEmpty},
		{"text", text, models.TextValue("https://acme.example"), models.StatusComplete},
		{"list", text, models.ListValue("a"), models.StatusComplete},
		{"multi field all", person, models.ListValue("Jane", "CEO", "jane@acme.example"), models.StatusComplete},
		{"multi field some", person, models.ListValue("Jane", "", "jane@acme.example"), models.StatusPartial},
		{"multi field short", person, models.ListValue("Jane"), models.StatusPartial},
		{"multi field text", person, models.TextValue("Jane"), models.StatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForValue(tt.section, tt.value))
		})
	}
}

func TestSectionStatusOf_IgnoresStaleCache(t *testing.T) {
	s := models.ProfileSection{
		ID:              models.SectionLogo,
		AggregateStatus: models.StatusComplete,
		LocaleValues: map[models.Locale]models.LocaleValue{
			models.LocaleDE: {Status: models.StatusComplete, Value: models.TextValue("logo.png")},
			models.LocaleEN: models.EmptyLocaleValue(),
		},
	}

	assert.Equal(t, models.StatusPartial, SectionStatusOf(s))
}
