package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exhibitor-profile/internal/common/errors"
	"exhibitor-profile/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func init() {
	newID = func() string { return "11111111-2222-3333-4444-555555555555" }
}

func createTestProfile(t *testing.T, pkg models.PackageType, secondaries ...models.Locale) models.ExhibitorProfile {
	t.Helper()
	p, err := NewProfile("Acme Messebau GmbH", models.LocaleDE, secondaries, pkg, models.DefaultCatalog())
	require.NoError(t, err)
	return p
}

func valueFor(s models.ProfileSection) models.Value {
	switch s.Kind {
	case models.KindList:
		return models.ListValue("first", "second")
	case models.KindMultiField:
		items := make([]string, len(s.Fields))
		for i, f := range s.Fields {
			items[i] = "some " + f
		}
		return models.ListValue(items...)
	default:
		return models.TextValue("filled in")
	}
}

func completeSection(t *testing.T, p models.ExhibitorProfile, id models.SectionID, l models.Locale) models.ExhibitorProfile {
	t.Helper()
	s, ok := p.Section(id)
	require.True(t, ok, "section %s", id)
	out, err := UpdateSection(p, id, l, valueFor(s), models.StatusComplete)
	require.NoError(t, err)
	return out
}

// completeAll fills every non-products section in l, skipping the given ids.
func completeAll(t *testing.T, p models.ExhibitorProfile, l models.Locale, skip ...models.SectionID) models.ExhibitorProfile {
	t.Helper()
	skipped := make(map[models.SectionID]bool, len(skip))
	for _, id := range skip {
		skipped[id] = true
	}
	for _, s := range p.Sections {
		if s.IsProducts() || skipped[s.ID] {
			continue
		}
		p = completeSection(t, p, s.ID, l)
	}
	return p
}

func markNotRelevant(t *testing.T, p models.ExhibitorProfile, id models.SectionID) models.ExhibitorProfile {
	t.Helper()
	out, err := ToggleNotRelevant(p, id)
	require.NoError(t, err)
	s, _ := out.Section(id)
	require.True(t, s.IsNotRelevant, "section %s was not toggled", id)
	return out
}

func countGroup(p models.ExhibitorProfile, g models.SectionGroup) int {
	n := 0
	for _, s := range p.Sections {
		if s.Group == g {
			n++
		}
	}
	return n
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrorCode(code)), "got %v, want code %s", err, code)
}
