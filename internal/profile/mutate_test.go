package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exhibitor-profile/internal/models"
)

// ==========================
// UpdateSection Tests
// ==========================

func TestUpdateSection_RecomputesAggregate(t *testing.T) {
	p := createTestProfile(t, models.PackageSilver, models.LocaleEN)

	p1, err := UpdateSection(p, models.SectionWebsite, models.LocaleDE, models.TextValue("https://acme.example"), models.StatusComplete)
	require.NoError(t, err)
	s, _ := p1.Section(models.SectionWebsite)
	assert.Equal(t, models.StatusPartial, s.AggregateStatus)

	p2, err := UpdateSection(p1, models.SectionWebsite, models.LocaleEN, models.TextValue("https://acme.example/en"), models.StatusComplete)
	require.NoError(t, err)
	s, _ = p2.Section(models.SectionWebsite)
	assert.Equal(t, models.StatusComplete, s.AggregateStatus)

	p3, err := UpdateSection(p2, models.SectionWebsite, models.LocaleDE, models.EmptyValue(), models.StatusEmpty)
	require.NoError(t, err)
	s, _ = p3.Section(models.SectionWebsite)
	assert.Equal(t, models.StatusPartial, s.AggregateStatus)
	assert.Equal(t, models.EmptyLocaleValue(), s.LocaleValues[models.LocaleDE])
}

func TestUpdateSection_DoesNotMutateInput(t *testing.T) {
	p := createTestProfile(t, models.PackageSilver)
	before := p.Clone()

	_, err := UpdateSection(p, models.SectionLogo, models.LocaleDE, models.TextValue("logo.png"), models.StatusComplete)
	require.NoError(t, err)

	assert.Equal(t, before, p)
}

func TestUpdateSection_BlankValueStoredAsEmpty(t *testing.T) {
	p := createTestProfile(t, models.PackageSilver)

	for _, v := range []models.Value{models.TextValue("   "), models.ListValue("", "  "), models.EmptyValue()} {
		out, err := UpdateSection(p, models.SectionKeywords, models.LocaleDE, v, models.StatusComplete)
		require.NoError(t, err)
		s, _ := out.Section(models.SectionKeywords)
		assert.Equal(t, models.EmptyLocaleValue(), s.LocaleValues[models.LocaleDE])
		assert.Equal(t, models.StatusEmpty, s.AggregateStatus)
	}
}

func TestUpdateSection_Rejections(t *testing.T) {
	p := createTestProfile(t, models.PackageSilver, models.LocaleEN)

	tests := []struct {
		name    string
		section models.SectionID
		locale  models.Locale
		value   models.Value
		status  models.SectionStatus
		code    string
	}{
		{"unknown section", "guestbook", models.LocaleDE, models.TextValue("x"), models.StatusComplete, "UNKNOWN_SECTION"},
		{"gold-only on silver", models.SectionSponsoredCategory, models.LocaleDE, models.TextValue("x"), models.StatusComplete, "UNKNOWN_SECTION"},
		{"inactive locale", models.SectionWebsite, models.LocaleFR, models.TextValue("x"), models.StatusComplete, "UNKNOWN_LOCALE"},
		{"unsupported locale", models.SectionWebsite, models.Locale("xx"), models.TextValue("x"), models.StatusComplete, "UNKNOWN_LOCALE"},
		{"bogus status", models.SectionWebsite, models.LocaleDE, models.TextValue("x"), models.SectionStatus("done"), "INVALID_SECTION_VALUE"},
		{"content with empty status", models.SectionWebsite, models.LocaleDE, models.TextValue("x"), models.StatusEmpty, "INVALID_SECTION_VALUE"},
		{"partial on single field", models.SectionWebsite, models.LocaleDE, models.TextValue("x"), models.StatusPartial, "INVALID_SECTION_VALUE"},
		{"multi field as text", models.SectionContactPerson, models.LocaleDE, models.TextValue("Jane"), models.StatusPartial, "INVALID_SECTION_VALUE"},
		{"too many fields", models.SectionContactPerson, models.LocaleDE, models.ListValue("a", "b", "c", "d"), models.StatusComplete, "INVALID_SECTION_VALUE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := UpdateSection(p, tt.section, tt.locale, tt.value, tt.status)
			assertErrorCode(t, err, tt.code)
			assert.Equal(t, p, out)
		})
	}
}

func TestUpdateSectionValue_DerivesPartialForMultiField(t *testing.T) {
	p := createTestProfile(t, models.PackageSilver)

	p, err := UpdateSectionValue(p, models.SectionContactPerson, models.LocaleDE, models.ListValue("Jane Doe", "", ""))
	require.NoError(t, err)
	s, _ := p.Section(models.SectionContactPerson)
	assert.Equal(t, models.StatusPartial, s.LocaleValues[models.LocaleDE].Status)
	assert.Equal(t, models.StatusPartial, s.AggregateStatus)
	assert.False(t, CanToggleNotRelevant(s))

	p, err = UpdateSectionValue(p, models.SectionContactPerson, models.LocaleDE, models.ListValue("Jane Doe", "CEO", "jane@acme.example"))
	require.NoError(t, err)
	s, _ = p.Section(models.SectionContactPerson)
	assert.Equal(t, models.StatusComplete, s.AggregateStatus)
}

// ==========================
// Products & Locale Tests
// ==========================

func TestSetProductCount(t *testing.T) {
	p := createTestProfile(t, models.PackageSilver)

	out, err := SetProductCount(p, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, out.ProductCount)
	assert.Equal(t, 0, p.ProductCount)

	_, err = SetProductCount(p, -1)
	assertErrorCode(t, err, "INVALID_PRODUCT_COUNT")
}

func TestAddSecondaryLocale_GrowsEveryLocaleMap(t *testing.T) {
	p := createTestProfile(t, models.PackageSilver)
	p = completeSection(t, p, models.SectionLogo, models.LocaleDE)

	out, err := AddSecondaryLocale(p, models.LocaleFR)
	require.NoError(t, err)

	assert.Equal(t, []models.Locale{models.LocaleFR}, out.SecondaryLocales)
	for _, s := range out.Sections {
		assert.Len(t, s.LocaleValues, 2, "section %s", s.ID)
		assert.Equal(t, models.EmptyLocaleValue(), s.LocaleValues[models.LocaleFR])
	}
	logo, _ := out.Section(models.SectionLogo)
	assert.Equal(t, models.StatusPartial, logo.AggregateStatus)
	require.NoError(t, Validate(out))
}

func TestAddSecondaryLocale_Rejections(t *testing.T) {
	p := createTestProfile(t, models.PackageSilver, models.LocaleEN)

	_, err := AddSecondaryLocale(p, models.LocaleDE)
	assertErrorCode(t, err, "INVALID_LOCALE_SET")

	_, err = AddSecondaryLocale(p, models.LocaleEN)
	assertErrorCode(t, err, "INVALID_LOCALE_SET")

	_, err = AddSecondaryLocale(p, models.Locale("xx"))
	assertErrorCode(t, err, "UNKNOWN_LOCALE")
}

func TestRemoveSecondaryLocale_ShrinksEveryLocaleMap(t *testing.T) {
	p := createTestProfile(t, models.PackageSilver, models.LocaleEN, models.LocaleFR)
	p = completeSection(t, p, models.SectionLogo, models.LocaleDE)
	p = completeSection(t, p, models.SectionLogo, models.LocaleFR)

	out, err := RemoveSecondaryLocale(p, models.LocaleEN)
	require.NoError(t, err)

	assert.Equal(t, []models.Locale{models.LocaleFR}, out.SecondaryLocales)
	logo, _ := out.Section(models.SectionLogo)
	assert.Equal(t, models.StatusComplete, logo.AggregateStatus)
	assert.Len(t, p.SecondaryLocales, 2)
	require.NoError(t, Validate(out))
}

func TestRemoveSecondaryLocale_Rejections(t *testing.T) {
	p := createTestProfile(t, models.PackageSilver, models.LocaleEN)

	_, err := RemoveSecondaryLocale(p, models.LocaleDE)
	assertErrorCode(t, err, "INVALID_LOCALE_SET")

	_, err = RemoveSecondaryLocale(p, models.LocaleFR)
	assertErrorCode(t, err, "UNKNOWN_LOCALE")
}

func TestRemoveSecondaryLocale_Last(t *testing.T) {
	p := createTestProfile(t, models.PackageSilver, models.LocaleEN)

	out, err := RemoveSecondaryLocale(p, models.LocaleEN)
	require.NoError(t, err)

	assert.Nil(t, out.SecondaryLocales)
	assert.Empty(t, Score(out).PerSecondaryLocalePct)
}
