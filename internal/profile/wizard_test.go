package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exhibitor-profile/internal/models"
)

func stepIDs(steps []Step) []models.SectionID {
	ids := make([]models.SectionID, len(steps))
	for i, s := range steps {
		ids[i] = s.SectionID
	}
	return ids
}

func TestPlanSteps_ThreeIncompleteAndNoProducts(t *testing.T) {
	p := createTestProfile(t, models.PackageSilver)
	p = completeAll(t, p, models.LocaleDE, models.SectionShortPitch, models.SectionWebsite, models.SectionAwards)

	steps := PlanSteps(p)

	require.Len(t, steps, 4)
	assert.Equal(t, []models.SectionID{
		models.SectionShortPitch,
		models.SectionWebsite,
		models.SectionAwards,
		models.SectionProducts,
	}, stepIDs(steps))
	assert.Equal(t, ActionCompleteSection, steps[0].Action)
	assert.Equal(t, models.GroupB, steps[2].Group)
	assert.Equal(t, ActionAddProduct, steps[3].Action)
	assert.Equal(t, "Products", steps[3].Name)
}

func TestPlanSteps_FreshProfileKeepsCatalogOrder(t *testing.T) {
	p := createTestProfile(t, models.PackageBronze)

	steps := PlanSteps(p)

	require.Len(t, steps, 18)
	var want []models.SectionID
	for _, s := range p.Sections {
		if !s.IsProducts() {
			want = append(want, s.ID)
		}
	}
	want = append(want, models.SectionProducts)
	assert.Equal(t, want, stepIDs(steps))
}

func TestPlanSteps_ProductsExcludedOnceProductExists(t *testing.T) {
	p := createTestProfile(t, models.PackageSilver)
	p = completeAll(t, p, models.LocaleDE, models.SectionWebsite)
	p, err := SetProductCount(p, 2)
	require.NoError(t, err)

	steps := PlanSteps(p)

	assert.Equal(t, []models.SectionID{models.SectionWebsite}, stepIDs(steps))
}

func TestPlanSteps_ProductsNotRelevant(t *testing.T) {
	p := createTestProfile(t, models.PackageSilver)
	p = markNotRelevant(t, p, models.SectionProducts)
	p = completeAll(t, p, models.LocaleDE)

	assert.Empty(t, PlanSteps(p))
	assert.Equal(t, 100, Score(p).Overall)
}

func TestPlanSteps_SecondaryLocaleKeepsSectionOpen(t *testing.T) {
	p := createTestProfile(t, models.PackageSilver, models.LocaleEN)
	p, err := SetProductCount(p, 1)
	require.NoError(t, err)
	p = completeAll(t, p, models.LocaleDE)
	p = completeAll(t, p, models.LocaleEN, models.SectionKeywords)

	steps := PlanSteps(p)

	assert.Equal(t, []models.SectionID{models.SectionKeywords}, stepIDs(steps))
}

func TestPlanSteps_PartialSectionIsListed(t *testing.T) {
	p := createTestProfile(t, models.PackageSilver)
	p, err := SetProductCount(p, 1)
	require.NoError(t, err)
	p = completeAll(t, p, models.LocaleDE, models.SectionContactPerson)
	p, err = UpdateSectionValue(p, models.SectionContactPerson, models.LocaleDE, models.ListValue("Jane Doe"))
	require.NoError(t, err)

	steps := PlanSteps(p)

	require.Len(t, steps, 1)
	assert.Equal(t, models.SectionContactPerson, steps[0].SectionID)
}

func TestPlanSteps_CompleteProfileIsEmptyNotNil(t *testing.T) {
	p := createTestProfile(t, models.PackageGold, models.LocaleFR)
	p, err := SetProductCount(p, 1)
	require.NoError(t, err)
	p = completeAll(t, p, models.LocaleDE)
	p = completeAll(t, p, models.LocaleFR)

	steps := PlanSteps(p)

	assert.NotNil(t, steps)
	assert.Empty(t, steps)
}

func TestPlanSteps_SponsoredCategoryOnlyForGold(t *testing.T) {
	gold := createTestProfile(t, models.PackageGold)
	assert.Contains(t, stepIDs(PlanSteps(gold)), models.SectionSponsoredCategory)

	silver := gold
	silver.PackageType = models.PackageSilver
	assert.NotContains(t, stepIDs(PlanSteps(silver)), models.SectionSponsoredCategory)
}
