package profileplansteps

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exhibitor-profile/internal/common/errors"
	"exhibitor-profile/internal/common/logger"
	"exhibitor-profile/internal/common/metrics"
	"exhibitor-profile/internal/common/observability"
	"exhibitor-profile/internal/models"
	"exhibitor-profile/internal/profile"
	"exhibitor-profile/internal/workers/profile/profiletest"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestHandler(t *testing.T) (*Handler, *profiletest.Store) {
	t.Helper()
	store := profiletest.NewStore()
	obs := observability.NewWithRegisterer("test", prometheus.NewRegistry())
	return NewHandler(LoadConfig(), store, obs, logger.NewTestLogger(t)), store
}

func fillEverything(t *testing.T, p models.ExhibitorProfile) models.ExhibitorProfile {
	t.Helper()
	var err error
	for _, s := range p.Sections {
		if s.IsProducts() {
			continue
		}
		value := models.TextValue("filled")
		switch s.Kind {
		case models.KindList:
			value = models.ListValue("filled")
		case models.KindMultiField:
			items := make([]string, len(s.Fields))
			for i := range items {
				items[i] = "filled"
			}
			value = models.ListValue(items...)
		}
		for _, l := range p.ActiveLocales() {
			p, err = profile.UpdateSectionValue(p, s.ID, l, value)
			require.NoError(t, err)
		}
	}
	p, err = profile.SetProductCount(p, 1)
	require.NoError(t, err)
	return p
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_FreshProfile(t *testing.T) {
	h, store := createTestHandler(t)
	p := profiletest.Seed(t, store, models.PackageBronze)

	output, err := h.Execute(context.Background(), &Input{ProfileID: p.ID})
	require.NoError(t, err)

	assert.Equal(t, 18, output.StepCount)
	assert.Len(t, output.Steps, 18)
	assert.False(t, output.ProfileComplete)
	require.NotNil(t, output.NextStep)
	assert.Equal(t, models.SectionLogo, output.NextStep.SectionID)

	last := output.Steps[len(output.Steps)-1]
	assert.Equal(t, models.SectionProducts, last.SectionID)
	assert.Equal(t, profile.ActionAddProduct, last.Action)
	assert.Nil(t, output.Sections)

	assert.Equal(t, float64(18), testutil.ToFloat64(metrics.ProfileOutstandingSteps.WithLabelValues("bronze")))
}

func TestHandler_Execute_CompleteProfile(t *testing.T) {
	h, store := createTestHandler(t)
	p := profiletest.Seed(t, store, models.PackageGold)
	store.Put(fillEverything(t, p))

	output, err := h.Execute(context.Background(), &Input{ProfileID: p.ID, IncludeSections: true})
	require.NoError(t, err)

	assert.True(t, output.ProfileComplete)
	assert.NotNil(t, output.Steps)
	assert.Empty(t, output.Steps)
	assert.Nil(t, output.NextStep)
	require.Len(t, output.Sections, 19)
	for _, s := range output.Sections {
		assert.Equal(t, models.StatusComplete, s.Status, s.ID)
	}
}

func TestHandler_Execute_NotRelevantSectionsLeaveThePlan(t *testing.T) {
	h, store := createTestHandler(t)
	p := profiletest.Seed(t, store, models.PackageBronze)
	for _, id := range []models.SectionID{models.SectionAwards, models.SectionJobOffers, models.SectionProducts} {
		var err error
		p, err = profile.ToggleNotRelevant(p, id)
		require.NoError(t, err)
	}
	store.Put(p)

	output, err := h.Execute(context.Background(), &Input{ProfileID: p.ID})
	require.NoError(t, err)

	assert.Equal(t, 15, output.StepCount)
	for _, step := range output.Steps {
		assert.NotEqual(t, profile.ActionAddProduct, step.Action)
	}
}

func TestHandler_Execute_ProfileNotFound(t *testing.T) {
	h, _ := createTestHandler(t)

	_, err := h.Execute(context.Background(), &Input{ProfileID: "missing"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeProfileNotFound))
}
