package profilescore

import (
	"context"
	"fmt"
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

func createTestHandler(t *testing.T) (*Handler, *profiletest.Store, *profiletest.Cache) {
	t.Helper()
	store := profiletest.NewStore()
	cache := profiletest.NewCache()
	obs := observability.NewWithRegisterer("test", prometheus.NewRegistry())
	return NewHandler(LoadConfig(), store, cache, obs, logger.NewTestLogger(t)), store, cache
}

func lookups(result string) float64 {
	return testutil.ToFloat64(metrics.ScoreCacheLookups.WithLabelValues(result))
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_MissThenHit(t *testing.T) {
	h, store, cache := createTestHandler(t)
	p := profiletest.Seed(t, store, models.PackageBronze)
	missesBefore, hitsBefore := lookups("miss"), lookups("hit")

	first, err := h.Execute(context.Background(), &Input{ProfileID: p.ID})
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.True(t, cache.Has(p.ID, 1))

	second, err := h.Execute(context.Background(), &Input{ProfileID: p.ID})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Completion, second.Completion)

	assert.Equal(t, missesBefore+1, lookups("miss"))
	assert.Equal(t, hitsBefore+1, lookups("hit"))
}

func TestHandler_Execute_NewVersionMisses(t *testing.T) {
	h, store, _ := createTestHandler(t)
	p := profiletest.Seed(t, store, models.PackageBronze)

	_, err := h.Execute(context.Background(), &Input{ProfileID: p.ID})
	require.NoError(t, err)

	updated, err := profile.UpdateSectionValue(p, models.SectionLogo, models.LocaleDE, models.TextValue("logo.png"))
	require.NoError(t, err)
	_, err = store.Save(context.Background(), updated, 1)
	require.NoError(t, err)

	output, err := h.Execute(context.Background(), &Input{ProfileID: p.ID})
	require.NoError(t, err)

	assert.False(t, output.Cached)
	assert.Equal(t, int64(2), output.Version)
	assert.Equal(t, 6, output.Completion.Overall)
}

func TestHandler_Execute_CacheErrorsFallBackToEngine(t *testing.T) {
	h, store, cache := createTestHandler(t)
	cache.GetErr = fmt.Errorf("redis down")
	cache.SetErr = fmt.Errorf("redis down")
	p := profiletest.Seed(t, store, models.PackageGold)
	errorsBefore := lookups("error")

	output, err := h.Execute(context.Background(), &Input{ProfileID: p.ID})
	require.NoError(t, err)

	assert.False(t, output.Cached)
	assert.Equal(t, profile.Score(p), output.Completion)
	assert.Equal(t, errorsBefore+1, lookups("error"))
}

func TestHandler_Execute_WithoutCache(t *testing.T) {
	store := profiletest.NewStore()
	h := NewHandler(LoadConfig(), store, nil, nil, logger.NewNoOpLogger())
	p := profiletest.Seed(t, store, models.PackageSilver)

	output, err := h.Execute(context.Background(), &Input{ProfileID: p.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, output.Completion.Overall)
	assert.Contains(t, output.Completion.PerSecondaryLocalePct, models.LocaleEN)
}

func TestHandler_Execute_ProfileNotFound(t *testing.T) {
	h, _, _ := createTestHandler(t)

	_, err := h.Execute(context.Background(), &Input{ProfileID: "missing"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeProfileNotFound))
}
