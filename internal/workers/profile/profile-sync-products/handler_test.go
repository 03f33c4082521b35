package profilesyncproducts

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exhibitor-profile/internal/common/errors"
	"exhibitor-profile/internal/common/logger"
	"exhibitor-profile/internal/common/observability"
	"exhibitor-profile/internal/models"
	"exhibitor-profile/internal/workers/profile/profiletest"
)

func createTestHandler(t *testing.T) (*Handler, *profiletest.Store, *profiletest.Cache) {
	t.Helper()
	store := profiletest.NewStore()
	cache := profiletest.NewCache()
	obs := observability.NewWithRegisterer("test", prometheus.NewRegistry())
	return NewHandler(LoadConfig(), store, cache, obs, logger.NewTestLogger(t)), store, cache
}

func TestHandler_Execute(t *testing.T) {
	tests := []struct {
		name        string
		counts      []int
		wantChanged bool
		wantVersion int64
		wantHas     bool
	}{
		{"first product", []int{1}, true, 2, true},
		{"same count twice", []int{4, 4}, false, 2, true},
		{"back to zero", []int{2, 0}, true, 3, false},
		{"zero on fresh profile", []int{0}, false, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, store, _ := createTestHandler(t)
			p := profiletest.Seed(t, store, models.PackageBronze)

			var output *Output
			for _, n := range tt.counts {
				var err error
				output, err = h.Execute(context.Background(), &Input{ProfileID: p.ID, ProductCount: n})
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantChanged, output.Changed)
			assert.Equal(t, tt.wantVersion, output.Version)
			assert.Equal(t, tt.wantHas, output.HasProducts)
		})
	}
}

func TestHandler_Execute_ProductsCountInEveryLocale(t *testing.T) {
	h, store, cache := createTestHandler(t)
	p := profiletest.Seed(t, store, models.PackageBronze)

	output, err := h.Execute(context.Background(), &Input{ProfileID: p.ID, ProductCount: 1})
	require.NoError(t, err)

	// 1 of 12 group A sections done in both locales: 8% -> 6.4 per locale.
	assert.Equal(t, 6, output.OverallScore)
	assert.Equal(t, []string{p.ID}, cache.Invalidated)
}

func TestHandler_Execute_NegativeCount(t *testing.T) {
	h, store, _ := createTestHandler(t)
	p := profiletest.Seed(t, store, models.PackageBronze)

	_, err := h.Execute(context.Background(), &Input{ProfileID: p.ID, ProductCount: -1})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidProductCount))
	assert.Equal(t, 0, store.Saves)
}
