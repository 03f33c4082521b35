// internal/workers/profile/profile-sync-products/handler.go
package profilesyncproducts

import (
	"context"

	"exhibitor-profile/internal/common/camunda"
	"exhibitor-profile/internal/common/errors"
	"exhibitor-profile/internal/common/logger"
	"exhibitor-profile/internal/common/observability"
	"exhibitor-profile/internal/common/validation"
	"exhibitor-profile/internal/models"
	"exhibitor-profile/internal/profile"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "profile-sync-products"

	operation = "set_product_count"
)

var schema = validation.MustCompile(inputSchema)

type ProfileStore interface {
	Get(ctx context.Context, id string) (models.ExhibitorProfile, error)
	Save(ctx context.Context, p models.ExhibitorProfile, expectedVersion int64) (models.ExhibitorProfile, error)
}

type ScoreCache interface {
	Invalidate(ctx context.Context, profileID string) (int, error)
}

type Handler struct {
	config       *Config
	store        ProfileStore
	cache        ScoreCache
	obs          *observability.Observability
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, store ProfileStore, cache ScoreCache, obs *observability.Observability, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		store:        store,
		cache:        cache,
		obs:          obs,
		errorHandler: errors.NewErrorHandler(log),
		logger:       log,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})
	done := h.obs.JobStarted(TaskType)

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := camunda.DecodeVariables(job, schema, &input); err != nil {
		done(string(errors.CodeOf(err)))
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return
	}

	output, err := h.execute(ctx, &input)
	if err != nil {
		done(string(errors.CodeOf(err)))
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return
	}

	done("")
	camunda.CompleteJob(ctx, client, job, output, h.logger)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	log := logger.ForProfile(h.logger, input.ProfileID)

	current, err := h.store.Get(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	updated, err := profile.SetProductCount(current, input.ProductCount)
	if err != nil {
		h.obs.RecordMutation(ctx, operation, observability.OutcomeRejected)
		return nil, err
	}

	if updated.ProductCount == current.ProductCount {
		h.obs.RecordMutation(ctx, operation, observability.OutcomeNoop)
		return newOutput(current, false), nil
	}

	saved, err := h.store.Save(ctx, updated, current.Version)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeProfileVersionConflict) {
			h.obs.RecordMutation(ctx, operation, observability.OutcomeConflict)
		}
		return nil, err
	}
	h.obs.RecordMutation(ctx, operation, observability.OutcomeApplied)

	if h.cache != nil {
		if _, err := h.cache.Invalidate(ctx, saved.ID); err != nil {
			log.Warn("score cache invalidation failed", map[string]interface{}{"error": err})
		}
	}

	output := newOutput(saved, true)
	log.Info("product count synced", map[string]interface{}{
		"previousCount": current.ProductCount,
		"productCount":  saved.ProductCount,
		"version":       saved.Version,
		"overallScore":  output.OverallScore,
	})
	return output, nil
}

func newOutput(p models.ExhibitorProfile, changed bool) *Output {
	return &Output{
		ProfileID:    p.ID,
		ProductCount: p.ProductCount,
		HasProducts:  p.HasProducts(),
		Changed:      changed,
		Version:      p.Version,
		OverallScore: profile.Score(p).Overall,
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
