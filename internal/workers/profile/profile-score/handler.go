// internal/workers/profile/profile-score/handler.go
package profilescore

import (
	"context"

	"exhibitor-profile/internal/common/camunda"
	"exhibitor-profile/internal/common/errors"
	"exhibitor-profile/internal/common/logger"
	"exhibitor-profile/internal/common/metrics"
	"exhibitor-profile/internal/common/observability"
	"exhibitor-profile/internal/common/validation"
	"exhibitor-profile/internal/models"
	"exhibitor-profile/internal/profile"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "profile-score"
)

var schema = validation.MustCompile(inputSchema)

type ProfileReader interface {
	Get(ctx context.Context, id string) (models.ExhibitorProfile, error)
}

// ScoreCache holds results keyed by profile id and version.
type ScoreCache interface {
	Get(ctx context.Context, profileID string, version int64) (profile.CompletionResult, bool, error)
	Set(ctx context.Context, profileID string, version int64, result profile.CompletionResult) error
}

type Handler struct {
	config       *Config
	store        ProfileReader
	cache        ScoreCache
	obs          *observability.Observability
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

// NewHandler wires the worker; cache may be nil when score caching is off.
func NewHandler(config *Config, store ProfileReader, cache ScoreCache, obs *observability.Observability, log logger.Logger) *Handler {
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

	p, err := h.store.Get(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	if result, ok := h.lookup(ctx, log, p); ok {
		return &Output{ProfileID: p.ID, Version: p.Version, Completion: result, Cached: true}, nil
	}

	result := profile.Score(p)
	metrics.ProfileCompletionPercent.WithLabelValues(string(p.PackageType)).Observe(float64(result.Overall))

	if h.cache != nil {
		if err := h.cache.Set(ctx, p.ID, p.Version, result); err != nil {
			log.Warn("score cache write failed", map[string]interface{}{"error": err})
		}
	}

	log.Info("profile scored", map[string]interface{}{
		"version":          p.Version,
		"overallScore":     result.Overall,
		"primaryLocalePct": result.PrimaryLocalePct,
		"groupAPct":        result.GroupAPct,
		"groupBPct":        result.GroupBPct,
		"hasProducts":      result.HasProducts,
	})

	return &Output{ProfileID: p.ID, Version: p.Version, Completion: result}, nil
}

// lookup reads a cached result for the stored version. Cache errors count as
// a miss.
func (h *Handler) lookup(ctx context.Context, log logger.Logger, p models.ExhibitorProfile) (profile.CompletionResult, bool) {
	if h.cache == nil {
		return profile.CompletionResult{}, false
	}
	result, ok, err := h.cache.Get(ctx, p.ID, p.Version)
	switch {
	case err != nil:
		metrics.ScoreCacheLookups.WithLabelValues("error").Inc()
		log.Warn("score cache read failed", map[string]interface{}{"error": err})
		return profile.CompletionResult{}, false
	case ok:
		metrics.ScoreCacheLookups.WithLabelValues("hit").Inc()
		return result, true
	default:
		metrics.ScoreCacheLookups.WithLabelValues("miss").Inc()
		return profile.CompletionResult{}, false
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
