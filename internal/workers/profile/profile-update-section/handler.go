// internal/workers/profile/profile-update-section/handler.go
package profileupdatesection

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
	TaskType = "profile-update-section"

	operation = "update_section"
)

var schema = validation.MustCompile(inputSchema)

type ProfileStore interface {
	Get(ctx context.Context, id string) (models.ExhibitorProfile, error)
	Save(ctx context.Context, p models.ExhibitorProfile, expectedVersion int64) (models.ExhibitorProfile, error)
}

type ScoreCache interface {
	Set(ctx context.Context, profileID string, version int64, result profile.CompletionResult) error
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

// NewHandler wires the worker; cache may be nil when score caching is off.
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
	if input.ExpectedVersion > 0 && input.ExpectedVersion != current.Version {
		h.obs.RecordMutation(ctx, operation, observability.OutcomeConflict)
		return nil, errors.NewProfileVersionConflictError(current.ID, input.ExpectedVersion)
	}

	sectionID := models.SectionID(input.SectionID)
	locale := models.Locale(input.Locale)

	var updated models.ExhibitorProfile
	if input.Status == "" {
		updated, err = profile.UpdateSectionValue(current, sectionID, locale, input.Value)
	} else {
		updated, err = profile.UpdateSection(current, sectionID, locale, input.Value, models.SectionStatus(input.Status))
	}
	if err != nil {
		h.obs.RecordMutation(ctx, operation, observability.OutcomeRejected)
		log.Warn("section update rejected", map[string]interface{}{
			"sectionId": input.SectionID,
			"locale":    input.Locale,
			"error":     err,
		})
		return nil, err
	}

	saved, err := h.store.Save(ctx, updated, current.Version)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeProfileVersionConflict) {
			h.obs.RecordMutation(ctx, operation, observability.OutcomeConflict)
		}
		return nil, err
	}
	h.obs.RecordMutation(ctx, operation, observability.OutcomeApplied)

	result := profile.Score(saved)
	h.refreshCache(ctx, log, saved, result)

	section, _ := saved.Section(sectionID)
	log.Info("section updated", map[string]interface{}{
		"sectionId":     input.SectionID,
		"locale":        input.Locale,
		"sectionStatus": section.AggregateStatus,
		"version":       saved.Version,
		"overallScore":  result.Overall,
	})

	return &Output{
		ProfileID:     saved.ID,
		SectionID:     input.SectionID,
		Locale:        input.Locale,
		LocaleStatus:  section.LocaleStatus(locale),
		SectionStatus: section.AggregateStatus,
		Version:       saved.Version,
		OverallScore:  result.Overall,
	}, nil
}

// refreshCache drops scores of older versions and stores the new one.
// Cache failures are logged, never returned.
func (h *Handler) refreshCache(ctx context.Context, log logger.Logger, p models.ExhibitorProfile, result profile.CompletionResult) {
	if h.cache == nil {
		return
	}
	if _, err := h.cache.Invalidate(ctx, p.ID); err != nil {
		log.Warn("score cache invalidation failed", map[string]interface{}{"error": err})
	}
	if err := h.cache.Set(ctx, p.ID, p.Version, result); err != nil {
		log.Warn("score cache write failed", map[string]interface{}{"error": err})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
