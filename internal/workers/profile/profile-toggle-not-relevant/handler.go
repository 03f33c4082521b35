// internal/workers/profile/profile-toggle-not-relevant/handler.go
package profiletogglenotrelevant

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
	TaskType = "profile-toggle-not-relevant"

	operation = "toggle_not_relevant"
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

// execute flips the flag when the gate allows it. A refused toggle is not an
// error: the job completes with toggled=false and nothing is written.
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
	toggled, err := profile.ToggleNotRelevant(current, sectionID)
	if err != nil {
		h.obs.RecordMutation(ctx, operation, observability.OutcomeRejected)
		return nil, err
	}

	before, _ := current.Section(sectionID)
	after, _ := toggled.Section(sectionID)
	if before.IsNotRelevant == after.IsNotRelevant {
		h.obs.RecordMutation(ctx, operation, observability.OutcomeNoop)
		log.Info("toggle refused", map[string]interface{}{
			"sectionId":   input.SectionID,
			"isMandatory": before.IsMandatory,
			"status":      before.AggregateStatus,
		})
		return &Output{
			ProfileID:     current.ID,
			SectionID:     input.SectionID,
			Toggled:       false,
			IsNotRelevant: before.IsNotRelevant,
			Version:       current.Version,
			OverallScore:  profile.Score(current).Overall,
		}, nil
	}

	saved, err := h.store.Save(ctx, toggled, current.Version)
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

	result := profile.Score(saved)
	log.Info("section relevance toggled", map[string]interface{}{
		"sectionId":     input.SectionID,
		"isNotRelevant": after.IsNotRelevant,
		"version":       saved.Version,
		"overallScore":  result.Overall,
	})

	return &Output{
		ProfileID:     saved.ID,
		SectionID:     input.SectionID,
		Toggled:       true,
		IsNotRelevant: after.IsNotRelevant,
		Version:       saved.Version,
		OverallScore:  result.Overall,
	}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
