// internal/workers/profile/profile-plan-steps/handler.go
package profileplansteps

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
	TaskType = "profile-plan-steps"
)

var schema = validation.MustCompile(inputSchema)

type ProfileReader interface {
	Get(ctx context.Context, id string) (models.ExhibitorProfile, error)
}

type Handler struct {
	config       *Config
	store        ProfileReader
	obs          *observability.Observability
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, store ProfileReader, obs *observability.Observability, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		store:        store,
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
	p, err := h.store.Get(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	steps := profile.PlanSteps(p)
	metrics.ProfileOutstandingSteps.WithLabelValues(string(p.PackageType)).Set(float64(len(steps)))

	output := &Output{
		ProfileID:       p.ID,
		Version:         p.Version,
		Steps:           steps,
		StepCount:       len(steps),
		ProfileComplete: len(steps) == 0,
	}
	if len(steps) > 0 {
		next := steps[0]
		output.NextStep = &next
	}
	if input.IncludeSections {
		output.Sections = profile.Summarize(p).Sections
	}

	logger.ForProfile(h.logger, p.ID).Info("steps planned", map[string]interface{}{
		"version":         p.Version,
		"stepCount":       len(steps),
		"profileComplete": output.ProfileComplete,
	})
	return output, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
