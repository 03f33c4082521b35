// internal/workers/profile/profile-create/handler.go
package profilecreate

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
	TaskType = "profile-create"
)

var schema = validation.MustCompile(inputSchema)

// ProfileCreator persists a new profile and assigns its first version.
type ProfileCreator interface {
	Create(ctx context.Context, p models.ExhibitorProfile) (models.ExhibitorProfile, error)
}

type Handler struct {
	config       *Config
	store        ProfileCreator
	obs          *observability.Observability
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, store ProfileCreator, obs *observability.Observability, log logger.Logger) *Handler {
	if config.Catalog == nil {
		config.Catalog = models.DefaultCatalog()
	}
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
	secondaries := make([]models.Locale, 0, len(input.SecondaryLocales))
	for _, l := range input.SecondaryLocales {
		secondaries = append(secondaries, models.Locale(l))
	}

	p, err := profile.NewProfile(
		input.CompanyName,
		models.Locale(input.PrimaryLocale),
		secondaries,
		models.PackageType(input.PackageType),
		h.config.Catalog,
	)
	if err != nil {
		h.obs.RecordMutation(ctx, "create", observability.OutcomeRejected)
		return nil, err
	}

	created, err := h.store.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	h.obs.RecordMutation(ctx, "create", observability.OutcomeApplied)

	result := profile.Score(created)
	steps := profile.PlanSteps(created)

	logger.ForProfile(h.logger, created.ID).Info("profile created", map[string]interface{}{
		"packageType":   created.PackageType,
		"locales":       created.ActiveLocales(),
		"sectionCount":  len(created.Sections),
		"openStepCount": len(steps),
	})

	return &Output{
		ProfileID:     created.ID,
		Version:       created.Version,
		SectionCount:  len(created.Sections),
		OverallScore:  result.Overall,
		OpenStepCount: len(steps),
	}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
