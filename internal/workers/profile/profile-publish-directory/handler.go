// internal/workers/profile/profile-publish-directory/handler.go
package profilepublishdirectory

import (
	"context"

	"exhibitor-profile/internal/common/camunda"
	"exhibitor-profile/internal/common/database"
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
	TaskType = "profile-publish-directory"

	resultWithdrawn = "withdrawn"
)

var schema = validation.MustCompile(inputSchema)

type ProfileReader interface {
	Get(ctx context.Context, id string) (models.ExhibitorProfile, error)
}

type Directory interface {
	Index(ctx context.Context, doc database.DirectoryDocument) (string, error)
	Delete(ctx context.Context, profileID string) error
}

type Handler struct {
	config       *Config
	store        ProfileReader
	directory    Directory
	obs          *observability.Observability
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, store ProfileReader, directory Directory, obs *observability.Observability, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		store:        store,
		directory:    directory,
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

	result := profile.Score(p)
	output := &Output{
		ProfileID:    p.ID,
		Version:      p.Version,
		OverallScore: result.Overall,
	}

	if result.Overall < h.config.MinOverall {
		if err := h.directory.Delete(ctx, p.ID); err != nil {
			return nil, err
		}
		output.IndexResult = resultWithdrawn
		log.Info("profile below listing threshold", map[string]interface{}{
			"overallScore": result.Overall,
			"minOverall":   h.config.MinOverall,
		})
		return output, nil
	}

	indexResult, err := h.directory.Index(ctx, database.NewDirectoryDocument(p, result))
	if err != nil {
		return nil, err
	}
	output.Published = true
	output.IndexResult = indexResult

	log.Info("profile published", map[string]interface{}{
		"version":      p.Version,
		"overallScore": result.Overall,
		"indexResult":  indexResult,
	})
	return output, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
