// internal/common/camunda/job.go
package camunda

import (
	"context"
	"encoding/json"

	"exhibitor-profile/internal/common/errors"
	"exhibitor-profile/internal/common/logger"
	"exhibitor-profile/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

// DecodeVariables validates the job variables against schema and decodes
// them into out. Failures carry INPUT_VALIDATION_FAILED.
func DecodeVariables(job entities.Job, schema *validation.Schema, out interface{}) error {
	raw := []byte(job.Variables)
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	if result := schema.ValidateJSON(raw); !result.Valid {
		return errors.NewInputValidationFailedError(result.Error())
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.NewInputValidationFailedError(err.Error())
	}
	return nil
}

// CompleteJob completes the job with output as its variables.
func CompleteJob(ctx context.Context, client worker.JobClient, job entities.Job, output interface{}, log logger.Logger) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		log.Error("failed to create complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		return
	}
	if _, err := cmd.Send(ctx); err != nil {
		log.Error("failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		return
	}
	log.Info("job completed successfully", map[string]interface{}{"jobKey": job.Key})
}
