package camunda

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exhibitor-profile/internal/common/errors"
	"exhibitor-profile/internal/common/validation"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestClient(maxRetries int) *Client {
	return &Client{config: &ClientConfig{
		ConnectionTimeout: time.Second,
		RetryConfig: &RetryConfig{
			MaxRetries: maxRetries,
			BaseDelay:  time.Millisecond,
			MaxDelay:   2 * time.Millisecond,
		},
	}}
}

func createTestJob(variables string) entities.Job {
	return entities.Job{ActivatedJob: &pb.ActivatedJob{Key: 42, Type: "profile-score", Variables: variables}}
}

// ==========================
// Retry Tests
// ==========================

func TestIsRetryableZeebeError(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"rpc error: code = Unavailable desc = connection refused", true},
		{"context deadline exceeded", true},
		{"write: broken pipe", true},
		{"rpc error: code = NotFound desc = job not found", false},
		{"rpc error: code = InvalidArgument", false},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableZeebeError(stderrors.New(tt.msg)))
		})
	}
}

func TestExecuteWithRetry_RecoversFromTransientError(t *testing.T) {
	c := createTestClient(3)
	calls := 0

	result, err := c.ExecuteWithRetry(context.Background(), func(context.Context) (interface{}, error) {
		calls++
		if calls < 3 {
			return nil, stderrors.New("connection refused")
		}
		return "ok", nil
	}, "publish-message")

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, calls)
}

func TestExecuteWithRetry_PermanentErrorIsNotRetried(t *testing.T) {
	c := createTestClient(3)
	calls := 0

	_, err := c.ExecuteWithRetry(context.Background(), func(context.Context) (interface{}, error) {
		calls++
		return nil, stderrors.New("job not found")
	}, "complete-job")

	assert.Equal(t, 1, calls)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeBrokerUnavailable))
	assert.False(t, errors.Normalize(err).Retryable)
}

func TestExecuteWithRetry_GivesUp(t *testing.T) {
	c := createTestClient(2)
	calls := 0

	_, err := c.ExecuteWithRetry(context.Background(), func(context.Context) (interface{}, error) {
		calls++
		return nil, stderrors.New("unavailable")
	}, "topology")

	assert.Equal(t, 3, calls)
	assert.True(t, errors.HasCode(err, errors.ErrCodeBrokerUnavailable))
	assert.True(t, errors.Normalize(err).Retryable)
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestExecuteWithRetry_ContextCancelled(t *testing.T) {
	c := createTestClient(5)
	c.config.RetryConfig.BaseDelay = time.Hour
	c.config.RetryConfig.MaxDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ExecuteWithRetry(ctx, func(context.Context) (interface{}, error) {
		return nil, stderrors.New("timeout")
	}, "topology")

	assert.ErrorIs(t, err, context.Canceled)
}

// ==========================
// Job Variable Tests
// ==========================

var testInputSchema = validation.MustCompile(`{
	"type": "object",
	"required": ["profileId"],
	"properties": {"profileId": {"type": "string", "minLength": 1}}
}`)

func TestDecodeVariables(t *testing.T) {
	var input struct {
		ProfileID string `json:"profileId"`
	}

	require.NoError(t, DecodeVariables(createTestJob(`{"profileId": "p-1", "extra": true}`), testInputSchema, &input))
	assert.Equal(t, "p-1", input.ProfileID)
}

func TestDecodeVariables_Rejects(t *testing.T) {
	tests := []struct {
		name      string
		variables string
	}{
		{"missing field", `{"other": 1}`},
		{"empty variables", ``},
		{"not json", `{profileId`},
		{"wrong type", `{"profileId": 7}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input map[string]interface{}
			err := DecodeVariables(createTestJob(tt.variables), testInputSchema, &input)
			assert.True(t, errors.HasCode(err, errors.ErrCodeInputValidationFailed), "got %v", err)
		})
	}
}
