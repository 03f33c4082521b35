package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestJobStarted_Success(t *testing.T) {
	const task = "test-job-success"

	done := JobStarted(task)
	assert.Equal(t, 1.0, testutil.ToFloat64(WorkerJobsActive.WithLabelValues(task)))

	done("")

	assert.Equal(t, 0.0, testutil.ToFloat64(WorkerJobsActive.WithLabelValues(task)))
	assert.Equal(t, 1.0, testutil.ToFloat64(WorkerJobsCompleted.WithLabelValues(task)))
	assert.Equal(t, 0.0, testutil.ToFloat64(WorkerJobsFailed.WithLabelValues(task, "PROFILE_NOT_FOUND")))
}

func TestJobStarted_Failure(t *testing.T) {
	const task = "test-job-failure"

	JobStarted(task)("PROFILE_NOT_FOUND")

	assert.Equal(t, 0.0, testutil.ToFloat64(WorkerJobsCompleted.WithLabelValues(task)))
	assert.Equal(t, 1.0, testutil.ToFloat64(WorkerJobsFailed.WithLabelValues(task, "PROFILE_NOT_FOUND")))
}
