package logger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"info", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestForProfile_AddsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := ForProfile(NewZapAdapter(zap.New(core)), "p-1")

	log.WithError(fmt.Errorf("stale")).Warn("section update rejected", map[string]interface{}{"sectionId": "logo"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "section update rejected", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "p-1", fields["profileId"])
	assert.Equal(t, "logo", fields["sectionId"])
	assert.Equal(t, "stale", fields["error"])
}

func TestNew_RespectsLevel(t *testing.T) {
	l := New("error", "json")
	assert.False(t, l.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))
}
