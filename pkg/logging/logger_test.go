package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" ERROR ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			logger := New(tt.level)
			assert.True(t, logger.Enabled(ctx, tt.enabled))
			assert.False(t, logger.Enabled(ctx, tt.enabled-4))
		})
	}
}

func TestForServiceStampsEveryLine(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{Logger: NewWriter(&buf, "info").With("service", "leadchat-api", "env", "test")}

	logger.Info("lead created", "id", "lead-1")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "leadchat-api", entry["service"])
	assert.Equal(t, "test", entry["env"])
	assert.Equal(t, "lead created", entry["msg"])
	assert.Equal(t, "lead-1", entry["id"])
}

func TestComponentTagsChildLogger(t *testing.T) {
	var buf bytes.Buffer
	root := NewWriter(&buf, "info")

	root.Component("chat").Info("conversation started")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "chat", entry["component"])
}

func TestDefaultEnablesInfoOnly(t *testing.T) {
	logger := Default()
	require.NotNil(t, logger.Logger)

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
	assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
}
