package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/cards-api/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		want  slog.Level
		valid bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLevel(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestSetup_WritesJSONAtConfiguredLevel(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	buf := &TestLogBuffer{}
	logger := setup(config.ServerConfig{LogLevel: "warn"}, buf)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("card_id", "abc"))

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["msg"])
	assert.Equal(t, "abc", entries[0]["card_id"])
	assert.Equal(t, "cards-api", entries[0]["service"])
	assert.Same(t, logger, slog.Default())
}

func TestFromContext(t *testing.T) {
	fallback, _ := GetTestLogger(t)
	scoped, buf := GetTestLogger(t)

	assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
	//nolint:staticcheck // nil context is tolerated on purpose
	assert.Same(t, fallback, FromContextOrDefault(nil, fallback))

	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, FromContextOrDefault(ctx, fallback))

	ctx = WithRequestID(ctx, "req-42")
	assert.Equal(t, "req-42", RequestID(ctx))

	FromContext(ctx).Info("hello")
	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0]["request_id"])
}
