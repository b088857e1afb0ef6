package logger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/verdant/plantcare-api/internal/platform/logger"
)

func TestWithLoggerAndFromContext(t *testing.T) {
	stored := slog.New(slog.NewJSONHandler(io.Discard, nil))
	ctx := logger.WithLogger(context.Background(), stored)

	assert.Same(t, stored, logger.FromContext(ctx),
		"FromContext should return the logger stored in the context")
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	got := logger.FromContext(context.Background())
	assert.Same(t, slog.Default(), got,
		"FromContext should fall back to the default logger")
}

func TestFromContextOrDefault(t *testing.T) {
	stored := slog.New(slog.NewJSONHandler(io.Discard, nil))
	componentDefault := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Context logger wins when present.
	ctx := logger.WithLogger(context.Background(), stored)
	assert.Same(t, stored, logger.FromContextOrDefault(ctx, componentDefault))

	// Otherwise the caller-provided default is used.
	assert.Same(t, componentDefault,
		logger.FromContextOrDefault(context.Background(), componentDefault))

	// A nil default falls through to the process default.
	assert.Same(t, slog.Default(),
		logger.FromContextOrDefault(context.Background(), nil))
}
