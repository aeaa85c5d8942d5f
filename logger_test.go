package qmcgo

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, nil))

	logger.WithKernel("L2Star").WithDim(3).WithNumPoints(64).Info("evaluating")

	out := buf.String()
	assert.Contains(t, out, "kernel=L2Star")
	assert.Contains(t, out, "dim=3")
	assert.Contains(t, out, "n=64")
}

func TestLogger_LogSearch(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	logger.LogSearch("exhaust", 2, 128, 0.5, nil)
	require.Contains(t, buf.String(), "search completed")
	assert.Contains(t, buf.String(), "kind=exhaust")

	buf.Reset()

	logger.LogSearch("random", 2, 16, 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "search failed")
}

func TestNoopLogger_Discards(t *testing.T) {
	logger := NoopLogger()

	// Must not panic and must not emit at any standard level.
	logger.Info("dropped")
	logger.Error("dropped")
	logger.WithKernel("X").Debug("dropped")
}
