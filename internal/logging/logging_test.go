package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStructuredLogger(t *testing.T) {
	t.Run("writes JSON lines", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		logger.Info("render figure", slog.String("galaxy", "M31"), slog.Int("panels", 3))

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"render figure"`)
		assert.Contains(t, output, `"galaxy":"M31"`)
		assert.Contains(t, output, `"panels":3`)
	})

	t.Run("respects level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelWarn)

		logger.Info("info message")
		logger.Warn("warning message")

		output := buf.String()
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warning message")
	})
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogError(logger, "render failed", assert.AnError, slog.String("component", "figure"))
	output := buf.String()
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.Contains(t, output, `"msg":"render failed"`)
	assert.Contains(t, output, `"component":"figure"`)
	assert.Contains(t, output, assert.AnError.Error())

	buf.Reset()
	LogError(logger, "nothing", nil)
	LogError(nil, "nothing", assert.AnError)
	assert.Empty(t, buf.String())
}

func TestLogOperationSkipsZeroDuration(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogOperation(logger, "plot", slog.Duration("duration", 0), slog.String("galaxy", "M31"))
	assert.NotContains(t, buf.String(), `"duration"`)
	assert.Contains(t, buf.String(), `"galaxy":"M31"`)

	buf.Reset()
	LogOperation(logger, "plot", slog.Duration("duration", time.Millisecond))
	assert.Contains(t, buf.String(), `"duration"`)
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
