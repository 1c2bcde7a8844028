package slogx

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_JSONWithServiceAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Service: "taskhub",
		Version: "test",
		Env:     "prod",
		Level:   "info",
		Format:  "json",
		Output:  &buf,
	})

	logger.Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "taskhub", line["service"])
	require.Equal(t, "test", line["version"])
	require.Equal(t, "prod", line["env"])
	require.Equal(t, "hello", line["msg"])
}

func TestNew_SkipsEmptyAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Service: "taskhub", Format: "json", Output: &buf})

	logger.Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "taskhub", line["service"])
	require.NotContains(t, line, "version")
	require.NotContains(t, line, "env")
}

func TestNew_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: "text", Output: &buf})

	logger.Debug("hidden")
	logger.Info("also hidden")
	require.Zero(t, buf.Len())

	logger.Warn("visible")
	require.Contains(t, buf.String(), "visible")
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	require.Equal(t, slog.Default(), FromContext(context.Background()))

	var buf bytes.Buffer
	scoped := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := WithContext(context.Background(), scoped)
	require.Equal(t, scoped, FromContext(ctx))
}
