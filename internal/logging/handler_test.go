// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umlkit/umlkit/internal/logging"
)

func TestNew_AddsServiceAndVersion(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{
		Service: "umlkit",
		Version: "1.2.3",
		Writer:  &buf,
	})

	logger.Info("created element", "kind", "class")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "umlkit", record["service"])
	assert.Equal(t, "1.2.3", record["version"])
	assert.Equal(t, "created element", record["msg"])
	assert.Equal(t, "class", record["kind"])
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{
		Service: "umlkit",
		Version: "dev",
		Format:  "text",
		Writer:  &buf,
	})

	logger.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "service=umlkit")
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{
		Service: "umlkit",
		Version: "dev",
		Level:   "warn",
		Writer:  &buf,
	})

	logger.Info("suppressed")
	assert.Empty(t, buf.String())

	logger.Warn("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.input))
		})
	}
}

func TestWithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{
		Service: "umlkit",
		Version: "dev",
		Writer:  &buf,
	})

	logger.With("session", "abc").WithGroup("model").Info("drop", "kind", "class")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "abc", record["session"])
	group, ok := record["model"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "class", group["kind"])
}
