// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umlkit/umlkit/internal/export"
)

func TestNewRootCmd_RegistersSubcommands(t *testing.T) {
	root := NewRootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "demo")
	assert.Contains(t, names, "validate")
	assert.Contains(t, names, "schema")
}

func TestValidateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	cfg := defaultConfig()
	cfg.Output = path
	require.NoError(t, runDemo(cfg, slog.New(slog.DiscardHandler)))

	root := NewRootCmd()
	root.SetArgs([]string{"validate", path})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "valid")
	assert.Contains(t, out.String(), export.FormatVersion)
}

func TestValidateCommand_MissingFile(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"validate", filepath.Join(t.TempDir(), "nope.yaml")})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	require.Error(t, root.Execute())
}

func TestValidateCommand_RejectsMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1.0.0\nelements: not-a-list\n"), 0o600))

	root := NewRootCmd()
	root.SetArgs([]string{"validate", path})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	require.Error(t, root.Execute())
}

func TestSchemaCommand(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"schema"})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), export.SchemaID())
	assert.Contains(t, out.String(), "UMLKit Model Document")
}
