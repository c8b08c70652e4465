// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package main

import (
	"bytes"
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/umlkit/umlkit/internal/export"
)

// NewValidateCmd creates the validate subcommand. It checks a snapshot
// document against the JSON Schema and the supported format version.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a model snapshot document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return oops.With("path", path).Wrapf(err, "read snapshot")
			}

			if err := export.ValidateDocument(data); err != nil {
				return oops.With("path", path).Wrapf(err, "schema validation failed")
			}

			doc, err := export.DecodeYAML(bytes.NewReader(data))
			if err != nil {
				return oops.With("path", path).Wrapf(err, "decode snapshot")
			}
			if err := export.CheckVersion(doc.Version); err != nil {
				return oops.With("path", path).Wrapf(err, "unsupported snapshot version")
			}

			cmd.Printf("%s: valid (version %s, %d elements)\n", path, doc.Version, len(doc.Elements))
			return nil
		},
	}
}
