// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/umlkit/umlkit/internal/export"
)

// NewSchemaCmd creates the schema subcommand. It prints the JSON Schema
// for the snapshot document format.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for snapshot documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := export.GenerateSchema()
			if err != nil {
				return err
			}
			cmd.Println(string(data))
			return nil
		},
	}
}
