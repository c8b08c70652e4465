// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the umlkit CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "umlkit",
		Short: "UMLKit - an in-memory UML modeling kernel",
		Long: `UMLKit builds UML models programmatically: a typed element factory,
relationship recipes with bidirectional consistency, and diagram
projection, with a lossless snapshot format for persistence tools.`,
	}

	cmd.PersistentFlags().String("config", "", "config file path")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "json", "log format (json, text)")

	cmd.AddCommand(NewDemoCmd())
	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewSchemaCmd())

	return cmd
}
