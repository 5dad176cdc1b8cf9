package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
)

func newRootCmd(cfg Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "fluentcheck",
		Short: "fluentcheck validates documents with fluent property checks",
		Long: `fluentcheck reads a JSON or YAML document, runs the example record checks
against it and prints the validation result.

Defaults come from FLUENTCHECK_OUTPUT, FLUENTCHECK_LOG_LEVEL,
FLUENTCHECK_LOG_FORMAT and FLUENTCHECK_THROW.`,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints errors
	}
	root.AddCommand(newCheckCmd(cfg), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fluentcheck %s (%s)\n", Version, Commit)
		},
	}
}
