package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Stamped at link time, see magefiles.
var (
	version   = "dev"
	gitCommit = "unknown"
	buildTime = "unknown"
)

func versionLabel() string {
	label := version
	if gitCommit != "unknown" || buildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", version, gitCommit, buildTime)
	}
	return label
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lexodoro version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "lexodoro", versionLabel())
		},
	}
}
