package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, set at build time with ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Display version information",
	Aliases: []string{"v"},
	Args:    cobra.NoArgs,
	Run:     runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "fanmount %s\n", Version)
	fmt.Fprintf(w, "commit:     %s\n", GitCommit)
	fmt.Fprintf(w, "build date: %s\n", BuildDate)
}
