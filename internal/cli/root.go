// Package cli defines the mortar command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mortar.dev/mortar/internal/output"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "mortar",
		Short: "Mortar is a command line client for the Mortar big-data workflow service",
		Long: `Mortar is a command line client for the Mortar big-data workflow service.

It snapshots your project's git state and pushes it to a remote for
server-side execution, and can bootstrap a local Python runtime for
running user-defined functions.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetupDebugLog(debug)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write debug logs to ~/.mortar/mortar.log")

	rootCmd.AddCommand(newSnapshotCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newLocalCmd())
	rootCmd.AddCommand(newPushCmd())

	return rootCmd
}
