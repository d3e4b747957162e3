// Package cli wires up the shipit cobra commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shipit",
		Short: "Shipit ensures a git remote exists, commits pending changes, and pushes",
		Long: `Shipit is a small tool for getting local work onto a remote in one step.

It makes sure the configured remote exists (creating it from a configured
URL when absent), optionally commits pending working-tree changes, and
pushes the target branch. One linear attempt; failures are reported with
remediation hints, never retried.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newRemoteCmd())
	rootCmd.AddCommand(newDoctorCmd())

	return rootCmd
}
