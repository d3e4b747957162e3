package cli

import (
	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/actions"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/github"
	"shipit.dev/shipit/internal/tui"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose common issues with your shipit setup",
		Long: `Run diagnostic checks on your shipit environment and repository.

The doctor command checks:
  - Environment: git is installed and on PATH
  - Repository: git identity, remote configuration, and target branch
  - Remote host: the configured repository exists (unless --offline)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := git.OpenRepoFromCwd()
			if err != nil {
				return err
			}

			splog := tui.NewSplog()

			opts := actions.DoctorOptions{}
			if !offline {
				opts.Probe = github.NewRealClient(cmd.Context())
			}

			return actions.DoctorAction(cmd.Context(), repo, opts, splog)
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Skip checks that need network access")

	return cmd
}
