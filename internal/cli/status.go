package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/config"
	shipiterrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/tui"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show working-tree state and the configured push target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			repo, err := git.OpenRepoFromCwd()
			if err != nil {
				return err
			}

			splog := tui.NewSplog()

			current, err := repo.CurrentBranch()
			if err != nil {
				current = "(detached)"
			}
			splog.Info("On branch %s", tui.StyleEmphasis(current))

			changes, err := repo.PendingChanges(ctx)
			if err != nil {
				return err
			}
			if len(changes) == 0 {
				splog.Info("Working tree clean")
			} else {
				splog.Info("Working tree has %d pending change(s)", len(changes))
				for _, change := range changes {
					splog.Info("  %s", change)
				}
			}

			remoteName, err := config.GetRemoteName(repo.GitDir())
			if err != nil {
				return err
			}
			branch, err := config.GetTargetBranch(repo.GitDir())
			if err != nil {
				return err
			}

			url, err := repo.RemoteURL(remoteName)
			switch {
			case err == nil:
				splog.Info("Push target: %s/%s (%s)", remoteName, branch, url)
			case errors.Is(err, shipiterrors.ErrRemoteNotFound):
				splog.Warn("Push target: %s/%s (remote not configured yet)", remoteName, branch)
			default:
				return err
			}

			return nil
		},
	}

	return cmd
}
