package cli

import (
	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/tui"
)

// newRemoteCmd creates the remote command
func newRemoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "List the remotes configured for this repository",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			repo, err := git.OpenRepoFromCwd()
			if err != nil {
				return err
			}

			splog := tui.NewSplog()

			remotes, err := repo.Remotes()
			if err != nil {
				return err
			}
			if len(remotes) == 0 {
				splog.Info("No remotes configured")
				return nil
			}

			for _, r := range remotes {
				splog.Info("%s\t%s", tui.StyleEmphasis(r.Name), r.URL)
			}
			return nil
		},
	}

	return cmd
}
