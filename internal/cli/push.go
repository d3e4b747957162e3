package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/actions"
	shipiterrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/tui"
)

// newPushCmd creates the push command
func newPushCmd() *cobra.Command {
	var (
		message       string
		remote        string
		branch        string
		url           string
		noCommit      bool
		noInteractive bool
	)

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Ensure the remote exists, commit pending changes, and push the target branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := git.OpenRepoFromCwd()
			if err != nil {
				return err
			}

			splog, err := tui.NewSplogWithConfig(tui.GetLogFilePath())
			if err != nil {
				splog = tui.NewSplog()
			}
			defer splog.Close()

			interactive := !noInteractive && tui.IsTTY()

			outcome, err := actions.PushAction(cmd.Context(), repo, actions.PushOptions{
				Remote:      remote,
				Branch:      branch,
				URL:         url,
				Message:     message,
				Commit:      !noCommit,
				Interactive: interactive,
			}, splog)
			if err != nil {
				printPushHint(splog, err)
				return err
			}

			splog.Info("%s", tui.StyleSuccess(fmt.Sprintf("✅ Pushed %s to %s (%s)", outcome.Branch, outcome.Remote, outcome.URL)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message for pending changes (default: timestamp-derived)")
	cmd.Flags().StringVar(&remote, "remote", "", "Remote name (default: configured remote, then origin)")
	cmd.Flags().StringVar(&branch, "branch", "", "Branch to push (default: configured branch, then main)")
	cmd.Flags().StringVar(&url, "url", "", "Remote URL used if the remote has to be created")
	cmd.Flags().BoolVar(&noCommit, "no-commit", false, "Never commit pending changes before pushing")
	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "Disable prompts; decide the commit step from flags alone")

	return cmd
}

// printPushHint prints a remediation hint for known failure classes
func printPushHint(splog *tui.Splog, err error) {
	switch {
	case errors.Is(err, shipiterrors.ErrRemoteExists):
		splog.Tip("The remote name is taken by a different URL. Check your remote configuration with 'git remote -v'.")
	case errors.Is(err, shipiterrors.ErrNoRemoteURL):
		splog.Tip("No remote URL is configured. Run 'shipit init' or pass --url.")
	case errors.Is(err, shipiterrors.ErrNoIdentity):
		splog.Tip("Configure your identity first: git config user.name <name> && git config user.email <email>")
	case errors.Is(err, shipiterrors.ErrPushRejected):
		splog.Tip("The remote refused the push. Pull the remote changes first, or check your authorization.")
	case errors.Is(err, shipiterrors.ErrCanceled):
		// Operator backed out; nothing to hint at.
	}
}
