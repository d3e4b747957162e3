package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/tui"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var (
		remote        string
		branch        string
		url           string
		noInteractive bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Configure the remote name, target branch, and fallback URL for this repository",
		Long: `Write the shipit configuration for this repository.

The configuration lives in .git/ and records the remote name, the target
branch, and the fallback remote URL used when the remote does not exist
yet. If no URL is given, you will be prompted for a host username and
repository name to derive one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := git.OpenRepoFromCwd()
			if err != nil {
				return err
			}

			splog := tui.NewSplog()
			interactive := !noInteractive && tui.IsTTY()

			if config.HasRepoConfig(repo.GitDir()) && interactive {
				overwrite, err := tui.PromptConfirm("A shipit config already exists. Overwrite it?", false)
				if err != nil {
					return err
				}
				if !overwrite {
					splog.Info("Keeping existing configuration")
					return nil
				}
			}

			if url == "" && interactive {
				url, err = promptRemoteURL()
				if err != nil {
					return err
				}
			}

			cfg := &config.RepoConfig{
				Remote: remote,
				Branch: branch,
				URL:    url,
			}
			if err := config.WriteRepoConfig(repo.GitDir(), cfg); err != nil {
				return err
			}

			remoteName, _ := config.GetRemoteName(repo.GitDir())
			targetBranch, _ := config.GetTargetBranch(repo.GitDir())
			splog.Info("Configured %s/%s", remoteName, targetBranch)
			if url != "" {
				splog.Info("Fallback remote URL: %s", url)
			} else {
				splog.Warn("No fallback URL configured; push requires the remote to exist already")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "Remote name (default origin)")
	cmd.Flags().StringVar(&branch, "branch", "", "Target branch (default main)")
	cmd.Flags().StringVar(&url, "url", "", "Fallback remote URL used when the remote is absent")
	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "Disable prompts")

	return cmd
}

// promptRemoteURL asks for a host username and repository name and derives
// an https clone URL from them
func promptRemoteURL() (string, error) {
	var username string
	prompt := &survey.Input{
		Message: "GitHub username (or organization)",
	}
	if err := survey.AskOne(prompt, &username); err != nil {
		return "", fmt.Errorf("canceled")
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return "", fmt.Errorf("username must not be empty")
	}

	var repoName string
	prompt = &survey.Input{
		Message: "Repository name",
	}
	if err := survey.AskOne(prompt, &repoName); err != nil {
		return "", fmt.Errorf("canceled")
	}
	repoName = strings.TrimSpace(repoName)
	if repoName == "" {
		return "", fmt.Errorf("repository name must not be empty")
	}

	return git.RepoURLFromOwnerRepo("github.com", username, repoName), nil
}
