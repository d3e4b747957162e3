package actions

import (
	"context"
	"fmt"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/github"
	"shipit.dev/shipit/internal/tui"
)

// DoctorOptions contains options for the doctor checks
type DoctorOptions struct {
	// Probe, when non-nil, is used to check that the configured remote
	// repository is reachable on its host
	Probe github.Client
}

// DoctorAction runs diagnostic checks on the environment and repository.
// It returns an error only when a check fails hard enough that push cannot
// work; warnings are printed and do not fail the run.
func DoctorAction(ctx context.Context, repo *git.Repo, opts DoctorOptions, splog *tui.Splog) error {
	var failures []string

	splog.Info("Environment:")

	gitVersion, err := repo.Runner().Version(ctx)
	if err != nil {
		failures = append(failures, "git is not installed or not in PATH")
		splog.Error("  git is not installed or not in PATH")
	} else {
		splog.Info("  ✅ %s", gitVersion)
	}

	splog.Info("Repository:")

	if repo.HasIdentity(ctx) {
		name, _ := repo.UserName(ctx)
		splog.Info("  ✅ git identity configured (%s)", name)
	} else {
		failures = append(failures, "git identity not configured; commits will fail")
		splog.Error("  git identity not configured (set user.name and user.email)")
	}

	remoteName, err := config.GetRemoteName(repo.GitDir())
	if err != nil {
		return err
	}
	branch, err := config.GetTargetBranch(repo.GitDir())
	if err != nil {
		return err
	}
	splog.Info("  target: %s/%s", remoteName, branch)

	url, err := repo.RemoteURL(remoteName)
	if err != nil {
		cfg, cfgErr := config.GetRepoConfig(repo.GitDir())
		if cfgErr == nil && cfg.URL != "" {
			splog.Warn("  remote %s not configured yet; push will create it from %s", remoteName, cfg.URL)
			url = cfg.URL
		} else {
			failures = append(failures, fmt.Sprintf("remote %s not configured and no fallback URL set", remoteName))
			splog.Error("  remote %s not configured (run 'shipit init')", remoteName)
		}
	} else {
		splog.Info("  ✅ remote %s → %s", remoteName, url)
	}

	if opts.Probe != nil && url != "" {
		checkRemoteReachable(ctx, opts.Probe, url, splog)
	}

	if len(failures) > 0 {
		splog.Newline()
		return fmt.Errorf("%d check(s) failed", len(failures))
	}
	return nil
}

// checkRemoteReachable probes the hosting provider for the remote
// repository. Best effort: parse failures and API errors are warnings.
func checkRemoteReachable(ctx context.Context, probe github.Client, url string, splog *tui.Splog) {
	owner, repoName, err := git.OwnerRepoFromURL(url)
	if err != nil {
		splog.Warn("  could not parse owner/repo from %s", url)
		return
	}

	exists, err := probe.RepoExists(ctx, owner, repoName)
	if err != nil {
		splog.Warn("  could not reach host to verify %s/%s: %v", owner, repoName, err)
		return
	}
	if exists {
		splog.Info("  ✅ %s/%s exists on the remote host", owner, repoName)
	} else {
		splog.Warn("  %s/%s was not found on the remote host (private repo or typo?)", owner, repoName)
	}
}
