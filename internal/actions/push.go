package actions

import (
	"context"
	"fmt"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/tui"
)

// PushOptions contains options for the push operation.
// Commit=false disables the commit step unconditionally. Interactive
// selects whether an allowed commit step is confirmed with a prompt.
type PushOptions struct {
	Remote      string
	Branch      string
	URL         string
	Message     string
	Commit      bool
	Interactive bool
}

// PushOutcome describes a completed push
type PushOutcome struct {
	Remote        string
	URL           string
	Branch        string
	RemoteCreated bool
	Committed     bool
	CommitSHA     string
}

// PushAction ensures the target remote exists, optionally commits pending
// working-tree changes, and pushes the target branch. One linear attempt:
// any failure terminates the operation.
func PushAction(ctx context.Context, repo *git.Repo, opts PushOptions, splog *tui.Splog) (*PushOutcome, error) {
	cfg, err := config.GetRepoConfig(repo.GitDir())
	if err != nil {
		return nil, err
	}

	remote := opts.Remote
	if remote == "" {
		remote = cfg.Remote
	}
	if remote == "" {
		remote = config.DefaultRemote
	}

	branch := opts.Branch
	if branch == "" {
		branch = cfg.Branch
	}
	if branch == "" {
		branch = config.DefaultBranch
	}

	url := opts.URL
	if url == "" {
		url = cfg.URL
	}

	created, err := repo.EnsureRemote(remote, url)
	if err != nil {
		return nil, err
	}
	if created {
		splog.Info("Added remote %s → %s", remote, url)
	}

	resolvedURL, err := repo.RemoteURL(remote)
	if err != nil {
		return nil, err
	}

	outcome := &PushOutcome{
		Remote:        remote,
		URL:           resolvedURL,
		Branch:        branch,
		RemoteCreated: created,
	}

	committed, sha, err := commitPendingChanges(ctx, repo, opts, splog)
	if err != nil {
		return nil, err
	}
	outcome.Committed = committed
	outcome.CommitSHA = sha

	if !repo.HasCommits(ctx) {
		return nil, fmt.Errorf("nothing to push: repository has no commits")
	}

	exists, err := repo.BranchExists(branch)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("branch %s does not exist", branch)
	}

	splog.Info("Pushing %s to %s (%s)...", branch, remote, resolvedURL)
	if err := repo.Push(ctx, remote, branch); err != nil {
		return nil, err
	}

	return outcome, nil
}

// commitPendingChanges stages and commits pending changes when the tree is
// dirty. A clean tree is a no-op. Commit=false skips the step outright; the
// interactive prompts only run when the step has not been ruled out.
func commitPendingChanges(ctx context.Context, repo *git.Repo, opts PushOptions, splog *tui.Splog) (bool, string, error) {
	clean, err := repo.IsWorkingTreeClean(ctx)
	if err != nil {
		return false, "", err
	}
	if clean {
		return false, "", nil
	}

	shouldCommit := opts.Commit
	if opts.Interactive && shouldCommit {
		confirmed, err := tui.PromptConfirm("You have uncommitted changes. Commit them before pushing?", true)
		if err != nil {
			return false, "", err
		}
		shouldCommit = confirmed
	}

	if !shouldCommit {
		splog.Warn("Pushing without committing pending changes")
		return false, "", nil
	}

	message := opts.Message
	if message == "" && opts.Interactive {
		entered, err := tui.PromptTextInput("Commit message", git.DefaultCommitMessage())
		if err != nil {
			return false, "", err
		}
		message = entered
	}
	if message == "" {
		message = git.DefaultCommitMessage()
	}

	if err := repo.StageAll(ctx); err != nil {
		return false, "", err
	}
	if err := repo.Commit(ctx, git.CommitOptions{Message: message}); err != nil {
		return false, "", err
	}

	sha, err := repo.HeadSHA(ctx)
	if err != nil {
		return false, "", err
	}

	splog.Info("Committed pending changes as %.8s (%s)", sha, message)
	return true, sha, nil
}
