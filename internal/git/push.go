package git

import (
	"context"
	"strings"

	shipiterrors "shipit.dev/shipit/internal/errors"
)

// rejection markers in git push output; covers diverging history and
// authorization failures, both of which terminate the attempt
var pushRejectionMarkers = []string{
	"[rejected]",
	"non-fast-forward",
	"fetch first",
	"failed to push some refs",
	"Authentication failed",
	"Permission denied",
	"could not read Username",
}

// Push pushes a branch to the named remote, setting the upstream.
// A single linear attempt: no retry, no force.
func (r *Repo) Push(ctx context.Context, remote, branch string) error {
	output, err := r.runner.RunCombined(ctx, "push", "-u", remote, branch)
	if err != nil {
		for _, marker := range pushRejectionMarkers {
			if strings.Contains(output, marker) {
				return shipiterrors.NewPushRejectedError(remote, branch, strings.TrimSpace(output))
			}
		}
		return shipiterrors.NewGitCommandError("git", []string{"push", "-u", remote, branch}, output, "", err)
	}
	return nil
}

// RemoteHasBranch reports whether the remote already knows the branch.
// Queries the remote directly, so it needs network access for real remotes.
func (r *Repo) RemoteHasBranch(ctx context.Context, remote, branch string) (bool, error) {
	output, err := r.runner.Run(ctx, "ls-remote", "--heads", remote, branch)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(output) != "", nil
}
