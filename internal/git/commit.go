package git

import (
	"context"
	"fmt"
	"strings"
	"time"

	shipiterrors "shipit.dev/shipit/internal/errors"
)

// CommitOptions contains options for creating a commit
type CommitOptions struct {
	Message    string
	AllowEmpty bool
}

// Commit creates a commit with the given options.
// A missing git identity is reported as ErrNoIdentity so callers can
// print a useful hint instead of raw git output.
func (r *Repo) Commit(ctx context.Context, opts CommitOptions) error {
	args := []string{"commit", "-m", opts.Message}
	if opts.AllowEmpty {
		args = append(args, "--allow-empty")
	}

	output, err := r.runner.RunCombined(ctx, args...)
	if err != nil {
		if strings.Contains(output, "Please tell me who you are") ||
			strings.Contains(output, "user.email") {
			return fmt.Errorf("%w: %s", shipiterrors.ErrNoIdentity, strings.TrimSpace(output))
		}
		return fmt.Errorf("%w: %s", shipiterrors.ErrCommitFailed, strings.TrimSpace(output))
	}
	return nil
}

// HeadSHA returns the SHA of the current HEAD commit
func (r *Repo) HeadSHA(ctx context.Context) (string, error) {
	sha, err := r.runner.Run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return sha, nil
}

// HasCommits reports whether the repository has at least one commit
func (r *Repo) HasCommits(ctx context.Context) bool {
	_, err := r.runner.Run(ctx, "rev-parse", "--verify", "HEAD")
	return err == nil
}

// DefaultCommitMessage returns the timestamp-derived message used when the
// operator does not supply one, in yyyyMMddHHmmss format in UTC.
func DefaultCommitMessage() string {
	return "update " + time.Now().UTC().Format("20060102150405")
}
