package git

import (
	"context"
	"fmt"
	"strings"
)

// StageAll stages all changes including untracked files
func (r *Repo) StageAll(ctx context.Context) error {
	_, err := r.runner.Run(ctx, "add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// HasStagedChanges checks if there are staged changes
func (r *Repo) HasStagedChanges(ctx context.Context) (bool, error) {
	output, err := r.runner.Run(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// HasUnstagedChanges checks if there are unstaged changes to tracked files
func (r *Repo) HasUnstagedChanges(ctx context.Context) (bool, error) {
	output, err := r.runner.Run(ctx, "diff", "--name-only")
	if err != nil {
		return false, fmt.Errorf("failed to check unstaged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// HasUntrackedFiles checks if there are untracked files
func (r *Repo) HasUntrackedFiles(ctx context.Context) (bool, error) {
	output, err := r.runner.Run(ctx, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return false, fmt.Errorf("failed to check untracked files: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// PendingChanges returns the porcelain status entries for the work tree,
// covering staged, unstaged, and untracked files. An empty slice means a
// clean tree.
func (r *Repo) PendingChanges(ctx context.Context) ([]string, error) {
	lines, err := r.runner.RunLines(ctx, "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to check working tree status: %w", err)
	}
	return lines, nil
}

// IsWorkingTreeClean reports whether the work tree has no pending changes,
// counting staged, unstaged, and untracked files.
func (r *Repo) IsWorkingTreeClean(ctx context.Context) (bool, error) {
	changes, err := r.PendingChanges(ctx)
	if err != nil {
		return false, err
	}
	return len(changes) == 0, nil
}
