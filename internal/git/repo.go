package git

import (
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	shipiterrors "shipit.dev/shipit/internal/errors"
)

// Repo wraps a go-git repository together with a command runner rooted at
// the work tree. go-git serves reads and remote configuration; operations
// that touch the index, commit history, or the network shell out to git.
type Repo struct {
	root   string
	gg     *gogit.Repository
	runner *CommandRunner
}

// OpenRepo opens the repository containing the given path
func OpenRepo(path string) (*Repo, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", shipiterrors.ErrNotARepository, absPath)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	root := worktree.Filesystem.Root()

	return &Repo{
		root:   root,
		gg:     repo,
		runner: NewCommandRunner(root),
	}, nil
}

// OpenRepoFromCwd opens the repository containing the current working directory
func OpenRepoFromCwd() (*Repo, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return OpenRepo(wd)
}

// Root returns the root directory of the work tree
func (r *Repo) Root() string {
	return r.root
}

// GitDir returns the repository's .git directory
func (r *Repo) GitDir() string {
	return filepath.Join(r.root, ".git")
}

// Runner returns the command runner rooted at the work tree
func (r *Repo) Runner() *CommandRunner {
	return r.runner
}

// CurrentBranch returns the current branch name
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.gg.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch")
	}

	return head.Name().Short(), nil
}

// BranchExists reports whether a local branch with the given name exists
func (r *Repo) BranchExists(name string) (bool, error) {
	branches, err := r.gg.Branches()
	if err != nil {
		return false, fmt.Errorf("failed to get branches: %w", err)
	}

	found := false
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().Short() == name {
			found = true
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to iterate branches: %w", err)
	}
	return found, nil
}
