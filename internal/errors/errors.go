// Package errors provides sentinel errors and custom error types for the shipit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that the current directory is not inside a git work tree
	ErrNotARepository = errors.New("not a git repository")

	// ErrRemoteNotFound indicates that no remote with the requested name is configured
	ErrRemoteNotFound = errors.New("remote not found")

	// ErrRemoteExists indicates that a remote already exists under the requested name
	// with a different URL
	ErrRemoteExists = errors.New("remote already exists")

	// ErrNoRemoteURL indicates that a remote is missing and no URL was supplied to create it
	ErrNoRemoteURL = errors.New("no remote URL configured")

	// ErrCommitFailed indicates that creating a commit failed
	ErrCommitFailed = errors.New("commit failed")

	// ErrNoIdentity indicates that git has no user.name/user.email configured
	ErrNoIdentity = errors.New("git identity not configured")

	// ErrPushRejected indicates that the remote refused the push
	ErrPushRejected = errors.New("push rejected")

	// ErrCanceled indicates that the operator canceled an interactive prompt
	ErrCanceled = errors.New("canceled")
)

// RemoteConflictError represents an attempt to register a remote name that is
// already taken by a different URL. Remotes are never mutated in place.
type RemoteConflictError struct {
	Name        string
	ExistingURL string
	NewURL      string
}

func (e *RemoteConflictError) Error() string {
	return fmt.Sprintf("remote %s already exists with URL %s (requested %s)", e.Name, e.ExistingURL, e.NewURL)
}

// Is returns true if the target error is ErrRemoteExists
func (e *RemoteConflictError) Is(target error) bool {
	return target == ErrRemoteExists
}

// NewRemoteConflictError creates a new RemoteConflictError
func NewRemoteConflictError(name, existingURL, newURL string) *RemoteConflictError {
	return &RemoteConflictError{Name: name, ExistingURL: existingURL, NewURL: newURL}
}

// PushRejectedError represents a push that the remote refused, either because
// of diverging history or because authorization failed.
type PushRejectedError struct {
	Remote string
	Branch string
	Output string
}

func (e *PushRejectedError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("push of %s to %s rejected: %s", e.Branch, e.Remote, e.Output)
	}
	return fmt.Sprintf("push of %s to %s rejected", e.Branch, e.Remote)
}

// Is returns true if the target error is ErrPushRejected
func (e *PushRejectedError) Is(target error) bool {
	return target == ErrPushRejected
}

// NewPushRejectedError creates a new PushRejectedError
func NewPushRejectedError(remote, branch, output string) *PushRejectedError {
	return &PushRejectedError{Remote: remote, Branch: branch, Output: output}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
