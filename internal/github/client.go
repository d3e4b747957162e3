// Package github provides a client for interacting with the GitHub API.
//
// shipit uses it only as a best-effort reachability probe: doctor checks
// that the configured remote repository exists before the operator tries
// to push to it. Probe failures are hints, never fatal.
package github

import "context"

// Client is an interface for GitHub API interactions
type Client interface {
	// RepoExists reports whether the repository exists and is visible to
	// the caller. A private repository without a token reads as absent.
	RepoExists(ctx context.Context, owner, repo string) (bool, error)
}
