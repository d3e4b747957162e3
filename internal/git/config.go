package git

import (
	"context"
)

// UserName returns the git user's name from git config
func (r *Repo) UserName(ctx context.Context) (string, error) {
	return r.runner.Run(ctx, "config", "user.name")
}

// UserEmail returns the git user's email from git config
func (r *Repo) UserEmail(ctx context.Context) (string, error) {
	return r.runner.Run(ctx, "config", "user.email")
}

// HasIdentity reports whether git has both user.name and user.email
// configured, which commits require.
func (r *Repo) HasIdentity(ctx context.Context) bool {
	name, err := r.UserName(ctx)
	if err != nil || name == "" {
		return false
	}
	email, err := r.UserEmail(ctx)
	if err != nil || email == "" {
		return false
	}
	return true
}
