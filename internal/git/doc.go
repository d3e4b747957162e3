// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Repo discovery and state queries (branch, status, refs)
//   - Staging and commit operations
//   - Remote management (ensure, list, push)
//
// This package should be the only place where direct git commands are executed.
package git
