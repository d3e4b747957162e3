// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a shipit command (push, doctor) and
// orchestrates operations across the git, config, and github packages.
//
// Key patterns:
//   - Actions accept a context.Context and an opened git.Repo
//   - Actions are stateless - all persistent state lives in the repo config
//   - Actions report progress through the tui package
package actions
