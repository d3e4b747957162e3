// Package tui provides the terminal user interface for shipit.
//
// It handles:
//   - Interactive prompts and confirmations (using bubbletea)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
package tui
