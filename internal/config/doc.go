// Package config manages shipit configuration persistence.
//
// It handles the repository-specific push target configuration stored
// inside the .git directory.
package config
