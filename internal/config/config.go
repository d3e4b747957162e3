package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults used when the config file is absent or a field is empty
const (
	DefaultRemote = "origin"
	DefaultBranch = "main"
)

// ConfigFileName is the config file kept inside the repository's .git directory
const ConfigFileName = ".shipit_config"

// RepoConfig represents the repository configuration.
// URL is the fallback remote URL used when the configured remote does not
// exist yet; it is operator-supplied configuration, never baked in.
type RepoConfig struct {
	Remote string `json:"remote,omitempty"`
	Branch string `json:"branch,omitempty"`
	URL    string `json:"url,omitempty"`
}

func configPath(gitDir string) string {
	return filepath.Join(gitDir, ConfigFileName)
}

// GetRepoConfig reads the repository configuration from the given .git
// directory. A missing config file yields the zero config, not an error.
func GetRepoConfig(gitDir string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(gitDir))
	if err != nil {
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// WriteRepoConfig persists the repository configuration
func WriteRepoConfig(gitDir string, config *RepoConfig) error {
	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(configPath(gitDir), configJSON, 0600)
}

// HasRepoConfig reports whether a config file exists for the repository
func HasRepoConfig(gitDir string) bool {
	_, err := os.Stat(configPath(gitDir))
	return err == nil
}

// GetRemoteName returns the configured remote name, or "origin" as default
func GetRemoteName(gitDir string) (string, error) {
	config, err := GetRepoConfig(gitDir)
	if err != nil {
		return "", err
	}
	if config.Remote != "" {
		return config.Remote, nil
	}
	return DefaultRemote, nil
}

// GetTargetBranch returns the configured target branch, or "main" as default
func GetTargetBranch(gitDir string) (string, error) {
	config, err := GetRepoConfig(gitDir)
	if err != nil {
		return "", err
	}
	if config.Branch != "" {
		return config.Branch, nil
	}
	return DefaultBranch, nil
}
