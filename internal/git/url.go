package git

import (
	"fmt"
	"strings"
)

// OwnerRepoFromURL parses the owner and repository name out of a remote URL.
// Handles both https and ssh formats:
//
//	https://github.com/owner/repo.git
//	git@github.com:owner/repo.git
func OwnerRepoFromURL(url string) (owner, repo string, err error) {
	url = strings.TrimSuffix(strings.TrimSpace(url), ".git")
	url = strings.TrimSuffix(url, "/")

	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("invalid remote URL: %s", url)
	}
	repo = parts[len(parts)-1]

	if strings.Contains(url, "@") && !strings.Contains(url, "://") {
		// SSH format: git@host:owner/repo
		sshParts := strings.SplitN(url, ":", 2)
		if len(sshParts) < 2 {
			return "", "", fmt.Errorf("invalid SSH remote URL: %s", url)
		}
		pathParts := strings.Split(sshParts[1], "/")
		if len(pathParts) < 2 {
			return "", "", fmt.Errorf("invalid SSH remote URL: %s", url)
		}
		owner = pathParts[0]
	} else {
		owner = parts[len(parts)-2]
	}

	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("invalid remote URL: %s", url)
	}
	return owner, repo, nil
}

// RepoURLFromOwnerRepo builds an https clone URL for a host account and
// repository name pair.
func RepoURLFromOwnerRepo(host, owner, repo string) string {
	if host == "" {
		host = "github.com"
	}
	return fmt.Sprintf("https://%s/%s/%s.git", host, owner, repo)
}
