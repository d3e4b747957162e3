package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"

	shipiterrors "shipit.dev/shipit/internal/errors"
)

// Remote describes a configured remote
type Remote struct {
	Name string
	URL  string
}

// Remotes returns all configured remotes with their fetch URLs
func (r *Repo) Remotes() ([]Remote, error) {
	remotes, err := r.gg.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}

	result := make([]Remote, 0, len(remotes))
	for _, remote := range remotes {
		cfg := remote.Config()
		url := ""
		if len(cfg.URLs) > 0 {
			url = cfg.URLs[0]
		}
		result = append(result, Remote{Name: cfg.Name, URL: url})
	}
	return result, nil
}

// RemoteURL returns the fetch URL of the named remote
func (r *Repo) RemoteURL(name string) (string, error) {
	remote, err := r.gg.Remote(name)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return "", fmt.Errorf("%w: %s", shipiterrors.ErrRemoteNotFound, name)
		}
		return "", fmt.Errorf("failed to get remote %s: %w", name, err)
	}

	cfg := remote.Config()
	if len(cfg.URLs) == 0 {
		return "", fmt.Errorf("remote %s has no URL", name)
	}
	return cfg.URLs[0], nil
}

// EnsureRemote makes sure a remote with the given name exists.
//
// If the remote is absent and a URL is supplied, it is registered and
// created=true is returned. If the remote already exists with the same URL
// the call is a no-op. If it exists with a different URL a
// RemoteConflictError is returned; remotes are never rewritten in place.
func (r *Repo) EnsureRemote(name, url string) (created bool, err error) {
	existing, err := r.gg.Remote(name)
	if err == nil {
		cfg := existing.Config()
		if len(cfg.URLs) > 0 && url != "" && cfg.URLs[0] != url {
			return false, shipiterrors.NewRemoteConflictError(name, cfg.URLs[0], url)
		}
		return false, nil
	}
	if !errors.Is(err, gogit.ErrRemoteNotFound) {
		return false, fmt.Errorf("failed to query remote %s: %w", name, err)
	}

	if url == "" {
		return false, fmt.Errorf("%w for %s", shipiterrors.ErrNoRemoteURL, name)
	}

	_, err = r.gg.CreateRemote(&gitconfig.RemoteConfig{
		Name: name,
		URLs: []string{url},
	})
	if err != nil {
		return false, fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return true, nil
}
