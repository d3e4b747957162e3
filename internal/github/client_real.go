package github

import (
	"context"
	"net/http"
	"os"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// RealClient implements Client using the real GitHub API
type RealClient struct {
	client *github.Client
}

// NewRealClient creates a new RealClient. If GITHUB_TOKEN is set in the
// environment it is used for authenticated requests; otherwise requests
// are anonymous, which is enough to see public repositories.
func NewRealClient(ctx context.Context) *RealClient {
	var httpClient *http.Client
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
	}
	return &RealClient{client: github.NewClient(httpClient)}
}

// RepoExists reports whether the repository exists and is visible to the caller
func (c *RealClient) RepoExists(ctx context.Context, owner, repo string) (bool, error) {
	_, resp, err := c.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
