package github

import (
	"context"
	"fmt"
)

// MockClient implements Client for tests
type MockClient struct {
	// Repos maps "owner/repo" to existence
	Repos map[string]bool

	// Err, when set, is returned by every call
	Err error
}

// NewMockClient creates a MockClient with the given repositories marked as existing
func NewMockClient(repos ...string) *MockClient {
	m := &MockClient{Repos: make(map[string]bool)}
	for _, r := range repos {
		m.Repos[r] = true
	}
	return m
}

// RepoExists reports whether the repository was registered with the mock
func (c *MockClient) RepoExists(_ context.Context, owner, repo string) (bool, error) {
	if c.Err != nil {
		return false, c.Err
	}
	return c.Repos[fmt.Sprintf("%s/%s", owner, repo)], nil
}
