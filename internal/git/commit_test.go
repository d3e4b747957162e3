package git_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/testhelpers"
)

func TestCommit(t *testing.T) {
	t.Parallel()

	t.Run("creates a commit from staged changes", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CreateChangeAndCommit("initial", "init"); err != nil {
				return err
			}
			return s.Repo.CreateChange("pending", "new")
		})

		repo, err := git.OpenRepo(scene.Dir)
		require.NoError(t, err)
		ctx := context.Background()

		before, err := scene.Repo.GetRevision("HEAD")
		require.NoError(t, err)

		require.NoError(t, repo.StageAll(ctx))
		require.NoError(t, repo.Commit(ctx, git.CommitOptions{Message: "add pending work"}))

		after, err := repo.HeadSHA(ctx)
		require.NoError(t, err)
		require.NotEqual(t, before, after)

		message, err := scene.Repo.RunGitCommandAndGetOutput("log", "-1", "--format=%s")
		require.NoError(t, err)
		require.Equal(t, "add pending work", message)
	})

	t.Run("creates the first commit in an empty repository", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChange("first", "init")
		})

		repo, err := git.OpenRepo(scene.Dir)
		require.NoError(t, err)
		ctx := context.Background()

		require.False(t, repo.HasCommits(ctx))

		require.NoError(t, repo.StageAll(ctx))
		require.NoError(t, repo.Commit(ctx, git.CommitOptions{Message: "init"}))

		require.True(t, repo.HasCommits(ctx))
	})
}

func TestHasCommits(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t, nil)

	repo, err := git.OpenRepo(scene.Dir)
	require.NoError(t, err)

	require.False(t, repo.HasCommits(context.Background()))
}

func TestDefaultCommitMessage(t *testing.T) {
	t.Parallel()

	message := git.DefaultCommitMessage()
	require.True(t, strings.HasPrefix(message, "update "))

	// Timestamp suffix in yyyyMMddHHmmss format
	timestamp := strings.TrimPrefix(message, "update ")
	require.Len(t, timestamp, 14)
}
