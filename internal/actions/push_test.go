package actions_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"shipit.dev/shipit/internal/actions"
	"shipit.dev/shipit/internal/config"
	shipiterrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/tui"
	"shipit.dev/shipit/testhelpers"
)

func TestPushAction(t *testing.T) {
	t.Parallel()

	t.Run("end to end from an empty repository", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChange("hello", "init")
		})

		bareDir, err := scene.Repo.CreateBareRepo("origin")
		require.NoError(t, err)

		repo, err := git.OpenRepo(scene.Dir)
		require.NoError(t, err)

		outcome, err := actions.PushAction(context.Background(), repo, actions.PushOptions{
			URL:     bareDir,
			Message: "init",
			Commit:  true,
		}, tui.NewSplog())
		require.NoError(t, err)

		require.Equal(t, "origin", outcome.Remote)
		require.Equal(t, "main", outcome.Branch)
		require.Equal(t, bareDir, outcome.URL)
		require.True(t, outcome.RemoteCreated)
		require.True(t, outcome.Committed)
		require.NotEmpty(t, outcome.CommitSHA)

		// Remote now has exactly one commit on main
		count, err := testhelpers.RemoteCommitCount(bareDir, "main")
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("clean tree produces no commit", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		bareDir, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		repo, err := git.OpenRepo(scene.Dir)
		require.NoError(t, err)

		before, err := scene.Repo.GetRevision("HEAD")
		require.NoError(t, err)

		outcome, err := actions.PushAction(context.Background(), repo, actions.PushOptions{
			Commit: true,
		}, tui.NewSplog())
		require.NoError(t, err)

		require.False(t, outcome.Committed)
		require.False(t, outcome.RemoteCreated)
		require.Equal(t, bareDir, outcome.URL)

		after, err := scene.Repo.GetRevision("HEAD")
		require.NoError(t, err)
		require.Equal(t, before, after)
	})

	t.Run("dirty tree commits exactly once including untracked files", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CreateChangeAndCommit("initial", "init"); err != nil {
				return err
			}
			if err := s.Repo.CreateChange("modified", "init"); err != nil {
				return err
			}
			return s.Repo.CreateChange("brand new", "extra")
		})

		bareDir, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		repo, err := git.OpenRepo(scene.Dir)
		require.NoError(t, err)

		outcome, err := actions.PushAction(context.Background(), repo, actions.PushOptions{
			Message: "pending work",
			Commit:  true,
		}, tui.NewSplog())
		require.NoError(t, err)
		require.True(t, outcome.Committed)

		// One new commit on top of the initial one, containing everything
		count, err := testhelpers.RemoteCommitCount(bareDir, "main")
		require.NoError(t, err)
		require.Equal(t, 2, count)

		clean, err := repo.IsWorkingTreeClean(context.Background())
		require.NoError(t, err)
		require.True(t, clean)

		message, err := scene.Repo.RunGitCommandAndGetOutput("log", "-1", "--format=%s")
		require.NoError(t, err)
		require.Equal(t, "pending work", message)
	})

	t.Run("commit step can be skipped", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CreateChangeAndCommit("initial", "init"); err != nil {
				return err
			}
			return s.Repo.CreateChange("left behind", "extra")
		})

		bareDir, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		repo, err := git.OpenRepo(scene.Dir)
		require.NoError(t, err)

		outcome, err := actions.PushAction(context.Background(), repo, actions.PushOptions{
			Commit: false,
		}, tui.NewSplog())
		require.NoError(t, err)
		require.False(t, outcome.Committed)

		// Only the initial commit made it to the remote
		count, err := testhelpers.RemoteCommitCount(bareDir, "main")
		require.NoError(t, err)
		require.Equal(t, 1, count)

		// The pending change is still in the working tree
		clean, err := repo.IsWorkingTreeClean(context.Background())
		require.NoError(t, err)
		require.False(t, clean)
	})

	t.Run("uses the repository configuration", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CreateChangeAndCommit("initial", "init"); err != nil {
				return err
			}
			return s.Repo.RunGitCommand("branch", "-m", "trunk")
		})

		bareDir, err := scene.Repo.CreateBareRepo("upstream")
		require.NoError(t, err)

		err = config.WriteRepoConfig(filepath.Join(scene.Dir, ".git"), &config.RepoConfig{
			Remote: "upstream",
			Branch: "trunk",
			URL:    bareDir,
		})
		require.NoError(t, err)

		repo, err := git.OpenRepo(scene.Dir)
		require.NoError(t, err)

		outcome, err := actions.PushAction(context.Background(), repo, actions.PushOptions{
			Commit: true,
		}, tui.NewSplog())
		require.NoError(t, err)

		require.Equal(t, "upstream", outcome.Remote)
		require.Equal(t, "trunk", outcome.Branch)
		require.True(t, outcome.RemoteCreated)

		count, err := testhelpers.RemoteCommitCount(bareDir, "trunk")
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("fails when the remote is missing and no URL is configured", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		repo, err := git.OpenRepo(scene.Dir)
		require.NoError(t, err)

		_, err = actions.PushAction(context.Background(), repo, actions.PushOptions{
			Commit: true,
		}, tui.NewSplog())
		require.ErrorIs(t, err, shipiterrors.ErrNoRemoteURL)
	})

	t.Run("fails on a remote name conflict", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CreateChangeAndCommit("initial", "init"); err != nil {
				return err
			}
			return s.Repo.RunGitCommand("remote", "add", "origin", "https://example.com/user/project.git")
		})

		repo, err := git.OpenRepo(scene.Dir)
		require.NoError(t, err)

		_, err = actions.PushAction(context.Background(), repo, actions.PushOptions{
			URL:    "https://example.com/other/project.git",
			Commit: true,
		}, tui.NewSplog())
		require.ErrorIs(t, err, shipiterrors.ErrRemoteExists)
	})

	t.Run("fails when the target branch does not exist", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		repo, err := git.OpenRepo(scene.Dir)
		require.NoError(t, err)

		_, err = actions.PushAction(context.Background(), repo, actions.PushOptions{
			Branch: "release",
			Commit: true,
		}, tui.NewSplog())
		require.Error(t, err)
		require.Contains(t, err.Error(), "release")
	})

	t.Run("fails when there is nothing to push", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)

		bareDir, err := scene.Repo.CreateBareRepo("origin")
		require.NoError(t, err)

		repo, err := git.OpenRepo(scene.Dir)
		require.NoError(t, err)

		_, err = actions.PushAction(context.Background(), repo, actions.PushOptions{
			URL:    bareDir,
			Commit: false,
		}, tui.NewSplog())
		require.Error(t, err)
		require.Contains(t, err.Error(), "nothing to push")
	})
}

func TestPushActionInteractiveCommitGate(t *testing.T) {
	t.Setenv("SHIPIT_TEST_NO_INTERACTIVE", "1")

	t.Run("disabled commit step never prompts", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CreateChangeAndCommit("initial", "init"); err != nil {
				return err
			}
			return s.Repo.CreateChange("pending", "feature")
		})

		bareDir, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		repo, err := git.OpenRepo(scene.Dir)
		require.NoError(t, err)

		outcome, err := actions.PushAction(context.Background(), repo, actions.PushOptions{
			Commit:      false,
			Interactive: true,
		}, tui.NewSplog())
		require.NoError(t, err)
		require.False(t, outcome.Committed)

		count, err := testhelpers.RemoteCommitCount(bareDir, "main")
		require.NoError(t, err)
		require.Equal(t, 1, count)

		clean, err := repo.IsWorkingTreeClean(context.Background())
		require.NoError(t, err)
		require.False(t, clean)
	})

	t.Run("allowed commit step asks first", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CreateChangeAndCommit("initial", "init"); err != nil {
				return err
			}
			return s.Repo.CreateChange("pending", "feature")
		})

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		repo, err := git.OpenRepo(scene.Dir)
		require.NoError(t, err)

		_, err = actions.PushAction(context.Background(), repo, actions.PushOptions{
			Commit:      true,
			Interactive: true,
		}, tui.NewSplog())
		require.ErrorIs(t, err, tui.ErrInteractiveDisabled)
	})
}
