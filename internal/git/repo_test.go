package git_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	shipiterrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/testhelpers"
)

func TestOpenRepo(t *testing.T) {
	t.Parallel()

	t.Run("finds the repository root from a subdirectory", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		subDir := filepath.Join(scene.Dir, "nested", "deeper")
		require.NoError(t, os.MkdirAll(subDir, 0750))

		repo, err := git.OpenRepo(subDir)
		require.NoError(t, err)

		// Resolve symlinks so the comparison works on systems where the
		// temp dir is itself a symlink
		wantRoot, err := filepath.EvalSymlinks(scene.Dir)
		require.NoError(t, err)
		gotRoot, err := filepath.EvalSymlinks(repo.Root())
		require.NoError(t, err)
		require.Equal(t, wantRoot, gotRoot)
	})

	t.Run("rejects directories outside a repository", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		_, err := git.OpenRepo(dir)
		require.ErrorIs(t, err, shipiterrors.ErrNotARepository)
	})
}

func TestCurrentBranch(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := s.Repo.CreateChangeAndCommit("initial", "init"); err != nil {
			return err
		}
		return s.Repo.CreateAndCheckoutBranch("feature")
	})

	repo, err := git.OpenRepo(scene.Dir)
	require.NoError(t, err)

	branch, err := repo.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "feature", branch)
}

func TestBranchExists(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("initial", "init")
	})

	repo, err := git.OpenRepo(scene.Dir)
	require.NoError(t, err)

	exists, err := repo.BranchExists("main")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.BranchExists("missing")
	require.NoError(t, err)
	require.False(t, exists)
}
