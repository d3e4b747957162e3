package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shipit.dev/shipit/testhelpers"
)

func TestDoctorCommand(t *testing.T) {
	t.Parallel()

	t.Run("passes offline on a healthy repository", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		output, err := runShipit(t, scene.Dir, "doctor", "--offline")
		require.NoError(t, err, "doctor failed: %s", output)
		require.Contains(t, output, "git version")
	})

	t.Run("fails without a remote or fallback url", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		output, err := runShipit(t, scene.Dir, "doctor", "--offline")
		require.Error(t, err)
		require.Contains(t, output, "run 'shipit init'")
	})
}
