//go:build integration

//nolint:tparallel // t.Setenv forbids parallel subtests
package execgit_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamjagf/gitship/internal/domain/entities"
	"github.com/gamjagf/gitship/internal/infrastructure/repositories/execgit"
	"github.com/gamjagf/gitship/test/domain/entitybuilders"
)

// requireGit skips the test when no git binary is on PATH and pins the
// committer identity so commits do not depend on the host configuration.
func requireGit(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	t.Setenv("GIT_AUTHOR_NAME", "Test User")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test User")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_SYSTEM", os.DevNull)
}

// newWorkspace creates a working directory with one file and a bare
// repository to push into, and returns the plan targeting the bare repo.
func newWorkspace(t *testing.T) (string, string, entities.Plan) {
	t.Helper()

	workDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "app.py"), []byte("print('hi')\n"), 0o600))

	bareDir := t.TempDir()
	require.NoError(t, exec.Command("git", "init", "--bare", bareDir).Run())

	settings := entitybuilders.NewSettingsBuilder().
		WithRemoteURL(bareDir).
		BuildSettings()
	return workDir, bareDir, entities.NewPublishPlan(settings)
}

func runPlan(t *testing.T, engine *execgit.ExecWorkflowRepository, dir string, plan entities.Plan) error {
	t.Helper()

	for _, step := range plan {
		if err := engine.Execute(t.Context(), dir, step); err != nil {
			return err
		}
	}
	return nil
}

func TestExecWorkflowRepositoryExecute(t *testing.T) {
	t.Run("should publish a fresh directory end to end", func(t *testing.T) {
		// given
		requireGit(t)
		workDir, bareDir, plan := newWorkspace(t)
		engine := &execgit.ExecWorkflowRepository{}

		// when
		err := runPlan(t, engine, workDir, plan)

		// then
		require.NoError(t, err)

		state, err := engine.Inspect(t.Context(), workDir)
		require.NoError(t, err)
		assert.True(t, state.Initialized)
		assert.Equal(t, "main", state.Branch)
		assert.Equal(t, bareDir, state.Remotes["origin"])
		assert.Equal(t, 1, state.CommitCount)
		assert.Equal(t, "origin/main", state.Upstream)

		output, err := exec.Command(
			"git", "--git-dir", bareDir, "rev-parse", "--verify", "refs/heads/main",
		).Output()
		require.NoError(t, err, "the bare repository should have received main")
		assert.NotEmpty(t, output)
	})

	t.Run("should fail at the commit step on a second run with no changes", func(t *testing.T) {
		// given
		requireGit(t)
		workDir, _, plan := newWorkspace(t)
		engine := &execgit.ExecWorkflowRepository{}
		require.NoError(t, runPlan(t, engine, workDir, plan))

		// when
		initErr := engine.Execute(t.Context(), workDir, plan[0])
		stageErr := engine.Execute(t.Context(), workDir, plan[1])
		commitErr := engine.Execute(t.Context(), workDir, plan[2])

		// then
		require.NoError(t, initErr, "re-init should be a no-op")
		require.NoError(t, stageErr)
		require.Error(t, commitErr)
		assert.Contains(t, commitErr.Error(), "nothing to commit")
	})

	t.Run("should keep the commit and branch when the push fails", func(t *testing.T) {
		// given
		requireGit(t)
		workDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(workDir, "app.py"), []byte("print('hi')\n"), 0o600))
		missingRemote := filepath.Join(t.TempDir(), "missing.git")
		settings := entitybuilders.NewSettingsBuilder().
			WithRemoteURL(missingRemote).
			BuildSettings()
		plan := entities.NewPublishPlan(settings)
		engine := &execgit.ExecWorkflowRepository{}

		// when
		err := runPlan(t, engine, workDir, plan)

		// then
		require.Error(t, err, "pushing to a nonexistent remote must fail")

		state, inspectErr := engine.Inspect(t.Context(), workDir)
		require.NoError(t, inspectErr)
		assert.True(t, state.Initialized)
		assert.Equal(t, "main", state.Branch)
		assert.Equal(t, missingRemote, state.Remotes["origin"])
		assert.Equal(t, 1, state.CommitCount, "the local commit must survive the failed push")
		assert.Empty(t, state.Upstream, "no tracking reference without a successful push")
	})

	t.Run("should fail at the remote step when origin already exists", func(t *testing.T) {
		// given
		requireGit(t)
		workDir, _, plan := newWorkspace(t)
		engine := &execgit.ExecWorkflowRepository{}
		require.NoError(t, engine.Execute(t.Context(), workDir, plan[0]))

		addOther := exec.Command("git", "remote", "add", "origin", "https://github.com/other/place.git")
		addOther.Dir = workDir
		require.NoError(t, addOther.Run())

		// when
		remoteErr := engine.Execute(t.Context(), workDir, plan[4])

		// then
		require.Error(t, remoteErr, "an existing remote must never be overwritten")

		state, err := engine.Inspect(t.Context(), workDir)
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/other/place.git", state.Remotes["origin"])
	})
}

func TestExecWorkflowRepositoryInspect(t *testing.T) {
	t.Run("should report an uninitialized directory", func(t *testing.T) {
		// given
		requireGit(t)
		engine := &execgit.ExecWorkflowRepository{}

		// when
		state, err := engine.Inspect(t.Context(), t.TempDir())

		// then
		require.NoError(t, err)
		assert.False(t, state.Initialized)
		assert.Empty(t, state.Remotes)
	})
}
