//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainRepos "github.com/gamjagf/gitship/internal/domain/repositories"
	"github.com/gamjagf/gitship/internal/infrastructure/repositories"
	"github.com/gamjagf/gitship/test/infrastructure/repositorydoubles"
)

func TestEngineRegistryGet(t *testing.T) {
	t.Parallel()

	t.Run("should return a configured engine for a registered name", func(t *testing.T) {
		t.Parallel()

		// given
		var receivedToken string
		registry := repositories.NewEngineRegistry()
		registry.Register("exec", func(token string) domainRepos.WorkflowRepository {
			receivedToken = token
			return &repositorydoubles.SpyWorkflowRepository{EngineName: "exec"}
		})

		// when
		engine, err := registry.Get("exec", "secret-token")

		// then
		require.NoError(t, err)
		assert.Equal(t, "exec", engine.Name())
		assert.Equal(t, "secret-token", receivedToken)
	})

	t.Run("should fail for an unknown engine name", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewEngineRegistry()

		// when
		engine, err := registry.Get("subversion", "")

		// then
		require.Error(t, err)
		assert.Nil(t, engine)
		assert.Contains(t, err.Error(), "unknown engine")
	})
}

func TestEngineRegistryNames(t *testing.T) {
	t.Parallel()

	// given
	registry := repositories.NewEngineRegistry()
	registry.Register("exec", func(_ string) domainRepos.WorkflowRepository {
		return &repositorydoubles.SpyWorkflowRepository{EngineName: "exec"}
	})
	registry.Register("native", func(_ string) domainRepos.WorkflowRepository {
		return &repositorydoubles.SpyWorkflowRepository{EngineName: "native"}
	})

	// when
	names := registry.Names()

	// then
	assert.ElementsMatch(t, []string{"exec", "native"}, names)
}
