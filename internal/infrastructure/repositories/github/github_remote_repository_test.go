//go:build unit

package github_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamjagf/gitship/internal/infrastructure/repositories/github"
)

func TestGitHubRemoteRepositoryMatchesURL(t *testing.T) {
	t.Parallel()

	// given
	provider := github.NewRemoteRepository("token")

	tests := []struct {
		name    string
		url     string
		matches bool
	}{
		{"https URL", "https://github.com/gamjagf/gitship.git", true},
		{"ssh URL", "git@github.com:gamjagf/gitship.git", true},
		{"other host", "https://gitlab.com/gamjagf/gitship.git", false},
		{"other host with github.com in the path", "https://gitlab.com/github.com/mirror.git", false},
		{"empty URL", "", false},
	}

	for _, test := range tests {
		t.Run("should match "+test.name, func(t *testing.T) {
			t.Parallel()

			// when
			matches := provider.MatchesURL(test.url)

			// then
			assert.Equal(t, test.matches, matches)
		})
	}
}

func TestGitHubRemoteRepositoryEnsureRepository(t *testing.T) {
	t.Parallel()

	t.Run("should fail for an unparsable remote URL", func(t *testing.T) {
		t.Parallel()

		// given
		provider := github.NewRemoteRepository("token")

		// when
		err := provider.EnsureRepository(t.Context(), "github.com/no-owner", false)

		// then
		require.Error(t, err)
	})
}
