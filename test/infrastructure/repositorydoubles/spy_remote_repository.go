//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/gamjagf/gitship/internal/domain/repositories"
)

// SpyRemoteRepository implements repositories.RemoteRepository as a
// configurable spy.
type SpyRemoteRepository struct {
	// --- identity ---
	ProviderName string

	// --- MatchesURL ---
	Matches bool

	// --- EnsureRepository ---
	EnsureErr error
	// spy: URLs that were ensured
	EnsuredURLs []string
	// spy: visibility flags received
	EnsuredPrivate []bool
}

var _ repositories.RemoteRepository = (*SpyRemoteRepository)(nil)

func (p *SpyRemoteRepository) Name() string {
	if p.ProviderName == "" {
		return "spy"
	}
	return p.ProviderName
}

func (p *SpyRemoteRepository) MatchesURL(_ string) bool { return p.Matches }

func (p *SpyRemoteRepository) EnsureRepository(
	_ context.Context,
	url string,
	private bool,
) error {
	p.EnsuredURLs = append(p.EnsuredURLs, url)
	p.EnsuredPrivate = append(p.EnsuredPrivate, private)
	return p.EnsureErr
}
