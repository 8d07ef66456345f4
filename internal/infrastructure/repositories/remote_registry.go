package repositories

import (
	"fmt"

	domainRepos "github.com/gamjagf/gitship/internal/domain/repositories"
)

// RemoteFactory is a constructor function that creates a RemoteRepository
// given an auth token.
type RemoteFactory func(token string) domainRepos.RemoteRepository

// RemoteRegistry manages all registered hosting provider implementations.
type RemoteRegistry struct {
	factories []RemoteFactory
}

// NewRemoteRegistry creates an empty remote registry.
func NewRemoteRegistry() *RemoteRegistry {
	return &RemoteRegistry{}
}

// Register adds a hosting provider factory.
func (r *RemoteRegistry) Register(factory RemoteFactory) {
	r.factories = append(r.factories, factory)
}

// ForURL returns a configured provider for the first factory whose provider
// recognizes the given remote URL.
func (r *RemoteRegistry) ForURL(url, token string) (domainRepos.RemoteRepository, error) {
	for _, factory := range r.factories {
		provider := factory(token)
		if provider.MatchesURL(url) {
			return provider, nil
		}
	}
	return nil, fmt.Errorf("no hosting provider matches remote URL %q", url)
}
