package repositories

import "context"

// RemoteRepository abstracts a Git hosting service used to ensure the push
// target exists before publishing.
type RemoteRepository interface {
	// Name returns the provider identifier (e.g. "github").
	Name() string

	// MatchesURL returns true if the given remote URL belongs to this provider.
	MatchesURL(url string) bool

	// EnsureRepository checks that the repository behind url exists on the
	// hosting service and creates it when absent.
	EnsureRepository(ctx context.Context, url string, private bool) error
}
