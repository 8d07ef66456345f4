package repositories

import (
	"context"

	"github.com/gamjagf/gitship/internal/domain/entities"
)

// WorkflowRepository abstracts an execution engine for publish plan steps.
// Implementations must preserve the underlying tool's failure semantics:
// a step error is returned as-is (wrapped), never retried or compensated.
type WorkflowRepository interface {
	// Name returns the engine identifier (e.g. "exec", "native").
	Name() string

	// Execute runs a single plan step against the repository in dir.
	Execute(ctx context.Context, dir string, step entities.Step) error

	// Inspect reports the current repository state of dir.  A directory
	// that is not a repository yields a state with Initialized == false.
	Inspect(ctx context.Context, dir string) (*entities.RepositoryState, error)
}
