package repositories

import (
	"fmt"

	domainRepos "github.com/gamjagf/gitship/internal/domain/repositories"
)

// EngineFactory is a constructor function that creates a WorkflowRepository
// given an auth token.  Engines that rely on ambient credentials (system
// git) ignore the token.
type EngineFactory func(token string) domainRepos.WorkflowRepository

// EngineRegistry manages all registered workflow engine implementations.
type EngineRegistry struct {
	engines map[string]EngineFactory
}

// NewEngineRegistry creates an empty engine registry.
func NewEngineRegistry() *EngineRegistry {
	return &EngineRegistry{
		engines: make(map[string]EngineFactory),
	}
}

// Register adds an engine factory under the given name (e.g. "exec").
func (r *EngineRegistry) Register(name string, factory EngineFactory) {
	r.engines[name] = factory
}

// Get returns a configured engine instance for the given name and token.
func (r *EngineRegistry) Get(name, token string) (domainRepos.WorkflowRepository, error) {
	factory, ok := r.engines[name]
	if !ok {
		return nil, fmt.Errorf("unknown engine: %q", name)
	}
	return factory(token), nil
}

// Names returns the list of registered engine names.
func (r *EngineRegistry) Names() []string {
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	return names
}
