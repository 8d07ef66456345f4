//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/gamjagf/gitship/internal/domain/entities"
	"github.com/gamjagf/gitship/internal/domain/repositories"
)

// SpyWorkflowRepository implements repositories.WorkflowRepository as a
// configurable spy.  Configure per-step errors, then inspect the recorded
// steps to verify ordering and halt-on-failure behavior.
type SpyWorkflowRepository struct {
	// --- identity ---
	EngineName string

	// --- Execute ---
	StepErrs map[entities.StepID]error
	// spy: steps executed, in order
	ExecutedSteps []entities.Step
	// spy: directories the steps ran against
	ExecutedDirs []string

	// --- Inspect ---
	State      *entities.RepositoryState
	InspectErr error
}

var _ repositories.WorkflowRepository = (*SpyWorkflowRepository)(nil)

func (r *SpyWorkflowRepository) Name() string {
	if r.EngineName == "" {
		return "spy"
	}
	return r.EngineName
}

func (r *SpyWorkflowRepository) Execute(
	_ context.Context,
	dir string,
	step entities.Step,
) error {
	r.ExecutedSteps = append(r.ExecutedSteps, step)
	r.ExecutedDirs = append(r.ExecutedDirs, dir)
	if r.StepErrs != nil {
		return r.StepErrs[step.ID]
	}
	return nil
}

func (r *SpyWorkflowRepository) Inspect(
	_ context.Context,
	_ string,
) (*entities.RepositoryState, error) {
	if r.InspectErr != nil {
		return nil, r.InspectErr
	}
	if r.State != nil {
		return r.State, nil
	}
	return &entities.RepositoryState{Remotes: map[string]string{}}, nil
}

// ExecutedIDs returns the IDs of the executed steps, in order.
func (r *SpyWorkflowRepository) ExecutedIDs() []entities.StepID {
	ids := make([]entities.StepID, 0, len(r.ExecutedSteps))
	for _, step := range r.ExecutedSteps {
		ids = append(ids, step.ID)
	}
	return ids
}
