package repositories

import (
	"go.uber.org/dig"

	"github.com/gamjagf/gitship/internal/infrastructure/repositories/execgit"
	ghRepo "github.com/gamjagf/gitship/internal/infrastructure/repositories/github"
	"github.com/gamjagf/gitship/internal/infrastructure/repositories/nativegit"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register engine registry with all workflow engine factories
	if err := container.Provide(func() *EngineRegistry {
		reg := NewEngineRegistry()
		reg.Register("exec", execgit.NewWorkflowRepository)
		reg.Register("native", nativegit.NewWorkflowRepository)
		return reg
	}); err != nil {
		return err
	}

	// Register remote registry with all hosting provider factories
	if err := container.Provide(func() *RemoteRegistry {
		reg := NewRemoteRegistry()
		reg.Register(ghRepo.NewRemoteRepository)
		return reg
	}); err != nil {
		return err
	}

	return nil
}
