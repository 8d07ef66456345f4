package controllers

import (
	"github.com/gamjagf/gitship/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewPublishController); err != nil {
		return err
	}
	if err := container.Provide(NewScriptController); err != nil {
		return err
	}
	if err := container.Provide(NewDoctorController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	publishController *PublishController,
	scriptController *ScriptController,
	doctorController *DoctorController,
) *[]entities.Controller {
	return &[]entities.Controller{
		publishController,
		scriptController,
		doctorController,
	}
}
