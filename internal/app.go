package internal

import (
	"github.com/gamjagf/gitship/internal/domain/entities"
)

// AppInternal aggregates all CLI controllers for subcommand registration.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the application context from the controller slice.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns all registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	if it.controllers == nil {
		return nil
	}
	return *it.controllers
}
