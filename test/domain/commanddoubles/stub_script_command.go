//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/gamjagf/gitship/internal/domain/commands"
	"github.com/gamjagf/gitship/internal/domain/entities"
)

// StubScriptCommand is a stub implementation of commands.Script.
type StubScriptCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.ScriptOptions
}

var _ commands.Script = (*StubScriptCommand)(nil)

func (s *StubScriptCommand) Execute(
	settings *entities.Settings,
	opts commands.ScriptOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
