package commands

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/gamjagf/gitship/internal/domain/entities"
	infraRepos "github.com/gamjagf/gitship/internal/infrastructure/repositories"
)

// Doctor is the interface for the doctor command.
type Doctor interface {
	Execute(ctx context.Context, settings *entities.Settings, opts DoctorOptions) error
}

// DoctorOptions holds runtime options for the doctor command.
type DoctorOptions struct {
	Dir string
}

// DoctorCommand runs preflight checks for a publish: toolchain presence,
// working directory contents, and repository state that would make a
// publish step fail.  It never mutates the repository.
type DoctorCommand struct {
	engineRegistry *infraRepos.EngineRegistry
}

// NewDoctorCommand creates a new DoctorCommand with the given registry.
func NewDoctorCommand(engineRegistry *infraRepos.EngineRegistry) *DoctorCommand {
	return &DoctorCommand{engineRegistry: engineRegistry}
}

// Execute runs all checks and returns an error when any check fails hard.
func (it *DoctorCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts DoctorOptions,
) error {
	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	var warnings, errors []string

	warnings, errors = it.checkToolchain(ctx, settings, warnings, errors)
	warnings, errors = it.checkWorkingDirectory(dir, warnings, errors)
	warnings, errors = it.checkRepositoryState(ctx, settings, dir, warnings, errors)
	warnings, errors = it.checkRemoteCreation(settings, warnings, errors)

	for _, w := range warnings {
		logger.Warnf("[doctor] %s", w)
	}
	for _, e := range errors {
		logger.Errorf("[doctor] %s", e)
	}

	if len(errors) > 0 {
		return fmt.Errorf("doctor found %d problem(s)", len(errors))
	}

	logger.Infof("[doctor] All checks passed (%d warning(s))", len(warnings))
	return nil
}

// checkToolchain verifies the git binary when the exec engine is selected.
func (it *DoctorCommand) checkToolchain(
	ctx context.Context,
	settings *entities.Settings,
	warnings, errors []string,
) ([]string, []string) {
	output, err := exec.CommandContext(ctx, "git", "version").Output()
	switch {
	case err != nil && settings.Engine == "exec":
		errors = append(errors, "git is not installed or not in PATH (required by the exec engine)")
	case err != nil:
		warnings = append(warnings, "git is not installed or not in PATH (the native engine does not need it)")
	default:
		logger.Infof("[doctor] %s", strings.TrimSpace(string(output)))
	}
	return warnings, errors
}

// checkWorkingDirectory verifies the directory exists and has content to commit.
func (it *DoctorCommand) checkWorkingDirectory(
	dir string,
	warnings, errors []string,
) ([]string, []string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		errors = append(errors, fmt.Sprintf("cannot read directory %s: %v", dir, err))
		return warnings, errors
	}

	hasFiles := false
	for _, entry := range entries {
		if entry.Name() != ".git" {
			hasFiles = true
			break
		}
	}
	if !hasFiles {
		warnings = append(warnings, "directory has no files to commit; the commit step will fail")
	}
	return warnings, errors
}

// checkRepositoryState inspects an existing repository for conditions that
// would halt the publish sequence.
func (it *DoctorCommand) checkRepositoryState(
	ctx context.Context,
	settings *entities.Settings,
	dir string,
	warnings, errors []string,
) ([]string, []string) {
	engine, err := it.engineRegistry.Get(settings.Engine, settings.GitHub.Token)
	if err != nil {
		errors = append(errors, err.Error())
		return warnings, errors
	}

	state, err := engine.Inspect(ctx, dir)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("could not inspect repository: %v", err))
		return warnings, errors
	}

	if !state.Initialized {
		logger.Infof("[doctor] %s is not a repository yet; publish will initialize it", dir)
		return warnings, errors
	}

	if url := state.RemoteURL(settings.Remote.Name); url != "" {
		if settings.Remote.URL != "" && url != settings.Remote.URL {
			errors = append(errors, fmt.Sprintf(
				"remote %q already points at %s; the remote step will fail rather than overwrite it",
				settings.Remote.Name, url,
			))
		} else {
			warnings = append(warnings, fmt.Sprintf(
				"remote %q is already registered; the remote step will fail",
				settings.Remote.Name,
			))
		}
	}

	if state.CommitCount > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"repository already has %d commit(s); the commit step will fail unless there are new changes",
			state.CommitCount,
		))
	}

	return warnings, errors
}

// checkRemoteCreation verifies the token needed for remote repository creation.
func (it *DoctorCommand) checkRemoteCreation(
	settings *entities.Settings,
	warnings, errors []string,
) ([]string, []string) {
	if !settings.GitHub.CreateRemote {
		return warnings, errors
	}
	if settings.GitHub.Token == "" {
		errors = append(errors, "github.create_remote is enabled but no token is configured")
	}
	return warnings, errors
}
