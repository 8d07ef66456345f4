package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	logger "github.com/sirupsen/logrus"

	"github.com/gamjagf/gitship/internal/domain/entities"
	"github.com/gamjagf/gitship/internal/domain/repositories"
	infraRepos "github.com/gamjagf/gitship/internal/infrastructure/repositories"
)

// Publish is the interface for the publish command.
type Publish interface {
	Execute(ctx context.Context, settings *entities.Settings, opts PublishOptions) error
}

// PublishOptions holds runtime options for a single publish run.
type PublishOptions struct {
	Dir     string
	DryRun  bool
	Verbose bool
}

// spinnerInterval is the frame rate of the push spinner.
const spinnerInterval = 100 * time.Millisecond

// PublishCommand runs the first-publish workflow: init the repository,
// stage everything, commit, set the branch, register the remote, and push.
// Steps run strictly in order and the first failure halts the sequence,
// leaving all previously applied repository mutations in place.
type PublishCommand struct {
	engineRegistry *infraRepos.EngineRegistry
	remoteRegistry *infraRepos.RemoteRegistry
}

// NewPublishCommand creates a new PublishCommand with the given registries.
func NewPublishCommand(
	engineRegistry *infraRepos.EngineRegistry,
	remoteRegistry *infraRepos.RemoteRegistry,
) *PublishCommand {
	return &PublishCommand{
		engineRegistry: engineRegistry,
		remoteRegistry: remoteRegistry,
	}
}

// Execute is the entry point for the publish workflow.
func (it *PublishCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts PublishOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if err := settings.Validate(); err != nil {
		return err
	}

	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	engine, err := it.engineRegistry.Get(settings.Engine, settings.GitHub.Token)
	if err != nil {
		return err
	}
	logger.Debugf("[publish] Using engine: %s", engine.Name())

	plan := entities.NewPublishPlan(settings)

	if opts.DryRun {
		for _, step := range plan {
			logger.Infof("[publish] [DRY RUN] Would run: git %s", joinArgs(step.GitArgs))
		}
		return nil
	}

	if settings.GitHub.CreateRemote {
		if ensureErr := it.ensureRemote(ctx, settings); ensureErr != nil {
			return ensureErr
		}
	}

	banner := color.New(color.FgCyan, color.Bold)

	for _, step := range plan {
		banner.Fprintf(os.Stdout, "==> %s\n", step.Description)
		logger.Debugf("[publish] git %s", joinArgs(step.GitArgs))

		if runErr := it.runStep(ctx, engine, dir, step); runErr != nil {
			return fmt.Errorf("%s step failed: %w", step.ID, runErr)
		}
	}

	logger.Infof(
		"[publish] Published branch %q to %s (%s)",
		settings.Branch, settings.Remote.Name, settings.Remote.URL,
	)
	return nil
}

// runStep executes one step, wrapping the network-bound push in a spinner.
func (it *PublishCommand) runStep(
	ctx context.Context,
	engine repositories.WorkflowRepository,
	dir string,
	step entities.Step,
) error {
	if step.ID != entities.StepPush {
		return engine.Execute(ctx, dir, step)
	}

	s := spinner.New(spinner.CharSets[14], spinnerInterval)
	s.Suffix = " Pushing..."
	s.Start()
	err := engine.Execute(ctx, dir, step)
	s.Stop()
	return err
}

// ensureRemote creates the hosting-side repository when a provider matches
// the remote URL.
func (it *PublishCommand) ensureRemote(ctx context.Context, settings *entities.Settings) error {
	provider, err := it.remoteRegistry.ForURL(settings.Remote.URL, settings.GitHub.Token)
	if err != nil {
		return fmt.Errorf("cannot create remote repository: %w", err)
	}

	logger.Infof("[publish] Ensuring %s repository exists...", provider.Name())

	if ensureErr := provider.EnsureRepository(
		ctx, settings.Remote.URL, settings.GitHub.Private,
	); ensureErr != nil {
		return fmt.Errorf("failed to ensure remote repository: %w", ensureErr)
	}
	return nil
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
