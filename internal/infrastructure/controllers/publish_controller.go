package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gamjagf/gitship/internal/domain/commands"
	"github.com/gamjagf/gitship/internal/domain/entities"
)

// PublishController handles the "publish" subcommand (and the root command
// with a path argument).
type PublishController struct {
	command commands.Publish
}

// NewPublishController creates a new PublishController.
func NewPublishController(command commands.Publish) *PublishController {
	return &PublishController{command: command}
}

// GetBind returns the Cobra command metadata for the publish controller.
func (it *PublishController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "publish [path]",
		Short: "Publish a local project to a remote repository",
		Long: `Publish a local project directory to a remote Git repository for
the first time: initialize the repository, stage all files, create the
initial commit, set the branch, register the remote, and push with
upstream tracking.

The steps run strictly in order. The first failing step halts the
sequence and leaves the repository in its last reached state; nothing
is retried or rolled back. Re-running over an already published
directory fails at the commit step when there is nothing to commit.`,
	}
}

// Execute runs the publish workflow.
func (it *PublishController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Fatalf("Publish failed: %v", err)
	}

	if runErr := it.command.Execute(ctx, settings, commands.PublishOptions{
		Dir:     dir,
		DryRun:  dryRun,
		Verbose: verbose,
	}); runErr != nil {
		logger.Fatalf("Publish failed: %v", runErr)
	}
}

// AddFlags adds the publish-specific flags to the given Cobra command.
func (it *PublishController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("remote", "r", "", "Remote repository URL to push to")
	cmd.Flags().String("remote-name", "", "Remote name (default: origin)")
	cmd.Flags().StringP("branch", "b", "", "Branch name to publish (default: main)")
	cmd.Flags().StringP("message", "m", "", "Initial commit message")
	cmd.Flags().String("engine", "", "Workflow engine: exec or native (default: exec)")
	cmd.Flags().Bool("create-remote", false, "Create the hosting-side repository before pushing")
	cmd.Flags().Bool("private", false, "Visibility of a created repository")
}
