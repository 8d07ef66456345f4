package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gamjagf/gitship/internal"
	"github.com/gamjagf/gitship/internal/infrastructure/controllers"
)

// flagsAdder is implemented by controllers that register their own flags.
type flagsAdder interface {
	AddFlags(cmd *cobra.Command)
}

func buildRootCommand(publishController *controllers.PublishController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "gitship [path]",
		Short: "First-publish workflow for local projects",
		Long: `Publish a local project directory to a remote Git repository for
the first time: init, stage everything, commit, set the branch,
register the remote, and push with upstream tracking.

Usage modes:
  gitship .                 Publish the current directory
  gitship /path/to/project  Publish a specific directory
  gitship script            Render the workflow as a shell script
  gitship doctor            Check whether a directory is ready to publish`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if len(args) == 0 {
				return command.Help()
			}
			publishController.Execute(command, args)
			return nil
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().String("token", "",
		"Auth token for the hosting provider (overrides config)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without making changes")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	// Publish flags apply to the root invocation with a path argument too
	publishController.AddFlags(cmd)

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if adder, ok := ctrl.(flagsAdder); ok {
			adder.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	publishController := injectPublishController()
	cobraRoot := buildRootCommand(publishController)

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'gitship': %s", err)
	}
}
