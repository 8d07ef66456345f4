package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gamjagf/gitship/internal/domain/commands"
	"github.com/gamjagf/gitship/internal/domain/entities"
)

// DoctorController handles the "doctor" subcommand.
type DoctorController struct {
	command commands.Doctor
}

// NewDoctorController creates a new DoctorController.
func NewDoctorController(command commands.Doctor) *DoctorController {
	return &DoctorController{command: command}
}

// GetBind returns the Cobra command metadata for the doctor controller.
func (it *DoctorController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "doctor [path]",
		Short: "Check whether a directory is ready to publish",
		Long: `Run preflight checks without touching the repository: git binary
availability, working directory contents, existing repository state
that would make a publish step fail, and remote-creation credentials.`,
	}
}

// Execute runs the preflight checks.
func (it *DoctorController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Fatalf("Doctor failed: %v", err)
	}

	if runErr := it.command.Execute(ctx, settings, commands.DoctorOptions{
		Dir: dir,
	}); runErr != nil {
		logger.Fatalf("Doctor failed: %v", runErr)
	}
}

// AddFlags adds the doctor-specific flags to the given Cobra command.
func (it *DoctorController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("remote", "r", "", "Remote repository URL to check against")
	cmd.Flags().String("remote-name", "", "Remote name (default: origin)")
	cmd.Flags().String("engine", "", "Workflow engine: exec or native (default: exec)")
}
