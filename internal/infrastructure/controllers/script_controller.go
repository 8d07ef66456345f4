package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gamjagf/gitship/internal/domain/commands"
	"github.com/gamjagf/gitship/internal/domain/entities"
)

// ScriptController handles the "script" subcommand.
type ScriptController struct {
	command commands.Script
}

// NewScriptController creates a new ScriptController.
func NewScriptController(command commands.Script) *ScriptController {
	return &ScriptController{command: command}
}

// GetBind returns the Cobra command metadata for the script controller.
func (it *ScriptController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "script",
		Short: "Render the publish workflow as a standalone shell script",
		Long: `Render the publish step sequence as a standalone script for a POSIX
shell or for PowerShell.

Both flavors run the same git commands in the same order, so they
produce identical repository end-states; only the console output
formatting differs.`,
	}
}

// Execute renders the script.
func (it *ScriptController) Execute(cmd *cobra.Command, _ []string) {
	shell, _ := cmd.Flags().GetString("shell")
	output, _ := cmd.Flags().GetString("output")

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Fatalf("Script rendering failed: %v", err)
	}

	if runErr := it.command.Execute(settings, commands.ScriptOptions{
		Shell:  shell,
		Output: output,
	}); runErr != nil {
		logger.Fatalf("Script rendering failed: %v", runErr)
	}
}

// AddFlags adds the script-specific flags to the given Cobra command.
func (it *ScriptController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("shell", "posix", "Shell flavor: posix or powershell")
	cmd.Flags().StringP("output", "o", "", "Write the script to a file instead of stdout")
	cmd.Flags().StringP("remote", "r", "", "Remote repository URL to push to")
	cmd.Flags().String("remote-name", "", "Remote name (default: origin)")
	cmd.Flags().StringP("branch", "b", "", "Branch name to publish (default: main)")
	cmd.Flags().StringP("message", "m", "", "Initial commit message")
}
