package commands

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/gamjagf/gitship/internal/domain/entities"
)

// Shell flavors supported by the script command.
const (
	ShellPosix      = "posix"
	ShellPowerShell = "powershell"
)

const scriptFileMode = 0o755

// Script is the interface for the script command.
type Script interface {
	Execute(settings *entities.Settings, opts ScriptOptions) error
}

// ScriptOptions holds runtime options for script rendering.
type ScriptOptions struct {
	Shell  string // "posix" or "powershell"
	Output string // file path; "" writes to stdout
}

// ScriptCommand renders the publish plan as a standalone shell script.
// Both flavors carry the same git invocations in the same order, so they
// produce identical repository end-states; only the console dressing and
// the host error-stopping idiom differ.
type ScriptCommand struct{}

// NewScriptCommand creates a new ScriptCommand.
func NewScriptCommand() *ScriptCommand {
	return &ScriptCommand{}
}

// Execute renders the script for the requested shell flavor.
func (it *ScriptCommand) Execute(settings *entities.Settings, opts ScriptOptions) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	plan := entities.NewPublishPlan(settings)

	var script string
	switch opts.Shell {
	case ShellPosix, "":
		script = renderPosixScript(settings, plan)
	case ShellPowerShell:
		script = renderPowerShellScript(settings, plan)
	default:
		return fmt.Errorf("unsupported shell %q (want %q or %q)", opts.Shell, ShellPosix, ShellPowerShell)
	}

	if opts.Output == "" {
		_, err := os.Stdout.WriteString(script)
		return err
	}

	if err := os.WriteFile(opts.Output, []byte(script), scriptFileMode); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	logger.Infof("[script] Wrote %s script to %s", shellName(opts.Shell), opts.Output)
	return nil
}

func shellName(shell string) string {
	if shell == ShellPowerShell {
		return "PowerShell"
	}
	return "POSIX"
}

// renderPosixScript builds a /bin/sh script for the plan.  The shell stops
// on the first failing command via set -e, matching the sequential
// halt-on-failure contract of the publish workflow.
func renderPosixScript(settings *entities.Settings, plan entities.Plan) string {
	var sb strings.Builder

	sb.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&sb, "# Publishes this directory to %s\n", settings.Remote.URL)
	sb.WriteString("set -eu\n")

	for _, step := range plan {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "echo %s\n", posixQuote(step.Description))
		sb.WriteString("git")
		for _, arg := range step.GitArgs {
			sb.WriteString(" ")
			sb.WriteString(posixQuote(arg))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderPowerShellScript builds a PowerShell script for the plan.
// PowerShell does not stop on a failing native command by itself, so every
// git invocation is followed by an explicit exit-code check.
func renderPowerShellScript(settings *entities.Settings, plan entities.Plan) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Publishes this directory to %s\n", settings.Remote.URL)
	sb.WriteString("$ErrorActionPreference = 'Stop'\n")

	for _, step := range plan {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "Write-Host %s\n", powerShellQuote(step.Description))
		sb.WriteString("git")
		for _, arg := range step.GitArgs {
			sb.WriteString(" ")
			sb.WriteString(powerShellQuote(arg))
		}
		sb.WriteString("\n")
		sb.WriteString("if ($LASTEXITCODE -ne 0) { exit $LASTEXITCODE }\n")
	}

	return sb.String()
}

// plainArgPattern matches arguments that need no quoting in either shell.
var plainArgPattern = regexp.MustCompile(`^[A-Za-z0-9@%+=:,./_-]+$`)

func posixQuote(s string) string {
	if plainArgPattern.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func powerShellQuote(s string) string {
	if plainArgPattern.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
