//go:build unit

package commands_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamjagf/gitship/internal/domain/commands"
	"github.com/gamjagf/gitship/internal/domain/entities"
	"github.com/gamjagf/gitship/test/domain/entitybuilders"
)

// gitLines extracts the rendered git invocations from a script.
func gitLines(script string) []string {
	var lines []string
	for _, line := range strings.Split(script, "\n") {
		if strings.HasPrefix(line, "git ") {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestRenderScripts(t *testing.T) {
	t.Parallel()

	t.Run("should render the same git sequence in both flavors", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()
		plan := entities.NewPublishPlan(settings)

		// when
		posix := commands.RenderPosixScript(settings, plan)
		powershell := commands.RenderPowerShellScript(settings, plan)

		// then
		assert.Equal(t, gitLines(posix), gitLines(powershell))
	})

	t.Run("should stop on first failure in the posix flavor", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()
		plan := entities.NewPublishPlan(settings)

		// when
		script := commands.RenderPosixScript(settings, plan)

		// then
		assert.True(t, strings.HasPrefix(script, "#!/bin/sh\n"))
		assert.Contains(t, script, "set -eu\n")
	})

	t.Run("should stop on first failure in the powershell flavor", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()
		plan := entities.NewPublishPlan(settings)

		// when
		script := commands.RenderPowerShellScript(settings, plan)

		// then
		assert.Contains(t, script, "$ErrorActionPreference = 'Stop'")
		assert.Equal(t,
			len(gitLines(script)),
			strings.Count(script, "if ($LASTEXITCODE -ne 0) { exit $LASTEXITCODE }"),
			"every git invocation needs an exit-code check",
		)
	})

	t.Run("should quote the commit message", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().
			WithCommitMessage("Initial commit: Upload sales dashboard project").
			BuildSettings()
		plan := entities.NewPublishPlan(settings)

		// when
		posix := commands.RenderPosixScript(settings, plan)
		powershell := commands.RenderPowerShellScript(settings, plan)

		// then
		assert.Contains(t, posix, "git commit -m 'Initial commit: Upload sales dashboard project'")
		assert.Contains(t, powershell, "git commit -m 'Initial commit: Upload sales dashboard project'")
	})
}

func TestQuoting(t *testing.T) {
	t.Parallel()

	t.Run("should leave plain arguments unquoted", func(t *testing.T) {
		t.Parallel()

		// given
		arg := "https://github.com/myorg/myrepo.git"

		// when / then
		assert.Equal(t, arg, commands.PosixQuote(arg))
		assert.Equal(t, arg, commands.PowerShellQuote(arg))
	})

	t.Run("should escape embedded single quotes", func(t *testing.T) {
		t.Parallel()

		// given
		arg := "it's done"

		// when / then
		assert.Equal(t, `'it'\''s done'`, commands.PosixQuote(arg))
		assert.Equal(t, "'it''s done'", commands.PowerShellQuote(arg))
	})
}

func TestScriptCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should write the script to the output file", func(t *testing.T) {
		t.Parallel()

		// given
		output := filepath.Join(t.TempDir(), "publish.sh")
		cmd := commands.NewScriptCommand()
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		err := cmd.Execute(settings, commands.ScriptOptions{Shell: "posix", Output: output})

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(output)
		require.NoError(t, readErr)
		assert.Contains(t, string(content), "git push -u origin main")
	})

	t.Run("should return error for an unsupported shell", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewScriptCommand()
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		err := cmd.Execute(settings, commands.ScriptOptions{Shell: "fish"})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported shell")
	})

	t.Run("should reject settings without a remote URL", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewScriptCommand()
		settings := entitybuilders.NewSettingsBuilder().WithRemoteURL("").BuildSettings()

		// when
		err := cmd.Execute(settings, commands.ScriptOptions{Shell: "posix"})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "remote.url is required")
	})
}
