package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gamjagf/gitship/internal/domain/entities"
)

// loadSettings builds Settings from the config file (explicit --config,
// auto-detected, or defaults when none exists) and applies flag overrides.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		if found, err := entities.FindConfigFile(); err == nil {
			configPath = found
		}
	}

	var settings *entities.Settings
	if configPath != "" {
		logger.Infof("Using config file: %s", configPath)
		loaded, err := entities.NewSettings(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		settings = loaded
	} else {
		settings = entities.NewDefaultSettings()
	}

	applyFlagOverrides(cmd, settings)
	return settings, nil
}

// applyFlagOverrides lets CLI flags win over config file values.
func applyFlagOverrides(cmd *cobra.Command, settings *entities.Settings) {
	if v, _ := cmd.Flags().GetString("remote"); v != "" {
		settings.Remote.URL = v
	}
	if v, _ := cmd.Flags().GetString("remote-name"); v != "" {
		settings.Remote.Name = v
	}
	if v, _ := cmd.Flags().GetString("branch"); v != "" {
		settings.Branch = v
	}
	if v, _ := cmd.Flags().GetString("message"); v != "" {
		settings.CommitMessage = v
	}
	if v, _ := cmd.Flags().GetString("engine"); v != "" {
		settings.Engine = v
	}
	if v, _ := cmd.Flags().GetString("token"); v != "" {
		settings.GitHub.Token = v
	}
	if cmd.Flags().Changed("create-remote") {
		v, _ := cmd.Flags().GetBool("create-remote")
		settings.GitHub.CreateRemote = v
	}
	if cmd.Flags().Changed("private") {
		v, _ := cmd.Flags().GetBool("private")
		settings.GitHub.Private = v
	}
}
