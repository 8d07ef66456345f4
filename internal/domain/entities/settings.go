package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Default values for the publish workflow.  The commit message default is
// the literal used by the original publish scripts.
const (
	DefaultRemoteName    = "origin"
	DefaultBranch        = "main"
	DefaultCommitMessage = "Initial commit: Upload sales dashboard project"
	DefaultEngine        = "exec"
)

// Settings is the top-level configuration for gitship.
type Settings struct {
	Remote        RemoteSettings `yaml:"remote"`
	Branch        string         `yaml:"branch"`
	CommitMessage string         `yaml:"commit_message"`
	Engine        string         `yaml:"engine"` // "exec" or "native"
	GitHub        GitHubSettings `yaml:"github"`
}

// RemoteSettings describes the push target.
type RemoteSettings struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// GitHubSettings holds optional GitHub API access for remote repository creation.
type GitHubSettings struct {
	Token        string `yaml:"token"`         // Inline, ${ENV_VAR}, or file path
	CreateRemote bool   `yaml:"create_remote"` // Create the GitHub repository before pushing
	Private      bool   `yaml:"private"`       // Visibility of a created repository
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns settings populated with defaults only, for
// invocations configured entirely through flags.
func NewDefaultSettings() *Settings {
	s := &Settings{}
	s.applyDefaults()
	return s
}

// NewSettings reads and parses a configuration file, expanding environment
// variables, resolving the token indirection, and applying defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Remote.URL = expandEnv(settings.Remote.URL)
	settings.GitHub.Token = resolveToken(settings.GitHub.Token)
	settings.applyDefaults()

	return &settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".gitship.yaml",
		".gitship.yml",
		"gitship.yaml",
		"gitship.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Validate checks the values required to build a publish plan.
func (s *Settings) Validate() error {
	if s.Remote.URL == "" {
		return errors.New("remote.url is required (set it in the config file or with --remote)")
	}
	if s.Engine != "exec" && s.Engine != "native" {
		return fmt.Errorf("engine must be %q or %q, got %q", "exec", "native", s.Engine)
	}
	return nil
}

func (s *Settings) applyDefaults() {
	if s.Remote.Name == "" {
		s.Remote.Name = DefaultRemoteName
	}
	if s.Branch == "" {
		s.Branch = DefaultBranch
	}
	if s.CommitMessage == "" {
		s.CommitMessage = DefaultCommitMessage
	}
	if s.Engine == "" {
		s.Engine = DefaultEngine
	}
}

// expandEnv expands ${ENV_VAR} references in the given string.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := expandEnv(raw)

	// If the resolved value is a path to an existing file, read the token from it
	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}
