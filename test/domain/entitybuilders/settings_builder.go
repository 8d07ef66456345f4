//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/gamjagf/gitship/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	remoteName    string
	remoteURL     string
	branch        string
	commitMessage string
	engine        string
	token         string
	createRemote  bool
	private       bool
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		remoteName:    entities.DefaultRemoteName,
		remoteURL:     "https://github.com/testorg/testrepo.git",
		branch:        entities.DefaultBranch,
		commitMessage: entities.DefaultCommitMessage,
		engine:        entities.DefaultEngine,
	}
}

// WithRemoteName sets the remote name.
func (b *SettingsBuilder) WithRemoteName(name string) *SettingsBuilder {
	b.remoteName = name
	return b
}

// WithRemoteURL sets the remote URL.
func (b *SettingsBuilder) WithRemoteURL(url string) *SettingsBuilder {
	b.remoteURL = url
	return b
}

// WithBranch sets the branch name.
func (b *SettingsBuilder) WithBranch(branch string) *SettingsBuilder {
	b.branch = branch
	return b
}

// WithCommitMessage sets the commit message.
func (b *SettingsBuilder) WithCommitMessage(message string) *SettingsBuilder {
	b.commitMessage = message
	return b
}

// WithEngine sets the workflow engine.
func (b *SettingsBuilder) WithEngine(engine string) *SettingsBuilder {
	b.engine = engine
	return b
}

// WithToken sets the hosting provider token.
func (b *SettingsBuilder) WithToken(token string) *SettingsBuilder {
	b.token = token
	return b
}

// WithCreateRemote enables remote repository creation.
func (b *SettingsBuilder) WithCreateRemote(createRemote bool) *SettingsBuilder {
	b.createRemote = createRemote
	return b
}

// WithPrivate sets the visibility of a created repository.
func (b *SettingsBuilder) WithPrivate(private bool) *SettingsBuilder {
	b.private = private
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		Remote: entities.RemoteSettings{
			Name: b.remoteName,
			URL:  b.remoteURL,
		},
		Branch:        b.branch,
		CommitMessage: b.commitMessage,
		Engine:        b.engine,
		GitHub: entities.GitHubSettings{
			Token:        b.token,
			CreateRemote: b.createRemote,
			Private:      b.private,
		},
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.remoteName = entities.DefaultRemoteName
	b.remoteURL = "https://github.com/testorg/testrepo.git"
	b.branch = entities.DefaultBranch
	b.commitMessage = entities.DefaultCommitMessage
	b.engine = entities.DefaultEngine
	b.token = ""
	b.createRemote = false
	b.private = false
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		remoteName:    b.remoteName,
		remoteURL:     b.remoteURL,
		branch:        b.branch,
		commitMessage: b.commitMessage,
		engine:        b.engine,
		token:         b.token,
		createRemote:  b.createRemote,
		private:       b.private,
	}
}
