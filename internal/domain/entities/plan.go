package entities

import "fmt"

// NewPublishPlan builds the first-publish step sequence for the given
// settings: init -> stage -> commit -> branch -> remote -> push.
//
// The plan leaves partial state behind on failure: if the push fails the
// local commit, branch, and remote registration all remain in place.
func NewPublishPlan(settings *Settings) Plan {
	return Plan{
		{
			ID:          StepInit,
			Description: "Initializing repository...",
			GitArgs:     []string{"init"},
		},
		{
			ID:          StepStage,
			Description: "Staging project files...",
			GitArgs:     []string{"add", "-A"},
		},
		{
			ID:          StepCommit,
			Description: "Creating initial commit...",
			GitArgs:     []string{"commit", "-m", settings.CommitMessage},
		},
		{
			ID:          StepBranch,
			Description: fmt.Sprintf("Setting branch to %s...", settings.Branch),
			GitArgs:     []string{"branch", "-M", settings.Branch},
		},
		{
			ID:          StepRemote,
			Description: fmt.Sprintf("Registering remote %s...", settings.Remote.Name),
			GitArgs:     []string{"remote", "add", settings.Remote.Name, settings.Remote.URL},
		},
		{
			ID:          StepPush,
			Description: fmt.Sprintf("Pushing %s to %s...", settings.Branch, settings.Remote.Name),
			GitArgs:     []string{"push", "-u", settings.Remote.Name, settings.Branch},
		},
	}
}
