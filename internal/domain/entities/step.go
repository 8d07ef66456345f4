package entities

// StepID identifies one step of the publish workflow.
type StepID string

const (
	StepInit   StepID = "init"
	StepStage  StepID = "stage"
	StepCommit StepID = "commit"
	StepBranch StepID = "branch"
	StepRemote StepID = "remote"
	StepPush   StepID = "push"
)

// Step is one abstract command of the publish workflow.  GitArgs are the
// arguments passed to the git executable (without the leading "git"); engines
// that do not shell out interpret the ID instead.
type Step struct {
	ID          StepID
	Description string
	GitArgs     []string
}

// Plan is the ordered sequence of steps executed by the publish workflow.
// Execution is strictly sequential: each step runs only after the previous
// one succeeded, and the first failure halts the remainder of the plan.
type Plan []Step
