// Package execgit runs publish plan steps by shelling out to the system git
// binary, so every step inherits git's own failure semantics and messages.
package execgit

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/gamjagf/gitship/internal/domain/entities"
	"github.com/gamjagf/gitship/internal/domain/repositories"
)

const engineName = "exec"

// ExecWorkflowRepository implements repositories.WorkflowRepository with
// synchronous git subprocess invocations.
type ExecWorkflowRepository struct{}

var _ repositories.WorkflowRepository = (*ExecWorkflowRepository)(nil)

// NewWorkflowRepository creates a new exec-based engine.  The token is
// ignored: the system git binary authenticates with the user's own
// credential configuration.
func NewWorkflowRepository(_ string) repositories.WorkflowRepository {
	return &ExecWorkflowRepository{}
}

func (r *ExecWorkflowRepository) Name() string { return engineName }

// Execute runs the step's git invocation in dir.  The step's combined
// output is included in the returned error so the underlying tool's
// message reaches the user untranslated.
func (r *ExecWorkflowRepository) Execute(
	ctx context.Context,
	dir string,
	step entities.Step,
) error {
	output, err := r.run(ctx, dir, step.GitArgs...)
	if err != nil {
		return err
	}
	if output != "" {
		logger.Debugf("[exec] git %s:\n%s", strings.Join(step.GitArgs, " "), output)
	}
	return nil
}

// Inspect reports the repository state of dir using plumbing queries.
func (r *ExecWorkflowRepository) Inspect(
	ctx context.Context,
	dir string,
) (*entities.RepositoryState, error) {
	state := &entities.RepositoryState{Remotes: map[string]string{}}

	if _, err := r.run(ctx, dir, "rev-parse", "--git-dir"); err != nil {
		return state, nil //nolint:nilerr // not a repository is a valid state
	}
	state.Initialized = true

	if branch, err := r.run(ctx, dir, "symbolic-ref", "--short", "HEAD"); err == nil {
		state.Branch = branch
	}

	if names, err := r.run(ctx, dir, "remote"); err == nil && names != "" {
		for _, name := range strings.Split(names, "\n") {
			if url, urlErr := r.run(ctx, dir, "remote", "get-url", name); urlErr == nil {
				state.Remotes[name] = url
			}
		}
	}

	if count, err := r.run(ctx, dir, "rev-list", "--count", "HEAD"); err == nil {
		if n, convErr := strconv.Atoi(count); convErr == nil {
			state.CommitCount = n
		}
	}

	if upstream, err := r.run(
		ctx, dir, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{upstream}",
	); err == nil {
		state.Upstream = upstream
	}

	return state, nil
}

// run executes a git command in dir and returns its trimmed stdout.
func (r *ExecWorkflowRepository) run(
	ctx context.Context,
	dir string,
	args ...string,
) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		combined := strings.TrimSpace(stdout.String() + stderr.String())
		if combined != "" {
			return "", fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), combined, err)
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
