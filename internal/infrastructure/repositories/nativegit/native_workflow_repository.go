// Package nativegit runs publish plan steps through go-git, without
// requiring a git binary on the host.  Step semantics mirror the git CLI:
// re-init is a no-op, a clean tree fails the commit, an existing remote
// fails the remote step, and the push sets upstream tracking.
package nativegit

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	transporthttp "github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/gamjagf/gitship/internal/domain/entities"
	"github.com/gamjagf/gitship/internal/domain/repositories"
)

const engineName = "native"

// NativeWorkflowRepository implements repositories.WorkflowRepository on
// top of go-git.
type NativeWorkflowRepository struct {
	token string
}

var _ repositories.WorkflowRepository = (*NativeWorkflowRepository)(nil)

// NewWorkflowRepository creates a new go-git engine.  When a token is
// given it is used as HTTP basic-auth credentials for the push.
func NewWorkflowRepository(token string) repositories.WorkflowRepository {
	return &NativeWorkflowRepository{token: token}
}

func (r *NativeWorkflowRepository) Name() string { return engineName }

// Execute runs a single plan step against the repository in dir.
func (r *NativeWorkflowRepository) Execute(
	ctx context.Context,
	dir string,
	step entities.Step,
) error {
	switch step.ID {
	case entities.StepInit:
		return r.initRepo(dir)
	case entities.StepStage:
		return r.stageAll(dir)
	case entities.StepCommit:
		return r.commit(dir, step)
	case entities.StepBranch:
		return r.setBranch(dir, step)
	case entities.StepRemote:
		return r.addRemote(dir, step)
	case entities.StepPush:
		return r.push(ctx, dir, step)
	default:
		return fmt.Errorf("unknown step: %q", step.ID)
	}
}

// initRepo initializes a repository; re-initialization is a no-op.
func (r *NativeWorkflowRepository) initRepo(dir string) error {
	_, err := gogit.PlainInit(dir, false)
	if errors.Is(err, gogit.ErrRepositoryAlreadyExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	return nil
}

// stageAll stages every tracked and untracked file in the working tree.
func (r *NativeWorkflowRepository) stageAll(dir string) error {
	wt, err := openWorktree(dir)
	if err != nil {
		return err
	}
	if addErr := wt.AddWithOptions(&gogit.AddOptions{All: true}); addErr != nil {
		return fmt.Errorf("stage: %w", addErr)
	}
	return nil
}

// commit creates a commit from the staged changes.  A clean tree fails,
// matching `git commit` on a re-run with no changes.
func (r *NativeWorkflowRepository) commit(dir string, step entities.Step) error {
	wt, err := openWorktree(dir)
	if err != nil {
		return err
	}

	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	if status.IsClean() {
		return errors.New("nothing to commit, working tree clean")
	}

	message := step.GitArgs[len(step.GitArgs)-1]
	if _, commitErr := wt.Commit(message, &gogit.CommitOptions{}); commitErr != nil {
		return fmt.Errorf("commit: %w", commitErr)
	}
	return nil
}

// setBranch force-moves the current branch to the target name, like
// `git branch -M`.  On an unborn HEAD only the symbolic ref is repointed.
func (r *NativeWorkflowRepository) setBranch(dir string, step entities.Step) error {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}

	branch := step.GitArgs[len(step.GitArgs)-1]
	targetRef := plumbing.NewBranchReferenceName(branch)

	head, err := repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return fmt.Errorf("resolve HEAD: %w", err)
	}

	resolved, err := repo.Head()
	if err != nil {
		// Unborn branch: repoint HEAD and let the next commit create the ref.
		symRef := plumbing.NewSymbolicReference(plumbing.HEAD, targetRef)
		if setErr := repo.Storer.SetReference(symRef); setErr != nil {
			return fmt.Errorf("set HEAD: %w", setErr)
		}
		return nil
	}

	if resolved.Name() == targetRef {
		return nil
	}

	branchRef := plumbing.NewHashReference(targetRef, resolved.Hash())
	if setErr := repo.Storer.SetReference(branchRef); setErr != nil {
		return fmt.Errorf("set branch ref: %w", setErr)
	}

	symRef := plumbing.NewSymbolicReference(plumbing.HEAD, targetRef)
	if setErr := repo.Storer.SetReference(symRef); setErr != nil {
		return fmt.Errorf("set HEAD: %w", setErr)
	}

	if head.Type() == plumbing.SymbolicReference && head.Target() != targetRef {
		if removeErr := repo.Storer.RemoveReference(head.Target()); removeErr != nil {
			return fmt.Errorf("remove old branch ref: %w", removeErr)
		}
	}
	return nil
}

// addRemote registers the remote; an existing remote of the same name is
// an error, never overwritten.
func (r *NativeWorkflowRepository) addRemote(dir string, step entities.Step) error {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}

	name := step.GitArgs[len(step.GitArgs)-2]
	url := step.GitArgs[len(step.GitArgs)-1]

	if _, createErr := repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: name,
		URLs: []string{url},
	}); createErr != nil {
		return fmt.Errorf("remote add %s: %w", name, createErr)
	}
	return nil
}

// push pushes the branch and records it as tracking the remote branch.
func (r *NativeWorkflowRepository) push(ctx context.Context, dir string, step entities.Step) error {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}

	remote := step.GitArgs[len(step.GitArgs)-2]
	branch := step.GitArgs[len(step.GitArgs)-1]
	refSpec := gitconfig.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", branch, branch))

	pushOpts := &gogit.PushOptions{
		RemoteName: remote,
		RefSpecs:   []gitconfig.RefSpec{refSpec},
	}
	if r.token != "" {
		pushOpts.Auth = &transporthttp.BasicAuth{Username: "git", Password: r.token}
	}

	if pushErr := repo.PushContext(ctx, pushOpts); pushErr != nil &&
		!errors.Is(pushErr, gogit.NoErrAlreadyUpToDate) {
		return fmt.Errorf("push: %w", pushErr)
	}

	return r.setUpstream(repo, remote, branch)
}

// setUpstream writes the branch tracking section, like `git push -u`.
func (r *NativeWorkflowRepository) setUpstream(repo *gogit.Repository, remote, branch string) error {
	cfg, err := repo.Config()
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	if cfg.Branches == nil {
		cfg.Branches = map[string]*gitconfig.Branch{}
	}
	cfg.Branches[branch] = &gitconfig.Branch{
		Name:   branch,
		Remote: remote,
		Merge:  plumbing.NewBranchReferenceName(branch),
	}

	if setErr := repo.SetConfig(cfg); setErr != nil {
		return fmt.Errorf("set upstream: %w", setErr)
	}
	return nil
}

// Inspect reports the repository state of dir.
func (r *NativeWorkflowRepository) Inspect(
	_ context.Context,
	dir string,
) (*entities.RepositoryState, error) {
	state := &entities.RepositoryState{Remotes: map[string]string{}}

	repo, err := gogit.PlainOpen(dir)
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	state.Initialized = true

	if head, headErr := repo.Storer.Reference(plumbing.HEAD); headErr == nil &&
		head.Type() == plumbing.SymbolicReference {
		state.Branch = head.Target().Short()
	}

	if remotes, remotesErr := repo.Remotes(); remotesErr == nil {
		for _, remote := range remotes {
			cfg := remote.Config()
			if len(cfg.URLs) > 0 {
				state.Remotes[cfg.Name] = cfg.URLs[0]
			}
		}
	}

	if resolved, resolveErr := repo.Head(); resolveErr == nil {
		state.CommitCount = countCommits(repo, resolved.Hash())
	}

	if cfg, cfgErr := repo.Config(); cfgErr == nil && state.Branch != "" {
		if branchCfg, ok := cfg.Branches[state.Branch]; ok && branchCfg.Remote != "" {
			state.Upstream = branchCfg.Remote + "/" + branchCfg.Merge.Short()
		}
	}

	return state, nil
}

func countCommits(repo *gogit.Repository, from plumbing.Hash) int {
	iter, err := repo.Log(&gogit.LogOptions{From: from})
	if err != nil {
		return 0
	}
	defer iter.Close()

	count := 0
	for {
		if _, nextErr := iter.Next(); nextErr != nil {
			break
		}
		count++
	}
	return count
}

func openWorktree(dir string) (*gogit.Worktree, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("worktree: %w", err)
	}
	return wt, nil
}
