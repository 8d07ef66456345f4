package entities

// RepositoryState is a snapshot of a local repository's publish-relevant
// state, as reported by a workflow engine's Inspect.
type RepositoryState struct {
	Initialized bool
	Branch      string            // current branch name; empty on an unborn HEAD
	Remotes     map[string]string // remote name -> URL
	CommitCount int               // commits reachable from HEAD
	Upstream    string            // tracking ref of the current branch, e.g. "origin/main"
}

// RemoteURL returns the URL configured for the given remote name, or "".
func (s *RepositoryState) RemoteURL(name string) string {
	if s == nil || s.Remotes == nil {
		return ""
	}
	return s.Remotes[name]
}
