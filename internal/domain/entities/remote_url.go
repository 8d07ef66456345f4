package entities

import (
	"fmt"
	"strings"
)

// RemoteInfo holds the parsed components of a Git remote URL.
type RemoteInfo struct {
	Host  string
	Owner string
	Name  string
}

// ParseRemoteURL extracts host, owner, and repository name from an HTTPS or
// SSH Git remote URL.
func ParseRemoteURL(rawURL string) (*RemoteInfo, error) {
	cleaned := strings.TrimSuffix(strings.TrimSpace(rawURL), ".git")
	if cleaned == "" {
		return nil, fmt.Errorf("empty remote URL")
	}

	if strings.HasPrefix(cleaned, "git@") {
		// git@host:owner/repo
		rest := strings.TrimPrefix(cleaned, "git@")
		host, path, ok := strings.Cut(rest, ":")
		if !ok {
			return nil, fmt.Errorf("invalid SSH URL: %s", rawURL)
		}
		return splitOwnerRepo(host, path, rawURL)
	}

	// scheme://host/owner/repo
	withoutScheme := cleaned
	if _, after, ok := strings.Cut(cleaned, "://"); ok {
		withoutScheme = after
	}
	host, path, ok := strings.Cut(withoutScheme, "/")
	if !ok {
		return nil, fmt.Errorf("cannot extract owner/repo from URL: %s", rawURL)
	}
	return splitOwnerRepo(host, path, rawURL)
}

func splitOwnerRepo(host, path, rawURL string) (*RemoteInfo, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return nil, fmt.Errorf("cannot extract owner/repo from URL: %s", rawURL)
	}
	return &RemoteInfo{
		Host:  host,
		Owner: segments[0],
		Name:  segments[1],
	}, nil
}
