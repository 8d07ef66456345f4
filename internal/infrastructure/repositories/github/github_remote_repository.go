package github

import (
	"context"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/gamjagf/gitship/internal/domain/entities"
	"github.com/gamjagf/gitship/internal/domain/repositories"
)

const providerName = "github"

// GitHubRemoteRepository implements repositories.RemoteRepository for GitHub.
type GitHubRemoteRepository struct {
	client *gh.Client
}

var _ repositories.RemoteRepository = (*GitHubRemoteRepository)(nil)

// NewRemoteRepository creates a new GitHub provider with the given token.
func NewRemoteRepository(token string) repositories.RemoteRepository {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := gh.NewClient(oauth2.NewClient(context.Background(), source))
	return &GitHubRemoteRepository{client: client}
}

func (p *GitHubRemoteRepository) Name() string { return providerName }

func (p *GitHubRemoteRepository) MatchesURL(rawURL string) bool {
	info, err := entities.ParseRemoteURL(rawURL)
	return err == nil && info.Host == "github.com"
}

// EnsureRepository checks that the repository behind url exists on GitHub
// and creates it when absent.  Only a 404 triggers creation; any other API
// failure propagates.
func (p *GitHubRemoteRepository) EnsureRepository(
	ctx context.Context,
	url string,
	private bool,
) error {
	info, err := entities.ParseRemoteURL(url)
	if err != nil {
		return err
	}

	_, resp, err := p.client.Repositories.Get(ctx, info.Owner, info.Name)
	if err == nil {
		logger.Debugf("[github] Repository %s/%s already exists", info.Owner, info.Name)
		return nil
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("failed to look up %s/%s: %w", info.Owner, info.Name, err)
	}

	// Create under the organization, or under the authenticated user when
	// the URL owner is the user itself.
	org := info.Owner
	if user, _, userErr := p.client.Users.Get(ctx, ""); userErr == nil &&
		user.GetLogin() == info.Owner {
		org = ""
	}

	logger.Infof("[github] Creating repository %s/%s (private: %v)", info.Owner, info.Name, private)

	if _, _, createErr := p.client.Repositories.Create(ctx, org, &gh.Repository{
		Name:    gh.String(info.Name),
		Private: gh.Bool(private),
	}); createErr != nil {
		return fmt.Errorf("failed to create %s/%s: %w", info.Owner, info.Name, createErr)
	}
	return nil
}
