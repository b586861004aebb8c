package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/matzehuels/pkgpulse/pkg/integrations"
)

// Default public endpoints.
const (
	DefaultAPIURL = "https://api.github.com"
	DefaultHost   = "github.com"
)

// Client reads repository statistics from the GitHub REST API.
// Requests are unauthenticated.
type Client struct {
	*integrations.Client
	baseURL string
	host    string
}

// NewClient creates a GitHub client sending requests through hc. apiURL is
// the REST base and host the web host that repository URLs must point at;
// empty values select the public GitHub endpoints.
func NewClient(hc *http.Client, apiURL, host string) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if host == "" {
		host = DefaultHost
	}
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	return &Client{
		Client:  integrations.NewClient(hc, headers),
		baseURL: strings.TrimSuffix(apiURL, "/"),
		host:    host,
	}
}

// FetchRepoStats retrieves star count, open-issue count and last-update
// time for ref. Fields missing from the response stay unavailable.
func (c *Client) FetchRepoStats(ctx context.Context, ref RepoRef) (RepoStats, error) {
	var data repoResponse
	url := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, ref.Owner, ref.Repo)
	if err := c.Get(ctx, url, &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return Unavailable(), fmt.Errorf("%w: github repo %s", err, ref)
		}
		return Unavailable(), err
	}

	return RepoStats{
		Stars:       data.Stars,
		OpenIssues:  data.OpenIssues,
		LastUpdated: data.UpdatedAt,
	}, nil
}

// StatsForURL parses a repository URL taken from package metadata and
// fetches its statistics. It always returns a usable value: on any failure
// the result is [Unavailable] and err says why.
func (c *Client) StatsForURL(ctx context.Context, rawURL string) (RepoStats, error) {
	ref, err := ParseRepoURL(c.host, rawURL)
	if err != nil {
		return Unavailable(), err
	}
	return c.FetchRepoStats(ctx, ref)
}

type repoResponse struct {
	Stars      *int    `json:"stargazers_count"`
	OpenIssues *int    `json:"open_issues_count"`
	UpdatedAt  *string `json:"updated_at"`
}
