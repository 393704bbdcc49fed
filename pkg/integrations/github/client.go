package github

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/matzehuels/addonscan/pkg/cache"
	"github.com/matzehuels/addonscan/pkg/integrations"
)

// DefaultBaseURL is the public GitHub REST API.
const DefaultBaseURL = "https://api.github.com"

var repoURLPattern = regexp.MustCompile(`^https://github\.com/([^/]+)/([^/?#]+)`)

// Repo holds the repository fields addonscan reports on.
type Repo struct {
	FullName string `json:"full_name"`
	Language string `json:"language"`
	Stars    int    `json:"stargazers_count"`
	Archived bool   `json:"archived"`
}

// Release is a GitHub release and its uploaded assets.
type Release struct {
	TagName    string  `json:"tag_name"`
	Prerelease bool    `json:"prerelease"`
	Assets     []Asset `json:"assets"`
}

// Asset is one file attached to a release.
type Asset struct {
	Name          string `json:"name"`
	Size          int64  `json:"size"`
	DownloadCount int    `json:"download_count"`
	DownloadURL   string `json:"browser_download_url"`
}

// Client provides access to the GitHub API for release and repository lookups.
// It handles HTTP requests with caching, automatic retries, and optional authentication.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitHub API client with optional authentication.
// Pass an empty string for token to use unauthenticated requests (60 requests
// per hour, which a survey exhausts quickly).
func NewClient(c cache.Cache, token string, cacheTTL time.Duration, opts ...integrations.Option) *Client {
	headers := map[string]string{
		"Accept":               "application/vnd.github+json",
		"X-GitHub-Api-Version": "2022-11-28",
	}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &Client{
		Client:  integrations.NewClient(c, "github:", cacheTTL, headers, opts...),
		baseURL: DefaultBaseURL,
	}
}

// SetBaseURL points the client at a GitHub Enterprise API root.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = strings.TrimSuffix(u, "/")
}

// FetchRepo retrieves repository metadata. If refresh is true, cached data is bypassed.
func (c *Client) FetchRepo(ctx context.Context, owner, repo string, refresh bool) (*Repo, error) {
	var r Repo
	err := c.Cached(ctx, "repo:"+owner+"/"+repo, refresh, &r, func() error {
		u := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, repo)
		if err := c.Get(ctx, u, &r); err != nil {
			if errors.Is(err, integrations.ErrNotFound) {
				return fmt.Errorf("%w: github repo %s/%s", err, owner, repo)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// FetchRelease retrieves the release tagged tag. An empty tag selects the
// latest published release.
func (c *Client) FetchRelease(ctx context.Context, owner, repo, tag string, refresh bool) (*Release, error) {
	path := "releases/latest"
	if tag != "" {
		path = "releases/tags/" + url.PathEscape(tag)
	}

	var rel Release
	err := c.Cached(ctx, "release:"+owner+"/"+repo+"@"+tag, refresh, &rel, func() error {
		u := fmt.Sprintf("%s/repos/%s/%s/%s", c.baseURL, owner, repo, path)
		if err := c.Get(ctx, u, &rel); err != nil {
			if errors.Is(err, integrations.ErrNotFound) {
				return fmt.Errorf("%w: release %q of %s/%s", err, tag, owner, repo)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// ParseRepoURL extracts owner and repo from any repository form accepted by
// [integrations.NormalizeRepoURL]. Returns ok=false for non-GitHub hosts and
// malformed names.
func ParseRepoURL(raw string) (owner, repo string, ok bool) {
	m := repoURLPattern.FindStringSubmatch(integrations.NormalizeRepoURL(raw))
	if len(m) < 3 {
		return "", "", false
	}
	owner, repo = m[1], strings.TrimSuffix(m[2], ".git")
	if ValidateOwner(owner) != nil || ValidateRepo(repo) != nil {
		return "", "", false
	}
	return owner, repo, true
}
