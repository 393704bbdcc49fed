package native

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/addonscan/pkg/integrations"
	"github.com/matzehuels/addonscan/pkg/integrations/github"
	"github.com/matzehuels/addonscan/pkg/integrations/npm"
	"github.com/matzehuels/addonscan/pkg/survey"
)

// ErrNoRepository is returned by FetchPrebuilds for packages without a
// GitHub repository.
var ErrNoRepository = errors.New("no github repository")

// DownloadsFetcher is implemented by [npm.Client].
type DownloadsFetcher interface {
	FetchDownloads(ctx context.Context, pkg string, refresh bool) (*npm.Downloads, error)
}

// RepoFetcher is implemented by [github.Client].
type RepoFetcher interface {
	FetchRepo(ctx context.Context, owner, repo string, refresh bool) (*github.Repo, error)
	FetchRelease(ctx context.Context, owner, repo, tag string, refresh bool) (*github.Release, error)
}

// Provider classifies npm packages by native toolchain and enriches them
// from npm and GitHub.
type Provider struct {
	npm     DownloadsFetcher
	github  RepoFetcher
	refresh bool
	logger  *log.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithRefresh bypasses cached registry responses.
func WithRefresh(refresh bool) Option {
	return func(p *Provider) { p.refresh = refresh }
}

// WithLogger sets the logger for debug output.
func WithLogger(l *log.Logger) Option {
	return func(p *Provider) { p.logger = l }
}

// New creates a provider backed by the given registry clients.
func New(downloads DownloadsFetcher, gh RepoFetcher, opts ...Option) *Provider {
	p := &Provider{npm: downloads, github: gh, logger: log.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ survey.Provider = (*Provider)(nil)

// DetectType implements survey.Provider.
func (p *Provider) DetectType(rec *survey.Record) bool {
	rec.Type = DetectType(rec)
	return rec.Type != ""
}

// FetchDownloads implements survey.Provider.
func (p *Provider) FetchDownloads(ctx context.Context, rec *survey.Record) error {
	d, err := p.npm.FetchDownloads(ctx, rec.Name, p.refresh)
	if err != nil {
		return err
	}
	rec.Downloads = d.Downloads
	return nil
}

// FetchPrebuilds implements survey.Provider. Napi is set from the package
// declaration before any request, so it survives a failed lookup.
func (p *Provider) FetchPrebuilds(ctx context.Context, rec *survey.Record) error {
	rec.Napi = DeclaresNapi(rec)

	owner, repo, ok := github.ParseRepoURL(rec.Repository.URL)
	if !ok {
		return ErrNoRepository
	}

	r, err := p.github.FetchRepo(ctx, owner, repo, p.refresh)
	if err != nil {
		return err
	}
	rec.Language = r.Language

	rel, err := p.release(ctx, owner, repo, rec.Version)
	if err != nil {
		return err
	}

	names := make([]string, len(rel.Assets))
	for i, a := range rel.Assets {
		names[i] = a.Name
	}
	rec.Prebuilds = ParseAssets(names)
	for _, pb := range rec.Prebuilds {
		if pb.Runtime == "napi" {
			rec.Napi = true
			break
		}
	}
	p.logger.Debug("prebuilds", "name", rec.Name, "release", rel.TagName, "assets", len(rel.Assets), "prebuilds", len(rec.Prebuilds))
	return nil
}

// release returns the release for version, or the latest one when the
// version was never tagged.
func (p *Provider) release(ctx context.Context, owner, repo, version string) (*github.Release, error) {
	if version != "" {
		rel, err := p.github.FetchRelease(ctx, owner, repo, "v"+version, p.refresh)
		if err == nil {
			return rel, nil
		}
		if !errors.Is(err, integrations.ErrNotFound) {
			return nil, err
		}
	}
	rel, err := p.github.FetchRelease(ctx, owner, repo, "", p.refresh)
	if err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, fmt.Errorf("no github release for %s/%s", owner, repo)
		}
		return nil, err
	}
	return rel, nil
}
