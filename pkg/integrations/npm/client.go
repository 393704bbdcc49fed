package npm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/addonscan/pkg/cache"
	apperrors "github.com/matzehuels/addonscan/pkg/errors"
	"github.com/matzehuels/addonscan/pkg/integrations"
)

// DefaultBaseURL is the public npm download-counts API.
const DefaultBaseURL = "https://api.npmjs.org"

// DefaultPeriod is the window download counts are summed over.
const DefaultPeriod = "last-month"

// Downloads is a download count for one package over a period.
type Downloads struct {
	Package   string `json:"package"`
	Downloads int    `json:"downloads"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// Client fetches download counts from the npm API.
type Client struct {
	*integrations.Client
	baseURL string
	period  string
}

// NewClient creates a download-counts client whose responses are cached in c
// for cacheTTL.
func NewClient(c cache.Cache, cacheTTL time.Duration, opts ...integrations.Option) *Client {
	return &Client{
		Client:  integrations.NewClient(c, "npm:downloads:", cacheTTL, nil, opts...),
		baseURL: DefaultBaseURL,
		period:  DefaultPeriod,
	}
}

// SetBaseURL points the client at a mirror of the downloads API.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = strings.TrimSuffix(u, "/")
}

// FetchDownloads returns the package's download count for the last month.
// If refresh is true, cached data is bypassed.
func (c *Client) FetchDownloads(ctx context.Context, pkg string, refresh bool) (*Downloads, error) {
	pkg = strings.TrimSpace(pkg)
	if err := apperrors.ValidateNpmPackageName(pkg); err != nil {
		return nil, err
	}

	var d Downloads
	err := c.Cached(ctx, c.period+":"+pkg, refresh, &d, func() error {
		return c.fetch(ctx, pkg, &d)
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) fetch(ctx context.Context, pkg string, d *Downloads) error {
	url := fmt.Sprintf("%s/downloads/point/%s/%s", c.baseURL, c.period, pkg)
	if err := c.Get(ctx, url, d); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return fmt.Errorf("%w: npm package %s", err, pkg)
		}
		return err
	}
	if d.Downloads < 0 {
		d.Downloads = 0
	}
	return nil
}
