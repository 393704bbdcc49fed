package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/addonscan/pkg/cache"
	apperrors "github.com/matzehuels/addonscan/pkg/errors"
	"github.com/matzehuels/addonscan/pkg/exclude"
	"github.com/matzehuels/addonscan/pkg/integrations"
	"github.com/matzehuels/addonscan/pkg/integrations/github"
	"github.com/matzehuels/addonscan/pkg/integrations/npm"
	"github.com/matzehuels/addonscan/pkg/mdtable"
	"github.com/matzehuels/addonscan/pkg/native"
	"github.com/matzehuels/addonscan/pkg/survey"
)

// Output formats for the scan command.
const (
	formatMarkdown = "markdown"
	formatTable    = "table"
	formatJSON     = "json"
)

// scanOpts holds the command-line flags for the scan command. Zero values
// defer to the config file.
type scanOpts struct {
	input        string  // input file (stdin if empty)
	format       string  // markdown, table or json
	minDownloads int     // popularity threshold
	excludeFile  string  // extra exclusion list
	githubToken  string  // GitHub API token
	cacheBackend string  // file, redis or none
	redisAddr    string  // redis address for the redis backend
	rate         float64 // outbound requests per second per host
	noCache      bool    // disable the response cache
	refresh      bool    // bypass cached responses
}

func validateFormat(f string) error {
	switch f {
	case formatMarkdown, formatTable, formatJSON:
		return nil
	}
	return apperrors.New(apperrors.ErrCodeInvalidFormat, "unknown format %q: must be markdown, table or json", f)
}

// apply overlays flags the user set on cfg.
func (o *scanOpts) apply(cmd *cobra.Command, cfg *config) {
	flags := cmd.Flags()
	if flags.Changed("min-downloads") {
		cfg.MinDownloads = o.minDownloads
	}
	if flags.Changed("exclude-file") {
		cfg.ExcludeFile = o.excludeFile
	}
	if flags.Changed("github-token") {
		cfg.GitHubToken = o.githubToken
	}
	if flags.Changed("cache") {
		cfg.Cache.Backend = o.cacheBackend
	}
	if flags.Changed("redis-addr") {
		cfg.Cache.RedisAddr = o.redisAddr
	}
	if flags.Changed("rate") {
		cfg.HTTP.Rate = o.rate
	}
}

// scanCommand creates the scan command.
func (c *CLI) scanCommand() *cobra.Command {
	opts := scanOpts{format: formatMarkdown}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Survey npm packages for native addons",
		Long: `Survey npm packages for native addons.

Reads one package document (the package.json of the latest version) per line
and writes a Markdown table of the popular packages that build native code.
Lookup failures are reported on stderr and never stop the survey.

Examples:
  addonscan scan < packages.ndjson > report.md
  addonscan scan --input packages.ndjson --format table
  addonscan scan --min-downloads 10000 --exclude-file ignore.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			opts.apply(cmd, &cfg)
			if err := cfg.validate(); err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if opts.input != "" && opts.input != "-" {
				f, err := os.Open(opts.input)
				if err != nil {
					return apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "open input")
				}
				defer f.Close()
				in = f
			}
			return c.runScan(cmd.Context(), in, cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input file of NDJSON package documents (stdin if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: markdown, table or json")
	cmd.Flags().IntVar(&opts.minDownloads, "min-downloads", survey.DefaultMinDownloads, "minimum monthly downloads")
	cmd.Flags().StringVar(&opts.excludeFile, "exclude-file", "", "file with extra package names to exclude")
	cmd.Flags().StringVar(&opts.githubToken, "github-token", "", "GitHub API token (default $GITHUB_TOKEN)")
	cmd.Flags().StringVar(&opts.cacheBackend, "cache", backendFile, "cache backend: file, redis or none")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", defaultRedisAddr, "redis address for --cache redis")
	cmd.Flags().Float64Var(&opts.rate, "rate", defaultRate, "requests per second per registry (0 for unlimited)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the response cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached responses")

	return cmd
}

// runScan wires the survey and writes the report.
func (c *CLI) runScan(ctx context.Context, in io.Reader, cfg config, opts scanOpts) error {
	prog := newProgress(c.Logger)

	var extra []string
	if cfg.ExcludeFile != "" {
		names, err := exclude.Load(cfg.ExcludeFile)
		if err != nil {
			return err
		}
		extra = names
	}
	excluded := exclude.New(extra)
	c.Logger.Debug("exclusions", "count", excluded.Len(), "file", cfg.ExcludeFile)

	store, err := newCache(ctx, cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	provider := c.newProvider(store, cfg, opts.refresh)
	classifier := survey.NewClassifier(excluded, provider,
		survey.WithMinDownloads(cfg.MinDownloads),
		survey.WithDiagnostics(c.diag),
		survey.WithLogger(c.Logger),
	)

	report, err := survey.NewConsumer(classifier, c.Logger).Run(ctx, survey.NewJSONSource(in))
	if err != nil {
		return err
	}

	if err := c.writeReport(report, opts.format); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Surveyed %d packages", report.Counters().Seen))
	return report.WriteSummary(c.diag)
}

// newProvider builds the npm and GitHub clients sharing store and the
// configured rate limit.
func (c *CLI) newProvider(store cache.Cache, cfg config, refresh bool) *native.Provider {
	limit := integrations.WithRateLimit(cfg.HTTP.Rate)
	ttl := cfg.Cache.TTL.Duration

	npmClient := npm.NewClient(store, ttl, limit)
	if cfg.HTTP.NpmURL != "" {
		npmClient.SetBaseURL(cfg.HTTP.NpmURL)
	}

	ghClient := github.NewClient(store, cfg.GitHubToken, ttl, limit)
	if cfg.HTTP.GitHubURL != "" {
		ghClient.SetBaseURL(cfg.HTTP.GitHubURL)
	}
	if cfg.GitHubToken == "" {
		c.Logger.Debug("no GitHub token, prebuild lookups are limited to 60 requests per hour")
	}

	return native.New(npmClient, ghClient, native.WithRefresh(refresh), native.WithLogger(c.Logger))
}

func (c *CLI) writeReport(r *survey.Report, format string) error {
	switch format {
	case formatTable:
		fmt.Fprintln(c.out, renderTable(r))
		fmt.Fprintln(c.out, summaryLine(r.Counters()))
		return nil
	case formatJSON:
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		return enc.Encode(r.Entries())
	default:
		return r.WriteMarkdown(c.out, mdtable.New())
	}
}
