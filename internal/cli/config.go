package cli

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	apperrors "github.com/matzehuels/addonscan/pkg/errors"
	"github.com/matzehuels/addonscan/pkg/survey"
)

// Cache backends.
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendNone  = "none"
)

const (
	defaultCacheTTL  = 24 * time.Hour
	defaultRedisAddr = "localhost:6379"
	defaultRate      = 5.0
)

// config mirrors config.toml:
//
//	min_downloads = 1000
//	exclude_file  = "~/addonscan-exclude.yaml"
//	github_token  = "ghp_..."
//
//	[cache]
//	backend    = "redis"
//	ttl        = "12h"
//	redis_addr = "localhost:6379"
//
//	[http]
//	rate       = 5.0
//	npm_url    = "https://api.npmjs.org"
//	github_url = "https://api.github.com"
type config struct {
	MinDownloads int         `toml:"min_downloads"`
	ExcludeFile  string      `toml:"exclude_file"`
	GitHubToken  string      `toml:"github_token"`
	Cache        cacheConfig `toml:"cache"`
	HTTP         httpConfig  `toml:"http"`
}

type cacheConfig struct {
	Backend   string   `toml:"backend"`
	TTL       duration `toml:"ttl"`
	RedisAddr string   `toml:"redis_addr"`
}

type httpConfig struct {
	Rate      float64 `toml:"rate"`
	NpmURL    string  `toml:"npm_url"`
	GitHubURL string  `toml:"github_url"`
}

// duration decodes "12h" style strings.
type duration struct{ time.Duration }

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func defaultConfig() config {
	return config{
		MinDownloads: survey.DefaultMinDownloads,
		Cache: cacheConfig{
			Backend:   backendFile,
			TTL:       duration{defaultCacheTTL},
			RedisAddr: defaultRedisAddr,
		},
		HTTP: httpConfig{Rate: defaultRate},
	}
}

// loadConfig reads path over the defaults. An empty path selects the
// default location, which may be absent; an explicit path must exist.
// GITHUB_TOKEN fills in a missing token. The result is not validated:
// callers overlay their flags first and then call validate.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		if p, err := configFile(); err == nil {
			path = p
		}
	}

	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		case errors.Is(err, fs.ErrNotExist):
			return cfg, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "config %s", path)
		default:
			return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "config %s", path)
		}
	}

	if cfg.GitHubToken == "" {
		cfg.GitHubToken = os.Getenv("GITHUB_TOKEN")
	}
	return cfg, nil
}

func (c config) validate() error {
	switch c.Cache.Backend {
	case backendFile, backendRedis, backendNone:
	default:
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "cache backend %q: must be file, redis or none", c.Cache.Backend)
	}
	if c.MinDownloads < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "min_downloads must not be negative")
	}
	if c.HTTP.Rate < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "http rate must not be negative")
	}
	if c.Cache.TTL.Duration < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "cache ttl must not be negative")
	}
	return nil
}
