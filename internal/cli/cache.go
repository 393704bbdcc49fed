package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/addonscan/pkg/cache"
)

// newCache opens the configured cache backend. noCache forces the null cache.
func newCache(ctx context.Context, cfg config, noCache bool) (cache.Cache, error) {
	if noCache || cfg.Cache.Backend == backendNone {
		return cache.NewNullCache(), nil
	}
	if cfg.Cache.Backend == backendRedis {
		return cache.NewRedisCache(ctx, cfg.Cache.RedisAddr, cache.DefaultRedisPrefix)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the HTTP response cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached HTTP responses",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			if err := cfg.validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := newCache(ctx, cfg, false)
			if err != nil {
				return err
			}
			defer store.Close()

			var count int
			switch s := store.(type) {
			case *cache.FileCache:
				count, err = s.Clear()
				if err != nil {
					return fmt.Errorf("clear %s: %w", s.Dir(), err)
				}
				printSuccess(c.out, "Cleared %d cached entries", count)
				printDetail(c.out, "Directory: %s", s.Dir())
			case *cache.RedisCache:
				count, err = s.Clear(ctx)
				if err != nil {
					return fmt.Errorf("clear redis: %w", err)
				}
				printSuccess(c.out, "Cleared %d cached entries", count)
				printDetail(c.out, "Redis: %s", cfg.Cache.RedisAddr)
			default:
				printInfo(c.out, "Cache is disabled")
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache location",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			switch cfg.Cache.Backend {
			case backendRedis:
				fmt.Fprintln(c.out, "redis://"+cfg.Cache.RedisAddr)
			case backendNone:
				printInfo(c.out, "Cache is disabled")
			default:
				dir, err := cacheDir()
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				fmt.Fprintln(c.out, dir)
			}
			return nil
		},
	}
}
