package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/addonscan/pkg/buildinfo"
	"github.com/matzehuels/addonscan/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "addonscan"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// out receives reports, diag receives soft failures, the summary line
	// and log output.
	out  io.Writer
	diag io.Writer

	configPath string
	verbose    bool
}

// New creates a CLI writing reports to out and diagnostics and logs to diag.
func New(out, diag io.Writer, level log.Level) *CLI {
	runID := uuid.NewString()
	return &CLI{
		Logger: newLogger(diag, level).With("run", runID[:8]),
		out:    out,
		diag:   diag,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "addonscan surveys npm packages that ship native addons",
		Long: `addonscan reads npm package documents as newline-delimited JSON, keeps the
packages that build native code, and reports their popularity, prebuilt
binaries and N-API usage as a Markdown table.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
				installHooks(c.Logger)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			observability.Reset()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)
	root.SetErr(c.diag)

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/addonscan/config.toml)")

	root.AddCommand(c.scanCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.exclusionsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/addonscan/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configFile returns the default config path (~/.config/addonscan/config.toml).
func configFile() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
