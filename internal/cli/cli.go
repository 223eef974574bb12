// Package cli implements the boxflow command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/boxflow/pkg/buildinfo"
	"github.com/matzehuels/boxflow/pkg/cache"
	"github.com/matzehuels/boxflow/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "boxflow"

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
	Config Config

	// Global flags, resolved against Config in PersistentPreRunE.
	verbose    bool
	cacheURL   string
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Boxflow lays out nested boxes with flexbox rules",
		Long: `Boxflow computes flexbox-style layouts for trees of boxes described in
JSON, TOML or HCL, and renders them as SVG, PNG or Graphviz output.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.loadSettings,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.cacheURL, "cache", "", "cache location (file:///dir, redis://..., mongodb://..., none)")
	flags.StringVar(&c.configPath, "config", "", "config file (default ~/.config/boxflow/config.toml)")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadSettings reads the config file and merges it under the global flags.
func (c *CLI) loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	flags := cmd.Flags()
	if !flags.Changed("verbose") {
		c.verbose = cfg.Verbose
	}
	if !flags.Changed("cache") {
		c.cacheURL = cfg.Cache
	}
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}
	c.Logger.Debug("settings loaded", "config", cfg.path, "cache", c.cacheURL)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.openCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, c.keyer(), c.Logger), nil
}

// keyer returns the cache keyer for the configured cache_prefix. A nil
// keyer makes the runner use the default one.
func (c *CLI) keyer() cache.Keyer {
	if c.Config.CachePrefix == "" {
		return nil
	}
	return cache.NewScopedKeyer(nil, c.Config.CachePrefix)
}

func (c *CLI) openCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.Open(ctx, c.cacheURL, dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/boxflow/).
func cacheDir() (string, error) {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

// configDir returns the config directory using XDG standard (~/.config/boxflow/).
func configDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

func xdgDir(env, fallback string) (string, error) {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback, appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// layoutFlags are the size overrides shared by every command that computes
// a layout.
type layoutFlags struct {
	width   float64
	height  float64
	noCache bool
	refresh bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.width, "width", 0, "override the root width")
	cmd.Flags().Float64Var(&f.height, "height", 0, "override the root height")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute even when cached")
}

// layoutOptions builds pipeline options, taking sizes from the config file when
// the flags were not given.
func (c *CLI) layoutOptions(cmd *cobra.Command, f layoutFlags) pipeline.Options {
	opts := pipeline.Options{
		Width:   f.width,
		Height:  f.height,
		Refresh: f.refresh,
		Logger:  c.Logger,
	}
	if !cmd.Flags().Changed("width") {
		opts.Width = c.Config.Width
	}
	if !cmd.Flags().Changed("height") {
		opts.Height = c.Config.Height
	}
	return opts
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(strings.ToLower(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// basePath strips the document extension from path, including the compound
// .layout.json suffix.
func basePath(path string) string {
	if strings.HasSuffix(path, pipeline.Extensions[pipeline.FormatJSON]) {
		return strings.TrimSuffix(path, pipeline.Extensions[pipeline.FormatJSON])
	}
	return strings.TrimSuffix(path, filepath.Ext(path))
}
