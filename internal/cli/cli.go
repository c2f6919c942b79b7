// Package cli implements the captain-arro command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/helgeesch/captain-arro/pkg/buildinfo"
	"github.com/helgeesch/captain-arro/pkg/cache"
	"github.com/helgeesch/captain-arro/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "captain-arro"

	// defaultSpeedPxPerSec applies when a command sets neither --speed nor
	// --duration. The library itself requires an explicit speed.
	defaultSpeedPxPerSec = 20.0
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
		Use:   "captain-arro",
		Short: "Captain Arro generates animated SVG arrows",
		Long: `Captain Arro generates animated directional arrow graphics as
self-contained SVG documents, ready to embed in web pages and docs.

Four animation patterns are available:

  flow              chevrons fading and sliding along one direction
  spotlight-flow    a masked highlight sweeping across moving chevrons
  spread            two arrow groups bouncing apart from the center
  spotlight-spread  spreading arrows lit by animated gradients

Every pattern is configurable through flags (size, color, stroke, count,
speed or fixed duration). Generated documents carry a random id suffix so
several arrows can share a page; pin the suffix or disable it for
byte-stable output.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/captain-arro/).
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

// =============================================================================
// Options Helpers
// =============================================================================

// setSpeedDefault applies the CLI speed default when the user set neither
// --speed nor --duration.
func setSpeedDefault(opts *pipeline.Options) {
	if opts.SpeedPxPerSec == 0 && opts.DurationSeconds == 0 {
		opts.SpeedPxPerSec = defaultSpeedPxPerSec
	}
}
