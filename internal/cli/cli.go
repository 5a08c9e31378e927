package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/geograph/pkg/algo"
	"github.com/matzehuels/geograph/pkg/buildinfo"
	"github.com/matzehuels/geograph/pkg/cache"
	"github.com/matzehuels/geograph/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "geograph"

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

	configPath string
	noCache    bool
	config     Config
	stats      *observability.Stats
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: DefaultConfig(),
		stats:  observability.NewStats(),
	}
}

// Stats returns the event counters collected by commands run through c.
func (c *CLI) Stats() observability.StatsSnapshot { return c.stats.Snapshot() }

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Geograph analyzes directed weighted graphs",
		Long:         `Geograph loads directed weighted graphs with optional node positions, answers shortest-path and strongly-connected-component queries, and lays out nodes that have no position.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.configPath == "" {
				return nil
			}
			cfg, err := LoadConfig(c.configPath, c.Logger)
			if err != nil {
				return err
			}
			c.config = cfg
			c.Logger.Debug("loaded config", "path", c.configPath, "config", cfg)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			st := c.stats.Snapshot()
			if st.Loads == 0 {
				return
			}
			c.Logger.Debug("session",
				"loads", st.Loads,
				"queries", st.Queries,
				"cached", st.Cached,
				"hit_rate", st.HitRate(),
				"placed", st.Placed,
				"busy", st.Busy.Round(time.Millisecond))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML configuration file")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the result cache")

	// Register all subcommands
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.sccCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Algo Factory
// =============================================================================

// newAlgo creates an Algo configured from the CLI state. Each loaded file
// gets its own Algo; they may share one cache.
func (c *CLI) newAlgo(store cache.Cache) *algo.Algo {
	return algo.New(nil,
		algo.WithLogger(c.Logger),
		algo.WithCache(store, c.config.Cache.TTL.Duration),
		algo.WithKeyer(cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheScope())),
		algo.WithLayout(c.config.Layout),
		algo.WithHooks(observability.MultiGraphHooks(c.stats, observability.NewLogHooks(c.Logger))),
		algo.WithCacheHooks(observability.MultiCacheHooks(c.stats, observability.NewLogHooks(c.Logger))),
	)
}

// newCache opens the result cache. Cache setup failures disable caching
// rather than failing the command.
func (c *CLI) newCache() cache.Cache {
	if c.noCache || !c.config.Cache.Enabled {
		return cache.NewNullCache()
	}
	fc, err := c.openFileCache()
	if err != nil {
		c.Logger.Debug("cache disabled", "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the configured cache directory or the per-user default.
func (c *CLI) cacheDir() (string, error) {
	if c.config.Cache.Dir != "" {
		return c.config.Cache.Dir, nil
	}
	return cache.DefaultDir()
}
