package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/geograph/pkg/cache"
	"github.com/matzehuels/geograph/pkg/errors"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the on-disk query result cache",
		Long: `Shortest paths and component partitions are cached on disk, keyed by the
structure of the graph and by the geograph build. Use these commands to
inspect or empty that cache.`,
	}
	cmd.AddCommand(
		c.cacheSubcommand("stats", "Show entry counts and size", c.runCacheStats),
		c.cacheSubcommand("prune", "Remove expired entries", c.runCachePrune),
		c.cacheSubcommand("clear", "Remove all entries", c.runCacheClear),
		&cobra.Command{
			Use:   "path",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				dir, err := c.cacheDir()
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "locate cache directory")
				}
				fmt.Fprintln(cmd.OutOrStdout(), dir)
				return nil
			},
		},
	)
	return cmd
}

// cacheSubcommand builds a subcommand that operates on the opened FileCache.
func (c *CLI) cacheSubcommand(use, short string, run func(*cobra.Command, *cache.FileCache) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := c.openFileCache()
			if err != nil {
				return err
			}
			return run(cmd, fc)
		},
	}
}

func (c *CLI) runCacheStats(cmd *cobra.Command, fc *cache.FileCache) error {
	st, err := fc.Stats(cmd.Context())
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "scan %s", fc.Dir())
	}
	w := cmd.OutOrStdout()
	printKeyValue(w, "directory", fc.Dir())
	printKeyValue(w, "entries", strconv.Itoa(st.Entries))
	printKeyValue(w, "expired", strconv.Itoa(st.Expired))
	printKeyValue(w, "size", formatBytes(st.Bytes))
	return nil
}

func (c *CLI) runCachePrune(cmd *cobra.Command, fc *cache.FileCache) error {
	n, err := fc.Prune(cmd.Context())
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "prune %s", fc.Dir())
	}
	printSuccess(cmd.OutOrStdout(), "Pruned %d expired entries", n)
	return nil
}

func (c *CLI) runCacheClear(cmd *cobra.Command, fc *cache.FileCache) error {
	n, err := fc.Clear(cmd.Context())
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "clear %s", fc.Dir())
	}
	w := cmd.OutOrStdout()
	if n == 0 {
		printInfo(w, "Cache is empty")
		return nil
	}
	printSuccess(w, "Cleared %d cached entries", n)
	printDetail(w, "Directory: %s", fc.Dir())
	return nil
}

func (c *CLI) openFileCache() (*cache.FileCache, error) {
	dir, err := c.cacheDir()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "locate cache directory")
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open cache %s", dir)
	}
	return fc, nil
}

// formatBytes renders n with a binary unit suffix.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
