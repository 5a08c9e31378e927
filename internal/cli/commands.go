package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/geograph/pkg/algo"
	"github.com/matzehuels/geograph/pkg/errors"
)

// load creates an Algo for path and loads it.
func (c *CLI) load(ctx context.Context, path string) (*algo.Algo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a := c.newAlgo(c.newCache())
	if err := a.LoadFile(ctx, path); err != nil {
		return nil, err
	}
	return a, nil
}

// =============================================================================
// info
// =============================================================================

type fileInfo struct {
	path       string
	nodes      int
	edges      int
	modCount   int
	components int
}

func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE...",
		Short: "Print node, edge and component counts",
		Long:  `Info loads each file concurrently and prints its vertex, edge and modification counts together with the number of strongly connected components.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			infos := make([]fileInfo, len(args))

			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(4)
			for i, path := range args {
				g.Go(func() error {
					a, err := c.load(gctx, path)
					if err != nil {
						return err
					}
					gr := a.Graph()
					fileLogger(gctx, path).Debug("loaded", "nodes", gr.VertexCount(), "edges", gr.EdgeCount())
					infos[i] = fileInfo{
						path:       path,
						nodes:      gr.VertexCount(),
						edges:      gr.EdgeCount(),
						modCount:   gr.ModCount(),
						components: len(a.ConnectedComponents()),
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, info := range infos {
				fmt.Fprintln(w, StyleTitle.Render(info.path))
				printStats(w, info.nodes, info.edges, info.components)
				printDetail(w, "modifications: %d", info.modCount)
			}
			loggerFromContext(ctx).Debug("info complete", "files", len(infos))
			return nil
		},
	}
}

// =============================================================================
// path
// =============================================================================

func (c *CLI) pathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path FILE SRC DEST",
		Short: "Print the shortest path between two nodes",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := errors.ParseNodeID(args[1])
			if err != nil {
				return err
			}
			dest, err := errors.ParseNodeID(args[2])
			if err != nil {
				return err
			}
			a, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			tm := startTimer(c.Logger, "src", src, "dest", dest)
			dist, path := a.ShortestPath(src, dest)
			w := cmd.OutOrStdout()
			if math.IsInf(dist, 1) {
				printWarning(w, "no path from %d to %d", src, dest)
				return nil
			}
			printKeyValue(w, "distance", strconv.FormatFloat(dist, 'g', -1, 64))
			printKeyValue(w, "path", formatIDs(path, " "+iconArrow+" "))
			tm.debug("shortest path")
			return nil
		},
	}
}

// =============================================================================
// scc
// =============================================================================

func (c *CLI) sccCommand() *cobra.Command {
	var node string
	cmd := &cobra.Command{
		Use:   "scc FILE",
		Short: "Print strongly connected components",
		Long:  `Scc prints every strongly connected component, or with --node only the component containing that node.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if node != "" {
				id, err := errors.ParseNodeID(node)
				if err != nil {
					return err
				}
				comp := a.ConnectedComponent(id)
				if comp == nil {
					printError(w, "node %d not found", id)
					return errors.New(errors.ErrCodeNotFound, "node %d not in %s", id, args[0])
				}
				fmt.Fprintln(w, formatIDs(comp, ", "))
				return nil
			}

			comps := a.ConnectedComponents()
			printInfo(w, "%s", plural(len(comps), "component"))
			printComponents(w, comps)
			return nil
		},
	}
	cmd.Flags().StringVar(&node, "node", "", "only print the component containing this node id")
	return cmd
}

// =============================================================================
// layout
// =============================================================================

func (c *CLI) layoutCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "layout FILE",
		Short: "Assign positions to nodes that have none",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := output
			if out == "" {
				out = args[0]
			}

			tm := startTimer(c.Logger, "file", args[0])
			res := a.SetMissingPositions()
			if err := a.SaveFile(cmd.Context(), out); err != nil {
				return err
			}
			tm.info("layout saved")

			w := cmd.OutOrStdout()
			printSuccess(w, "Placed %d nodes in %d components", res.Placed, res.Components)
			if res.Forced > 0 {
				printWarning(w, "%d nodes were placed closer than %g to a neighbour", res.Forced, res.Separation)
			}
			printFile(w, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite FILE)")
	return cmd
}

// =============================================================================
// convert
// =============================================================================

func (c *CLI) convertCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Rewrite a graph document in the canonical schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return errors.New(errors.ErrCodeInvalidInput, "--output is required")
			}
			a, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := a.SaveFile(cmd.Context(), output); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printSuccess(w, "Converted %s", args[0])
			printFile(w, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	return cmd
}
