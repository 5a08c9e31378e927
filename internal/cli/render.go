package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/render"
)

func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		scale   float64
		weights bool
		labels  bool
		noPlace bool
	)
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw a graph as Graphviz DOT or SVG",
		Long: `Render writes FILE as a drawing. The format follows the output extension:
.dot writes the DOT source and .svg runs the embedded Graphviz engine.

Nodes without a position are laid out first unless --no-layout is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return errors.New(errors.ErrCodeInvalidInput, "--output is required")
			}
			if err := errors.ValidateFilePath(output); err != nil {
				return err
			}
			ext := strings.ToLower(filepath.Ext(output))
			if ext != ".dot" && ext != ".svg" {
				return errors.New(errors.ErrCodeInvalidInput, "unsupported output format %q (want .dot or .svg)", ext)
			}

			a, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !noPlace {
				a.SetMissingPositions()
			}

			tm := startTimer(c.Logger, "file", args[0], "format", ext[1:])
			dot := render.ToDOT(a.Graph(), render.Options{Scale: scale, Weights: weights, Labels: labels})
			data := []byte(dot)
			if ext == ".svg" {
				if data, err = render.RenderSVG(cmd.Context(), dot); err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "render %s", args[0])
				}
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", output)
			}
			tm.info("rendered")

			w := cmd.OutOrStdout()
			printSuccess(w, "Rendered %s", args[0])
			printFile(w, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot or .svg)")
	cmd.Flags().Float64Var(&scale, "scale", render.DefaultScale, "coordinate scale in inches per world unit")
	cmd.Flags().BoolVar(&weights, "weights", false, "label edges with their weights")
	cmd.Flags().BoolVar(&labels, "labels", false, "use node labels instead of ids")
	cmd.Flags().BoolVar(&noPlace, "no-layout", false, "do not place unpositioned nodes")
	return cmd
}
