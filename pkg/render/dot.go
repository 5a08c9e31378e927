package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/geograph/pkg/digraph"
)

// DefaultScale maps one world unit to one inch of drawing.
const DefaultScale = 1.0

// Options configures DOT generation.
type Options struct {
	// Scale multiplies stored coordinates before they are pinned.
	// Zero means DefaultScale.
	Scale float64

	// Weights labels each edge with its weight.
	Weights bool

	// Labels uses the node label, when set, instead of the numeric id.
	Labels bool
}

// ToDOT converts g to Graphviz DOT. Output is deterministic: nodes are
// emitted in ascending id order and edges in (src, dest) order.
func ToDOT(g *digraph.Graph, opts Options) string {
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for _, id := range g.NodeIDs() {
		n, _ := g.Node(id)
		fmt.Fprintf(&buf, "  %q [%s];\n", strconv.Itoa(id), strings.Join(nodeAttrs(n, opts.Labels, scale), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		src, dest := strconv.Itoa(e.Src), strconv.Itoa(e.Dest)
		if opts.Weights {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", src, dest, fmtFloat(e.Weight))
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", src, dest)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n *digraph.Node, labels bool, scale float64) []string {
	label := strconv.Itoa(n.ID)
	if labels && n.Label != "" {
		label = n.Label
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.HasPosition() {
		p := n.Position
		attrs = append(attrs, fmt.Sprintf("pos=\"%s,%s!\"", fmtFloat(p.X*scale), fmtFloat(p.Y*scale)))
	}
	return attrs
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// RenderSVG renders a DOT document to SVG with the neato engine, which
// honours pinned node positions.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
