package graph

import (
	"maps"
	"slices"
	"strconv"

	"github.com/matzehuels/geograph/pkg/digraph"
	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/geo"
)

// =============================================================================
// Document - Canonical Serialization
// =============================================================================

// Document is the canonical serialization of a graph.
type Document struct {
	ModeCount int                           `json:"modeCount"`
	EdgeCount int                           `json:"edgeCount"`
	Nodes     map[string]NodeDoc            `json:"nodes"`
	Links     map[string]map[string]EdgeDoc `json:"links"`
}

// NodeDoc is one entry of Document.Nodes.
type NodeDoc struct {
	Key         int        `json:"key"`
	Weight      float64    `json:"weight"`
	Info        string     `json:"info"`
	Tag         int        `json:"tag"`
	GeoLocation *geo.Point `json:"geoLocation,omitempty"`
}

// EdgeDoc is one entry of Document.Links.
type EdgeDoc struct {
	Src    int     `json:"src"`
	Dest   int     `json:"dest"`
	Weight float64 `json:"weight"`
	Info   string  `json:"info"`
	Tag    int     `json:"tag"`
}

// ToDocument converts g into its canonical document.
func ToDocument(g *digraph.Graph) Document {
	doc := Document{
		ModeCount: g.ModCount(),
		EdgeCount: g.EdgeCount(),
		Nodes:     make(map[string]NodeDoc, g.VertexCount()),
		Links:     make(map[string]map[string]EdgeDoc, g.VertexCount()),
	}
	for _, id := range g.NodeIDs() {
		n, _ := g.Node(id)
		key := strconv.Itoa(id)
		nd := NodeDoc{Key: id, Weight: n.Weight, Info: n.Label, Tag: n.Scratch}
		if n.Position != nil {
			p := *n.Position
			nd.GeoLocation = &p
		}
		doc.Nodes[key] = nd
		doc.Links[key] = map[string]EdgeDoc{}
	}
	for _, e := range g.Edges() {
		doc.Links[strconv.Itoa(e.Src)][strconv.Itoa(e.Dest)] = EdgeDoc{
			Src:    e.Src,
			Dest:   e.Dest,
			Weight: e.Weight,
			Info:   e.Label,
			Tag:    e.Scratch,
		}
	}
	return doc
}

// FromDocument builds a graph from a canonical document. Node ids come from
// NodeDoc.Key and edge endpoints from EdgeDoc; map keys only order the replay.
func FromDocument(doc Document) (*digraph.Graph, error) {
	if doc.Nodes == nil {
		return nil, errors.Format("missing node collection")
	}
	if doc.Links == nil {
		return nil, errors.Format("missing edge collection")
	}

	var p parsed
	for _, key := range slices.Sorted(maps.Keys(doc.Nodes)) {
		nd := doc.Nodes[key]
		n := digraph.Node{ID: nd.Key, Weight: nd.Weight, Label: nd.Info, Scratch: nd.Tag}
		if nd.GeoLocation != nil {
			pos := *nd.GeoLocation
			n.Position = &pos
		}
		p.nodes = append(p.nodes, n)
	}
	for _, src := range slices.Sorted(maps.Keys(doc.Links)) {
		out := doc.Links[src]
		for _, dest := range slices.Sorted(maps.Keys(out)) {
			ed := out[dest]
			p.edges = append(p.edges, digraph.Edge{
				Src:     ed.Src,
				Dest:    ed.Dest,
				Weight:  ed.Weight,
				Label:   ed.Info,
				Scratch: ed.Tag,
			})
		}
	}
	mc := doc.ModeCount
	p.modCount = &mc
	return p.build()
}

// =============================================================================
// Graph Assembly
// =============================================================================

// parsed is a decoded document before it is replayed into a store.
type parsed struct {
	nodes    []digraph.Node
	edges    []digraph.Edge
	modCount *int
}

func (p parsed) build() (*digraph.Graph, error) {
	g := digraph.New()
	for _, n := range p.nodes {
		if !g.PutNode(n) {
			return nil, errors.Format("duplicate node %d", n.ID)
		}
	}
	for _, e := range p.edges {
		if g.PutEdge(e) {
			continue
		}
		switch {
		case e.Src == e.Dest:
			return nil, errors.Format("edge %d->%d: self-loop", e.Src, e.Dest)
		case !g.HasNode(e.Src) || !g.HasNode(e.Dest):
			return nil, errors.Format("edge %d->%d: unknown endpoint", e.Src, e.Dest)
		default:
			return nil, errors.Format("edge %d->%d: duplicate edge", e.Src, e.Dest)
		}
	}
	if p.modCount != nil {
		g.RestoreModCount(*p.modCount)
	}
	return g, nil
}
