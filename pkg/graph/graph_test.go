package graph

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/geograph/pkg/digraph"
	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/geo"
)

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return data
}

func point(x, y, z float64) *geo.Point { return &geo.Point{X: x, Y: y, Z: z} }

func TestToDocument(t *testing.T) {
	g := digraph.New()
	g.AddNode(0, point(1, 2, 3))
	g.AddNode(1, nil)
	g.AddNode(2, nil)
	g.AddEdge(0, 1, 1.5)

	want := Document{
		ModeCount: 4,
		EdgeCount: 1,
		Nodes: map[string]NodeDoc{
			"0": {Key: 0, GeoLocation: point(1, 2, 3)},
			"1": {Key: 1},
			"2": {Key: 2},
		},
		Links: map[string]map[string]EdgeDoc{
			"0": {"1": {Src: 0, Dest: 1, Weight: 1.5, Tag: digraph.InvalidTag}},
			"1": {},
			"2": {},
		},
	}
	if diff := cmp.Diff(want, ToDocument(g)); diff != "" {
		t.Errorf("ToDocument mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	g := digraph.New()
	g.PutNode(digraph.Node{ID: 4, Position: point(-1, 0.5, 2), Weight: 3, Label: "hub", Scratch: 7})
	g.AddNode(9, nil)
	g.AddNode(10, point(0, 0, 0))
	g.PutEdge(digraph.Edge{Src: 4, Dest: 9, Weight: 0.25, Label: "a", Scratch: 2})
	g.AddEdge(9, 10, 4)
	g.AddEdge(10, 4, 0)
	g.RemoveEdge(10, 4)

	data, err := Marshal(g)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if diff := cmp.Diff(ToDocument(g), ToDocument(got)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if got.ModCount() != g.ModCount() {
		t.Errorf("ModCount = %d, want %d", got.ModCount(), g.ModCount())
	}
}

func TestMarshal_Deterministic(t *testing.T) {
	build := func() *digraph.Graph {
		g := digraph.New()
		for i := range 20 {
			g.AddNode(i, point(float64(i), 0, 0))
		}
		for i := range 19 {
			g.AddEdge(i, i+1, float64(i))
		}
		return g
	}
	a, err := Marshal(build())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Marshal(build())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("Marshal output differs between identical graphs")
	}
}

func TestUnmarshal_Canonical(t *testing.T) {
	g, err := Unmarshal(readTestdata(t, "canonical.json"))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if g.VertexCount() != 3 || g.EdgeCount() != 3 {
		t.Errorf("counts = %d/%d, want 3/3", g.VertexCount(), g.EdgeCount())
	}
	if g.ModCount() != 9 {
		t.Errorf("ModCount = %d, want 9 (restored from document)", g.ModCount())
	}
	n, _ := g.Node(1)
	if n.Label != "depot" || n.Weight != 0.5 {
		t.Errorf("node 1 payload = %q/%v", n.Label, n.Weight)
	}
	e, _ := g.Edge(1, 2)
	if e.Label != "road" || e.Weight != 2 {
		t.Errorf("edge 1->2 payload = %q/%v", e.Label, e.Weight)
	}
	if n2, _ := g.Node(2); n2.HasPosition() {
		t.Error("node 2 should have no position")
	}
}

func TestUnmarshal_AlternateMatchesCanonical(t *testing.T) {
	alt, err := Unmarshal(readTestdata(t, "alternate.json"))
	if err != nil {
		t.Fatalf("Unmarshal alternate: %v", err)
	}
	canon, err := Unmarshal(readTestdata(t, "canonical.json"))
	if err != nil {
		t.Fatalf("Unmarshal canonical: %v", err)
	}

	// Payload and counters differ; structure and positions must agree.
	strip := func(d Document) Document {
		d.ModeCount = 0
		for k, n := range d.Nodes {
			n.Weight, n.Info = 0, ""
			d.Nodes[k] = n
		}
		for _, out := range d.Links {
			for k, e := range out {
				e.Info = ""
				out[k] = e
			}
		}
		return d
	}
	if diff := cmp.Diff(strip(ToDocument(canon)), strip(ToDocument(alt))); diff != "" {
		t.Errorf("alternate schema mismatch (-canonical +alternate):\n%s", diff)
	}
	if alt.ModCount() != 6 {
		t.Errorf("ModCount = %d, want 6 without a stored counter", alt.ModCount())
	}
}

func TestUnmarshal_Repair(t *testing.T) {
	g, err := Unmarshal(readTestdata(t, "trailing_commas.json"))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if w, ok := g.OutEdges(0)[1]; !ok || w != 3 {
		t.Errorf("edge 0->1 = %v, %v; want 3, true", w, ok)
	}
}

func TestUnmarshal_Variants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, g *digraph.Graph)
	}{
		{
			name:  "NodeListWithKey",
			input: `{"nodes": [{"key": 5, "geoLocation": {"x": 1, "y": 2, "z": 3}}], "links": {}}`,
			check: func(t *testing.T, g *digraph.Graph) {
				n, ok := g.Node(5)
				if !ok || n.Position == nil || *n.Position != geo.Pt(1, 2, 3) {
					t.Errorf("node 5 = %+v", n)
				}
			},
		},
		{
			name:  "NumericStringID",
			input: `{"Nodes": [{"id": "12"}, {"id": 13.0}], "Edges": []}`,
			check: func(t *testing.T, g *digraph.Graph) {
				if !g.HasNode(12) || !g.HasNode(13) {
					t.Errorf("ids = %v, want [12 13]", g.NodeIDs())
				}
			},
		},
		{
			name:  "NodeMapKeyAsID",
			input: `{"nodes": {"7": {}}, "links": {"7": {}}}`,
			check: func(t *testing.T, g *digraph.Graph) {
				if !g.HasNode(7) {
					t.Errorf("ids = %v, want [7]", g.NodeIDs())
				}
			},
		},
		{
			name:  "LinksKeysAsEndpoints",
			input: `{"nodes": [{"id": 0}, {"id": 1}], "links": {"0": {"1": {"weight": 2}}, "1": {}}}`,
			check: func(t *testing.T, g *digraph.Graph) {
				if w := g.OutEdges(0)[1]; w != 2 {
					t.Errorf("weight = %v, want 2", w)
				}
			},
		},
		{
			name:  "EdgeListWeightField",
			input: `{"Nodes": [{"id": 0}, {"id": 1}], "Edges": [{"src": 1, "dest": 0, "weight": 0.5}]}`,
			check: func(t *testing.T, g *digraph.Graph) {
				e, ok := g.Edge(1, 0)
				if !ok || e.Weight != 0.5 || e.Scratch != digraph.InvalidTag {
					t.Errorf("edge = %+v, %v", e, ok)
				}
			},
		},
		{
			name:  "PositionWithSpaces",
			input: `{"Nodes": [{"id": 0, "pos": " 1.5, -2 ,0 "}], "Edges": []}`,
			check: func(t *testing.T, g *digraph.Graph) {
				n, _ := g.Node(0)
				if n.Position == nil || *n.Position != geo.Pt(1.5, -2, 0) {
					t.Errorf("pos = %v", n.Position)
				}
			},
		},
		{
			name:  "NullPositionIgnored",
			input: `{"Nodes": [{"id": 0, "pos": null}], "Edges": []}`,
			check: func(t *testing.T, g *digraph.Graph) {
				if n, _ := g.Node(0); n.HasPosition() {
					t.Error("null pos should leave node unpositioned")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Unmarshal([]byte(tt.input))
			if err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			tt.check(t, g)
		})
	}
}

func TestUnmarshal_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"MissingNodes", `{"links": {}}`},
		{"MissingEdges", `{"nodes": []}`},
		{"NullNodes", `{"nodes": null, "links": {}}`},
		{"NodesNotCollection", `{"nodes": 3, "links": {}}`},
		{"NodeWithoutID", `{"Nodes": [{"pos": "1,2,3"}], "Edges": []}`},
		{"NodeIDNotInteger", `{"Nodes": [{"id": 1.5}], "Edges": []}`},
		{"NodeIDNotNumeric", `{"Nodes": [{"id": "abc"}], "Edges": []}`},
		{"DuplicateNode", `{"Nodes": [{"id": 1}, {"id": 1}], "Edges": []}`},
		{"PositionTwoComponents", `{"Nodes": [{"id": 0, "pos": "1,2"}], "Edges": []}`},
		{"PositionNotNumeric", `{"Nodes": [{"id": 0, "pos": "a,b,c"}], "Edges": []}`},
		{"PositionNaN", `{"Nodes": [{"id": 0, "pos": "NaN,0,0"}], "Edges": []}`},
		{"PositionInf", `{"Nodes": [{"id": 0, "pos": "inf,1,2"}], "Edges": []}`},
		{"PositionNegativeInf", `{"Nodes": [{"id": 0, "pos": "1,-Inf,0"}], "Edges": []}`},
		{"PositionObjectOverflow", `{"Nodes": [{"id": 0, "pos": {"x": 1e400, "y": 0, "z": 0}}], "Edges": []}`},
		{"NodeIDOutOfRange", `{"Nodes": [{"id": 1e300}], "Edges": []}`},
		{"EdgeSrcOutOfRange", `{"Nodes": [{"id": 0}], "Edges": [{"src": -1e19, "dest": 0, "w": 1}]}`},
		{"PositionWrongType", `{"Nodes": [{"id": 0, "pos": 4}], "Edges": []}`},
		{"EdgeWithoutSrc", `{"Nodes": [{"id": 0}, {"id": 1}], "Edges": [{"dest": 1, "w": 1}]}`},
		{"EdgeWithoutDest", `{"Nodes": [{"id": 0}, {"id": 1}], "Edges": [{"src": 0, "w": 1}]}`},
		{"EdgeWithoutWeight", `{"Nodes": [{"id": 0}, {"id": 1}], "Edges": [{"src": 0, "dest": 1}]}`},
		{"UnknownEndpoint", `{"Nodes": [{"id": 0}], "Edges": [{"src": 0, "dest": 9, "w": 1}]}`},
		{"SelfLoop", `{"Nodes": [{"id": 0}], "Edges": [{"src": 0, "dest": 0, "w": 1}]}`},
		{"DuplicateEdge", `{"Nodes": [{"id": 0}, {"id": 1}], "Edges": [{"src": 0, "dest": 1, "w": 1}, {"src": 0, "dest": 1, "w": 2}]}`},
		{"RootNotObject", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Unmarshal([]byte(tt.input))
			if err == nil {
				t.Fatalf("Unmarshal succeeded with %d nodes, want error", g.VertexCount())
			}
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("code = %q, want %q (err: %v)", errors.GetCode(err), errors.ErrCodeInvalidFormat, err)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestWrite_Error(t *testing.T) {
	err := Write(digraph.New(), failingWriter{})
	if err == nil {
		t.Fatal("Write to a failing writer succeeded")
	}
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("code = %q, want %q (err: %v)", errors.GetCode(err), errors.ErrCodeInternal, err)
	}
}

func TestDecodePoint_ObjectFinite(t *testing.T) {
	p, err := decodePoint([]byte(`{"x": 1.5, "y": -2, "z": 0}`))
	if err != nil {
		t.Fatalf("decodePoint: %v", err)
	}
	if p != geo.Pt(1.5, -2, 0) {
		t.Errorf("decodePoint = %v", p)
	}
}

func TestFromDocument(t *testing.T) {
	doc := Document{
		ModeCount: 42,
		Nodes: map[string]NodeDoc{
			"0": {Key: 0, GeoLocation: point(0, 0, 0)},
			"1": {Key: 1, Tag: 3},
		},
		Links: map[string]map[string]EdgeDoc{
			"0": {"1": {Src: 0, Dest: 1, Weight: 2, Tag: -1}},
		},
	}
	g, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	if g.ModCount() != 42 {
		t.Errorf("ModCount = %d, want 42", g.ModCount())
	}
	if n, _ := g.Node(1); n.Scratch != 3 {
		t.Errorf("node 1 tag = %d, want 3", n.Scratch)
	}

	if _, err := FromDocument(Document{Nodes: map[string]NodeDoc{}}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("missing links: err = %v, want INVALID_FORMAT", err)
	}
}

func TestRead(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "alternate.json"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if g.VertexCount() != 3 {
		t.Errorf("VertexCount = %d, want 3", g.VertexCount())
	}
}
