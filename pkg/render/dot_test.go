package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/geograph/pkg/digraph"
	"github.com/matzehuels/geograph/pkg/geo"
)

func sample(t *testing.T) *digraph.Graph {
	t.Helper()
	g := digraph.New()
	p := geo.Pt(0.5, 2, 0)
	require.True(t, g.AddNode(1, &p))
	require.True(t, g.PutNode(digraph.Node{ID: 0, Label: "depot"}))
	require.True(t, g.AddEdge(1, 0, 2.5))
	require.True(t, g.AddEdge(0, 1, 1))
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sample(t), Options{})

	assert.True(t, strings.HasPrefix(dot, "digraph G {\n"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `"0" [label="0"];`)
	assert.Contains(t, dot, `"1" [label="1", pos="0.5,2!"];`)
	assert.Contains(t, dot, `"0" -> "1";`)
	assert.Contains(t, dot, `"1" -> "0";`)
	assert.Less(t, strings.Index(dot, `"0" [`), strings.Index(dot, `"1" [`))
	assert.Less(t, strings.Index(dot, `"0" -> "1"`), strings.Index(dot, `"1" -> "0"`))
}

func TestToDOTOptions(t *testing.T) {
	dot := ToDOT(sample(t), Options{Scale: 2, Weights: true, Labels: true})

	assert.Contains(t, dot, `"0" [label="depot"];`)
	assert.Contains(t, dot, `pos="1,4!"`)
	assert.Contains(t, dot, `"1" -> "0" [label="2.5"];`)
	assert.Contains(t, dot, `"0" -> "1" [label="1"];`)
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(digraph.New(), Options{})
	assert.NotContains(t, dot, "->")
	assert.NotContains(t, dot, "label=")
}

func TestToDOTDeterministic(t *testing.T) {
	g := sample(t)
	assert.Equal(t, ToDOT(g, Options{Weights: true}), ToDOT(g, Options{Weights: true}))
}
