package graph

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/matzehuels/geograph/pkg/digraph"
	"github.com/matzehuels/geograph/pkg/errors"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// Marshal converts a graph to canonical JSON bytes.
// Map keys are sorted, so output is deterministic.
func Marshal(g *digraph.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes g as indented canonical JSON to w.
func Write(g *digraph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToDocument(g)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode graph")
	}
	return nil
}

// Unmarshal decodes any accepted document variant into a new graph.
// Structural problems are reported with code ErrCodeInvalidFormat.
func Unmarshal(data []byte) (*digraph.Graph, error) {
	p, err := decode(data)
	if err != nil {
		return nil, err
	}
	return p.build()
}

// Read decodes a document from r. Read does not close r.
func Read(r io.Reader) (*digraph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read document")
	}
	return Unmarshal(data)
}
