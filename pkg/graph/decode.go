package graph

import (
	"bytes"
	"encoding/json"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/matzehuels/geograph/pkg/digraph"
	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/geo"
)

// object is a JSON object with its values left undecoded.
type object map[string]json.RawMessage

// first returns the value of the first key present with a non-null value.
func (o object) first(keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		if v, ok := o[k]; ok && !isNull(v) {
			return v, true
		}
	}
	return nil, false
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// entry is one element of a collection that may be a map or a list. key is
// empty for list elements.
type entry struct {
	key string
	raw json.RawMessage
}

func entries(raw json.RawMessage) ([]entry, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.Format("empty collection")
	}
	switch trimmed[0] {
	case '{':
		var m object
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode collection")
		}
		out := make([]entry, 0, len(m))
		for _, k := range slices.Sorted(maps.Keys(m)) {
			out = append(out, entry{key: k, raw: m[k]})
		}
		return out, nil
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode collection")
		}
		out := make([]entry, len(list))
		for i, v := range list {
			out[i] = entry{raw: v}
		}
		return out, nil
	default:
		return nil, errors.Format("collection must be an object or a list")
	}
}

// decode parses any accepted document variant.
func decode(data []byte) (parsed, error) {
	var root object
	if err := unmarshalJSON(data, &root); err != nil {
		return parsed{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode document")
	}

	nodesRaw, ok := root.first("nodes", "Nodes")
	if !ok {
		return parsed{}, errors.Format("missing node collection")
	}
	edgesRaw, ok := root.first("links", "Edges", "edges")
	if !ok {
		return parsed{}, errors.Format("missing edge collection")
	}

	var (
		p   parsed
		err error
	)
	if p.nodes, err = decodeNodes(nodesRaw); err != nil {
		return parsed{}, err
	}
	if p.edges, err = decodeEdges(edgesRaw); err != nil {
		return parsed{}, err
	}
	if raw, ok := root.first("modeCount"); ok {
		n, err := decodeInt(raw)
		if err != nil {
			return parsed{}, errors.Format("modeCount: %v", err)
		}
		p.modCount = &n
	}
	return p, nil
}

func decodeNodes(raw json.RawMessage) ([]digraph.Node, error) {
	items, err := entries(raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "nodes")
	}
	nodes := make([]digraph.Node, 0, len(items))
	for i, it := range items {
		n, err := decodeNode(it)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "node #%d", i)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func decodeNode(it entry) (digraph.Node, error) {
	var obj object
	if err := json.Unmarshal(it.raw, &obj); err != nil || obj == nil {
		return digraph.Node{}, errors.Format("node must be an object")
	}

	var n digraph.Node
	if raw, ok := obj.first("id", "key"); ok {
		id, err := decodeInt(raw)
		if err != nil {
			return n, errors.Format("id: %v", err)
		}
		n.ID = id
	} else if it.key != "" {
		id, err := strconv.Atoi(it.key)
		if err != nil {
			return n, errors.Format("id: invalid map key %q", it.key)
		}
		n.ID = id
	} else {
		return n, errors.Format("node without id")
	}

	if raw, ok := obj.first("pos", "geoLocation"); ok {
		p, err := decodePoint(raw)
		if err != nil {
			return n, errors.Format("node %d: %v", n.ID, err)
		}
		n.Position = &p
	}
	if raw, ok := obj.first("weight"); ok {
		w, err := decodeFloat(raw)
		if err != nil {
			return n, errors.Format("node %d: weight: %v", n.ID, err)
		}
		n.Weight = w
	}
	if raw, ok := obj.first("info"); ok {
		if err := json.Unmarshal(raw, &n.Label); err != nil {
			return n, errors.Format("node %d: info must be a string", n.ID)
		}
	}
	if raw, ok := obj.first("tag"); ok {
		tag, err := decodeInt(raw)
		if err != nil {
			return n, errors.Format("node %d: tag: %v", n.ID, err)
		}
		n.Scratch = tag
	}
	return n, nil
}

func decodeEdges(raw json.RawMessage) ([]digraph.Edge, error) {
	items, err := entries(raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "edges")
	}
	var edges []digraph.Edge
	for _, it := range items {
		if it.key == "" {
			e, err := decodeEdge(it.raw, "", "")
			if err != nil {
				return nil, err
			}
			edges = append(edges, e)
			continue
		}
		// Adjacency map: src -> dest -> edge.
		inner, err := entries(it.raw)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "links of %s", it.key)
		}
		for _, in := range inner {
			e, err := decodeEdge(in.raw, it.key, in.key)
			if err != nil {
				return nil, err
			}
			edges = append(edges, e)
		}
	}
	return edges, nil
}

func decodeEdge(raw json.RawMessage, srcKey, destKey string) (digraph.Edge, error) {
	var obj object
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return digraph.Edge{}, errors.Format("edge must be an object")
	}

	e := digraph.Edge{Scratch: digraph.InvalidTag}
	var err error
	if e.Src, err = endpoint(obj, "src", srcKey); err != nil {
		return e, err
	}
	if e.Dest, err = endpoint(obj, "dest", destKey); err != nil {
		return e, err
	}

	wraw, ok := obj.first("weight", "w")
	if !ok {
		return e, errors.Format("edge %d->%d: missing weight", e.Src, e.Dest)
	}
	if e.Weight, err = decodeFloat(wraw); err != nil {
		return e, errors.Format("edge %d->%d: weight: %v", e.Src, e.Dest, err)
	}
	if raw, ok := obj.first("info"); ok {
		if err := json.Unmarshal(raw, &e.Label); err != nil {
			return e, errors.Format("edge %d->%d: info must be a string", e.Src, e.Dest)
		}
	}
	if raw, ok := obj.first("tag"); ok {
		if e.Scratch, err = decodeInt(raw); err != nil {
			return e, errors.Format("edge %d->%d: tag: %v", e.Src, e.Dest, err)
		}
	}
	return e, nil
}

func endpoint(obj object, field, key string) (int, error) {
	if raw, ok := obj.first(field); ok {
		id, err := decodeInt(raw)
		if err != nil {
			return 0, errors.Format("edge %s: %v", field, err)
		}
		return id, nil
	}
	if key != "" {
		id, err := strconv.Atoi(key)
		if err != nil {
			return 0, errors.Format("edge %s: invalid map key %q", field, key)
		}
		return id, nil
	}
	return 0, errors.Format("edge without %s", field)
}

// decodeInt accepts a JSON number or a numeric string holding an integral
// value.
func decodeInt(raw json.RawMessage) (int, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, errors.Format("not a number: %s", raw)
	}
	if i, err := strconv.Atoi(n.String()); err == nil {
		return i, nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) {
		return 0, errors.Format("not an integer: %s", n)
	}
	// float64(math.MaxInt) rounds up to 2^63, which is itself out of range.
	if f < math.MinInt || f >= math.MaxInt {
		return 0, errors.Format("integer out of range: %s", n)
	}
	return int(f), nil
}

func decodeFloat(raw json.RawMessage) (float64, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, errors.Format("not a number: %s", raw)
	}
	f, err := n.Float64()
	if err != nil {
		return 0, errors.Format("not a number: %s", n)
	}
	return f, nil
}

// decodePoint accepts "x,y,z" or {"x": ..., "y": ..., "z": ...}.
func decodePoint(raw json.RawMessage) (geo.Point, error) {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) > 0 && trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return geo.Point{}, errors.Format("position: %v", err)
		}
		p, err := geo.ParsePoint(s)
		if err != nil {
			return geo.Point{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "position")
		}
		return p, nil
	case len(trimmed) > 0 && trimmed[0] == '{':
		var p geo.Point
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return geo.Point{}, errors.Format("position: %v", err)
		}
		if !p.Finite() {
			return geo.Point{}, errors.Format("position %v is not finite", p)
		}
		return p, nil
	default:
		return geo.Point{}, errors.Format("position must be a string or an object")
	}
}
