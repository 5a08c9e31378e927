// Package graph provides the JSON document format for geograph graphs.
//
// This package sits at the serialization boundary between [digraph.Graph]
// and files or other tools. It always writes one canonical schema and reads
// that schema plus the variants produced by older tools.
//
// # Canonical Schema
//
//	{
//	  "modeCount": 5,
//	  "edgeCount": 2,
//	  "nodes": {
//	    "0": {"key": 0, "weight": 0, "info": "", "tag": 0, "geoLocation": {"x": 1, "y": 2, "z": 0}},
//	    "1": {"key": 1, "weight": 0, "info": "", "tag": 0}
//	  },
//	  "links": {
//	    "0": {"1": {"src": 0, "dest": 1, "weight": 1.5, "info": "", "tag": -1}},
//	    "1": {}
//	  }
//	}
//
// Every node id appears under "links", with an empty object when the node has
// no outgoing edges. Map keys are decimal node ids.
//
// # Accepted Variants
//
// [Unmarshal] and [Read] also accept:
//
//   - "Nodes" (a list of {"id", "pos"}) in place of "nodes"; "nodes" itself may
//     be a map or a list
//   - "Edges" (a list of {"src", "dest", "w"}) in place of "links"
//   - a node id under "id" or "key", as a number or a numeric string
//   - a position under "pos" or "geoLocation", as "x,y,z" or {"x","y","z"}
//   - an edge weight under "weight" or "w"
//
// Both a node collection and an edge collection are required, even if empty.
// Input that is not valid JSON is passed through jsonrepair once before it is
// rejected, which tolerates trailing commas, single quotes and similar
// producer glitches.
//
// # Errors
//
// Every structural problem is reported with code
// [errors.ErrCodeInvalidFormat]: missing collections, nodes without ids,
// malformed positions, edges without endpoints or weight, and edges the store
// rejects (unknown endpoint, self-loop, duplicate).
//
// # Modification Counter
//
// Nodes are added first, then edges; the stored "modeCount" is applied last,
// so a loaded graph reports the counter it was saved with.
//
// [digraph.Graph]: github.com/matzehuels/geograph/pkg/digraph.Graph
// [errors.ErrCodeInvalidFormat]: github.com/matzehuels/geograph/pkg/errors.ErrCodeInvalidFormat
package graph
