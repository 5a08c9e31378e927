package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/geograph/pkg/digraph"
)

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey returns "namespace:<hex sha256 of parts>".
func hashKey(namespace string, parts ...any) string {
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = fmt.Sprint(p)
	}
	return namespace + ":" + Hash([]byte(strings.Join(strs, "\x1f")))
}

// Fingerprint hashes the structure of g: its node ids and weighted edges in
// sorted order. Positions and payload fields are excluded, so two graphs
// with equal fingerprints have the same paths and components.
func Fingerprint(g *digraph.Graph) string {
	h := sha256.New()
	buf := make([]byte, 0, 64)
	for _, id := range g.NodeIDs() {
		buf = append(buf[:0], 'n')
		buf = strconv.AppendInt(buf, int64(id), 10)
		buf = append(buf, '\n')
		h.Write(buf)
	}
	for _, e := range g.Edges() {
		buf = append(buf[:0], 'e')
		buf = strconv.AppendInt(buf, int64(e.Src), 10)
		buf = append(buf, '>')
		buf = strconv.AppendInt(buf, int64(e.Dest), 10)
		buf = append(buf, ':')
		buf = strconv.AppendFloat(buf, e.Weight, 'g', -1, 64)
		buf = append(buf, '\n')
		h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil))
}
