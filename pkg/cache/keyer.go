package cache

import "fmt"

// Keyer builds cache keys for graph queries. graph is a structural
// fingerprint, see [Fingerprint].
type Keyer interface {
	PathKey(graph string, src, dest int) string
	ComponentsKey(graph string) string
	ComponentKey(graph string, id int) string
}

// DefaultKeyer produces namespaced keys: readable ones for paths, hashed
// ones for components.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) PathKey(graph string, src, dest int) string {
	return fmt.Sprintf("path:%s:%d:%d", graph, src, dest)
}

func (DefaultKeyer) ComponentsKey(graph string) string { return hashKey("sccs", graph) }

func (DefaultKeyer) ComponentKey(graph string, id int) string { return hashKey("scc", graph, id) }

// ScopedKeyer prefixes every key of an inner Keyer, so entries written by
// different builds or configurations never collide in a shared cache.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheScope())
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or a DefaultKeyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) PathKey(graph string, src, dest int) string {
	return k.prefix + k.inner.PathKey(graph, src, dest)
}

func (k *ScopedKeyer) ComponentsKey(graph string) string {
	return k.prefix + k.inner.ComponentsKey(graph)
}

func (k *ScopedKeyer) ComponentKey(graph string, id int) string {
	return k.prefix + k.inner.ComponentKey(graph, id)
}
