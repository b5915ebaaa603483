// Package propmap provides the property-map abstraction that decouples
// per-vertex/per-edge state from a graph's own storage.
//
// Two flavours are provided: internal maps, which route get/set through a
// pair of accessor functions into the graph's own payload slot, and
// external maps (table- and dictionary-backed), which own their storage and
// outlive any single algorithm invocation. A TransformingPropertyMap
// composes an external or internal map with a read/write pair to project
// onto a sub-field of a larger value, mirroring the teacher's internal
// Vertex/Edge.Metadata convention but made generic and type-safe.
//
// Contract: Get is pure. Set(k, g, v) is the only mutating path; whether it
// touches g or the map's own storage is an implementation detail the caller
// never needs to know. Reading a missing key from a DictionaryPropertyMap,
// or an out-of-range index from a TablePropertyMap, is a programmer error
// and panics rather than returning a zero value.
package propmap

import "fmt"

// PropertyMap is a key -> value association keyed by either a VId or an
// EId, with access routed through the owning graph g (which may be nil for
// maps that never touch it).
type PropertyMap[G any, K comparable, V any] interface {
	// Get returns the value currently associated with k.
	Get(g *G, k K) V
	// Set associates v with k, mutating either g or the map's own storage.
	Set(g *G, k K, v V)
}

// InternalPropertyMap routes get/set through a pair of accessor closures
// into the owning graph's own payload slot. It carries zero extra storage
// of its own.
type InternalPropertyMap[G any, K comparable, V any] struct {
	GetFn func(g *G, k K) V
	SetFn func(g *G, k K, v V)
}

// Get implements PropertyMap.
func (m InternalPropertyMap[G, K, V]) Get(g *G, k K) V { return m.GetFn(g, k) }

// Set implements PropertyMap.
func (m InternalPropertyMap[G, K, V]) Set(g *G, k K, v V) { m.SetFn(g, k, v) }

// TablePropertyMap is a dense, array-backed external property map keyed by
// a zero-based integer index (typically a dense VId, or an EId the caller
// has translated to an index). Reads and writes ignore the graph argument.
type TablePropertyMap[G any, V any] struct {
	values []V
}

// NewTablePropertyMap allocates a table of size n, every slot initialized
// to fill.
func NewTablePropertyMap[G any, V any](n int, fill V) *TablePropertyMap[G, V] {
	values := make([]V, n)
	for i := range values {
		values[i] = fill
	}
	return &TablePropertyMap[G, V]{values: values}
}

// Get returns the value stored at index k. Panics if k is out of range.
func (m *TablePropertyMap[G, V]) Get(_ *G, k int) V {
	if k < 0 || k >= len(m.values) {
		panic(fmt.Sprintf("propmap: index %d out of range [0,%d)", k, len(m.values)))
	}
	return m.values[k]
}

// Set overwrites the value stored at index k. Panics if k is out of range.
func (m *TablePropertyMap[G, V]) Set(_ *G, k int, v V) {
	if k < 0 || k >= len(m.values) {
		panic(fmt.Sprintf("propmap: index %d out of range [0,%d)", k, len(m.values)))
	}
	m.values[k] = v
}

// Len reports the table's size.
func (m *TablePropertyMap[G, V]) Len() int { return len(m.values) }

// DictionaryPropertyMap is a hash-table backed external property map keyed
// by any comparable key. Unlike TablePropertyMap it grows on demand, but
// reading a key that was never Set is a programmer error.
type DictionaryPropertyMap[G any, K comparable, V any] struct {
	values map[K]V
}

// NewDictionaryPropertyMap returns an empty dictionary property map.
func NewDictionaryPropertyMap[G any, K comparable, V any]() *DictionaryPropertyMap[G, K, V] {
	return &DictionaryPropertyMap[G, K, V]{values: make(map[K]V)}
}

// Get returns the value associated with k. Panics if k was never Set.
func (m *DictionaryPropertyMap[G, K, V]) Get(_ *G, k K) V {
	v, ok := m.values[k]
	if !ok {
		panic(fmt.Sprintf("propmap: key %v not present", k))
	}
	return v
}

// Set associates v with k, creating the backing map lazily.
func (m *DictionaryPropertyMap[G, K, V]) Set(_ *G, k K, v V) {
	if m.values == nil {
		m.values = make(map[K]V)
	}
	m.values[k] = v
}

// Has reports whether k currently has an associated value, without
// panicking.
func (m *DictionaryPropertyMap[G, K, V]) Has(k K) bool {
	_, ok := m.values[k]
	return ok
}

// TransformingPropertyMap projects an inner map of type V through a
// read/write accessor pair onto a sub-field of type W, so that a single
// wide struct can back several independent property maps.
type TransformingPropertyMap[G any, K comparable, V any, W any] struct {
	Inner PropertyMap[G, K, V]
	Read  func(V) W
	Write func(old *V, w W)
}

// Get implements PropertyMap.
func (m TransformingPropertyMap[G, K, V, W]) Get(g *G, k K) W {
	return m.Read(m.Inner.Get(g, k))
}

// Set implements PropertyMap.
func (m TransformingPropertyMap[G, K, V, W]) Set(g *G, k K, w W) {
	v := m.Inner.Get(g, k)
	m.Write(&v, w)
	m.Inner.Set(g, k, v)
}
