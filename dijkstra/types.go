// Package dijkstra implements Dijkstra's shortest-paths algorithm (spec
// component C7) by driving bfs.Walk with a priority queue and performing
// distance relaxation inside the translated event stream.
//
// Errors:
//   - ErrGoalUnreachable is returned by ShortestPath when goal was never
//     reached. ErrNotFound is declared but no function in this package
//     returns it.
package dijkstra

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/arvonlabs/graphkit/propmap"
)

// ErrNotFound names a lookup of a key a DistanceMap never recorded. Neither
// map in this package returns it: DictionaryDistanceMap reads unset keys as
// infinity, and TableDistanceMap panics on an out-of-range index.
var ErrNotFound = errors.New("dijkstra: key not found")

// Distance is the numeric type shortest-path lengths and accumulated
// distances are expressed in. Ord + AdditiveArithmetic in the spec's
// terms: any ordered numeric type that supports +.
type Distance interface {
	constraints.Integer | constraints.Float
}

// DistanceMap is the distances-to-vertex property map: every entry must be
// initialized to the caller's chosen "effective infinity" before Search
// runs.
type DistanceMap[VId comparable, D Distance] interface {
	Get(v VId) D
	Set(v VId, d D)
}

// TableDistanceMap is a dense DistanceMap for small non-negative integer
// vertex ids, backed by propmap.TablePropertyMap — the same dense external
// property map the rest of the module's table-shaped state shares. The
// table's graph type parameter is unused (distances never touch the
// graph), so it is instantiated over struct{}.
type TableDistanceMap[VId constraints.Integer, D Distance] struct {
	table *propmap.TablePropertyMap[struct{}, D]
}

// NewTableDistanceMap allocates a table of size n, every slot initialized
// to infinity.
func NewTableDistanceMap[VId constraints.Integer, D Distance](n int, infinity D) *TableDistanceMap[VId, D] {
	return &TableDistanceMap[VId, D]{table: propmap.NewTablePropertyMap[struct{}](n, infinity)}
}

// Get returns the distance recorded for v.
func (m *TableDistanceMap[VId, D]) Get(v VId) D { return m.table.Get(nil, int(v)) }

// Set records the distance for v, growing the table if necessary.
func (m *TableDistanceMap[VId, D]) Set(v VId, d D) {
	idx := int(v)
	if idx >= m.table.Len() {
		var zero D
		grown := propmap.NewTablePropertyMap[struct{}](idx+1, zero)
		for i := 0; i < m.table.Len(); i++ {
			grown.Set(nil, i, m.table.Get(nil, i))
		}
		m.table = grown
	}
	m.table.Set(nil, idx, d)
}

// DictionaryDistanceMap is a DistanceMap for sparse or non-integer vertex
// ids, backed by propmap.DictionaryPropertyMap. Entries not yet Set read
// back as infinity rather than panicking, since an unvisited vertex's
// "distance so far" really is the algorithm's notion of infinity.
type DictionaryDistanceMap[VId comparable, D Distance] struct {
	table    *propmap.DictionaryPropertyMap[struct{}, VId, D]
	infinity D
}

// NewDictionaryDistanceMap returns a map where every unset key reads back
// as infinity.
func NewDictionaryDistanceMap[VId comparable, D Distance](infinity D) *DictionaryDistanceMap[VId, D] {
	return &DictionaryDistanceMap[VId, D]{table: propmap.NewDictionaryPropertyMap[struct{}, VId, D](), infinity: infinity}
}

// Get returns the distance recorded for v, or infinity if never Set.
func (m *DictionaryDistanceMap[VId, D]) Get(v VId) D {
	if m.table.Has(v) {
		return m.table.Get(nil, v)
	}
	return m.infinity
}

// Set records the distance for v.
func (m *DictionaryDistanceMap[VId, D]) Set(v VId, d D) { m.table.Set(nil, v, d) }
