package event

import (
	"golang.org/x/exp/constraints"

	"github.com/arvonlabs/graphkit/propmap"
)

// PredecessorRecorder subscribes to tree-edge (BFS/DFS) or edge-relaxed
// (Dijkstra) events, storing predecessor[destination] = source, and
// reconstructs a path by walking predecessors back to the root.
type PredecessorRecorder[VId comparable] interface {
	// Record stores source as the predecessor of dest, overwriting any
	// previous entry.
	Record(source, dest VId)

	// Path walks predecessors from to back to the recorder's root and
	// returns them in root-to-to order. Returns nil if to is unreachable
	// from the root.
	Path(to VId) []VId
}

// DictionaryPredecessorRecorder is a PredecessorRecorder for sparse or
// non-integer vertex ids, backed by propmap.DictionaryPropertyMap.
type DictionaryPredecessorRecorder[VId comparable] struct {
	root  VId
	table *propmap.DictionaryPropertyMap[struct{}, VId, VId]
}

// NewDictionaryPredecessorRecorder returns a recorder rooted at root.
func NewDictionaryPredecessorRecorder[VId comparable](root VId) *DictionaryPredecessorRecorder[VId] {
	return &DictionaryPredecessorRecorder[VId]{root: root, table: propmap.NewDictionaryPropertyMap[struct{}, VId, VId]()}
}

// Record implements PredecessorRecorder.
func (r *DictionaryPredecessorRecorder[VId]) Record(source, dest VId) { r.table.Set(nil, dest, source) }

// Path implements PredecessorRecorder.
func (r *DictionaryPredecessorRecorder[VId]) Path(to VId) []VId {
	return walkPredecessors(to, r.root, func(v VId) (VId, bool) {
		if !r.table.Has(v) {
			var zero VId
			return zero, false
		}
		return r.table.Get(nil, v), true
	})
}

// predEntry is the wide value a TablePredecessorRecorder stores one of per
// vertex: the predecessor itself, plus whether it was ever recorded. The
// recorder exposes each field through its own TransformingPropertyMap view
// over a single shared propmap.TablePropertyMap[predEntry], so the
// predecessor and the has-been-recorded flag can be read and written
// independently without doubling the backing storage.
type predEntry[VId any] struct {
	pred VId
	has  bool
}

// TablePredecessorRecorder is a dense PredecessorRecorder for small
// non-negative integer vertex ids.
type TablePredecessorRecorder[VId constraints.Integer] struct {
	root    VId
	entries *propmap.TablePropertyMap[struct{}, predEntry[VId]]
}

// NewTablePredecessorRecorder returns a recorder covering ids in [0,n),
// rooted at root.
func NewTablePredecessorRecorder[VId constraints.Integer](n int, root VId) *TablePredecessorRecorder[VId] {
	return &TablePredecessorRecorder[VId]{root: root, entries: propmap.NewTablePropertyMap[struct{}](n, predEntry[VId]{})}
}

func (r *TablePredecessorRecorder[VId]) predView() propmap.TransformingPropertyMap[struct{}, int, predEntry[VId], VId] {
	return propmap.TransformingPropertyMap[struct{}, int, predEntry[VId], VId]{
		Inner: r.entries,
		Read:  func(e predEntry[VId]) VId { return e.pred },
		Write: func(old *predEntry[VId], w VId) { old.pred = w },
	}
}

func (r *TablePredecessorRecorder[VId]) hasView() propmap.TransformingPropertyMap[struct{}, int, predEntry[VId], bool] {
	return propmap.TransformingPropertyMap[struct{}, int, predEntry[VId], bool]{
		Inner: r.entries,
		Read:  func(e predEntry[VId]) bool { return e.has },
		Write: func(old *predEntry[VId], w bool) { old.has = w },
	}
}

// Record implements PredecessorRecorder.
func (r *TablePredecessorRecorder[VId]) Record(source, dest VId) {
	r.grow(int(dest))
	r.predView().Set(nil, int(dest), source)
	r.hasView().Set(nil, int(dest), true)
}

func (r *TablePredecessorRecorder[VId]) grow(idx int) {
	if idx < r.entries.Len() {
		return
	}
	grown := propmap.NewTablePropertyMap[struct{}](idx+1, predEntry[VId]{})
	for i := 0; i < r.entries.Len(); i++ {
		grown.Set(nil, i, r.entries.Get(nil, i))
	}
	r.entries = grown
}

// Path implements PredecessorRecorder.
func (r *TablePredecessorRecorder[VId]) Path(to VId) []VId {
	hasView, predView := r.hasView(), r.predView()
	return walkPredecessors(to, r.root, func(v VId) (VId, bool) {
		i := int(v)
		if i < 0 || i >= r.entries.Len() || !hasView.Get(nil, i) {
			var zero VId
			return zero, false
		}
		return predView.Get(nil, i), true
	})
}

func walkPredecessors[VId comparable](to, root VId, lookup func(VId) (VId, bool)) []VId {
	rev := []VId{to}
	cur := to
	for cur != root {
		p, ok := lookup(cur)
		if !ok {
			return nil
		}
		cur = p
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
