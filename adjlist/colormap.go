package adjlist

import (
	"golang.org/x/exp/constraints"

	"github.com/arvonlabs/graphkit/capability"
	"github.com/arvonlabs/graphkit/propmap"
)

// denseColorMap is a capability.ColorMap backed by a propmap.TablePropertyMap
// indexed directly by the dense integer vertex id — the table representation
// §4.1 calls for when VId is a small non-negative integer. The graph type
// parameter of the underlying table is unused (colors never touch the
// graph), so it is instantiated over struct{}.
type denseColorMap[I constraints.Integer] struct {
	table *propmap.TablePropertyMap[struct{}, capability.VertexColor]
}

func newDenseColorMap[I constraints.Integer](n int, fill capability.VertexColor) *denseColorMap[I] {
	return &denseColorMap[I]{table: propmap.NewTablePropertyMap[struct{}](n, fill)}
}

func (m *denseColorMap[I]) Get(v I) capability.VertexColor { return m.table.Get(nil, int(v)) }
func (m *denseColorMap[I]) Set(v I, c capability.VertexColor) {
	idx := int(v)
	if idx >= m.table.Len() {
		grown := propmap.NewTablePropertyMap[struct{}](idx+1, capability.White)
		for i := 0; i < m.table.Len(); i++ {
			grown.Set(nil, i, m.table.Get(nil, i))
		}
		m.table = grown
	}
	m.table.Set(nil, idx, c)
}

// NewColorMap returns a dense color map covering every current vertex of g.
func (g *Directed[I, VP, EP]) NewColorMap(fill capability.VertexColor) capability.ColorMap[I] {
	return newDenseColorMap[I](len(g.vertices), fill)
}

// NewColorMap returns a dense color map covering every current vertex of g.
func (g *Bidirectional[I, VP, EP]) NewColorMap(fill capability.VertexColor) capability.ColorMap[I] {
	return newDenseColorMap[I](len(g.vertices), fill)
}
