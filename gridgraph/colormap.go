package gridgraph

import "github.com/arvonlabs/graphkit/capability"

// dictionaryColorMap is a hash-map backed capability.ColorMap, the
// representation §4.1 calls for when VId is not a small dense integer —
// here, a lattice Point2. Unvisited points read back as the map's fill
// color rather than requiring a prior Set.
type dictionaryColorMap struct {
	colors map[Point2]capability.VertexColor
	fill   capability.VertexColor
}

func (m *dictionaryColorMap) Get(v Point2) capability.VertexColor {
	if c, ok := m.colors[v]; ok {
		return c
	}
	return m.fill
}

func (m *dictionaryColorMap) Set(v Point2, c capability.VertexColor) { m.colors[v] = c }

// NewColorMap implements capability.SearchDefaults for InfiniteGrid: since
// an infinite grid has no fixed vertex set, every point not yet Set reads
// back as fill.
func (g *InfiniteGrid) NewColorMap(fill capability.VertexColor) capability.ColorMap[Point2] {
	return &dictionaryColorMap{colors: make(map[Point2]capability.VertexColor), fill: fill}
}
