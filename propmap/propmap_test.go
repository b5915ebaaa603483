package propmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvonlabs/graphkit/propmap"
)

func TestTablePropertyMapGetSet(t *testing.T) {
	m := propmap.NewTablePropertyMap[struct{}](3, "unset")
	require.Equal(t, "unset", m.Get(nil, 0))
	m.Set(nil, 1, "one")
	require.Equal(t, "one", m.Get(nil, 1))
	require.Equal(t, "unset", m.Get(nil, 2))
	require.Equal(t, 3, m.Len())
}

func TestTablePropertyMapOutOfRangePanics(t *testing.T) {
	m := propmap.NewTablePropertyMap[struct{}](2, 0)
	require.Panics(t, func() { m.Get(nil, 2) })
	require.Panics(t, func() { m.Set(nil, -1, 1) })
}

func TestDictionaryPropertyMapGetSet(t *testing.T) {
	m := propmap.NewDictionaryPropertyMap[struct{}, string, int]()
	m.Set(nil, "a", 1)
	require.Equal(t, 1, m.Get(nil, "a"))
	require.True(t, m.Has("a"))
	require.False(t, m.Has("b"))
}

func TestDictionaryPropertyMapMissingKeyPanics(t *testing.T) {
	m := propmap.NewDictionaryPropertyMap[struct{}, string, int]()
	require.Panics(t, func() { m.Get(nil, "missing") })
}

func TestInternalPropertyMapRoutesThroughAccessors(t *testing.T) {
	type graph struct{ payload int }
	m := propmap.InternalPropertyMap[graph, string, int]{
		GetFn: func(g *graph, _ string) int { return g.payload },
		SetFn: func(g *graph, _ string, v int) { g.payload = v },
	}
	g := &graph{payload: 7}
	require.Equal(t, 7, m.Get(g, "ignored"))
	m.Set(g, "ignored", 42)
	require.Equal(t, 42, g.payload)
}

// wideValue is the kind of struct TransformingPropertyMap's doc comment
// describes: several independent logical properties packed into one
// backing slot.
type wideValue struct {
	Label string
	Count int
}

func TestTransformingPropertyMapRoundTrip(t *testing.T) {
	inner := propmap.NewTablePropertyMap[struct{}](2, wideValue{})

	labels := propmap.TransformingPropertyMap[struct{}, int, wideValue, string]{
		Inner: inner,
		Read:  func(v wideValue) string { return v.Label },
		Write: func(old *wideValue, w string) { old.Label = w },
	}
	counts := propmap.TransformingPropertyMap[struct{}, int, wideValue, int]{
		Inner: inner,
		Read:  func(v wideValue) int { return v.Count },
		Write: func(old *wideValue, w int) { old.Count = w },
	}

	labels.Set(nil, 0, "start")
	counts.Set(nil, 0, 5)

	// Both views project the same backing slot: writing through one must
	// not clobber a field the other owns.
	require.Equal(t, "start", labels.Get(nil, 0))
	require.Equal(t, 5, counts.Get(nil, 0))
	require.Equal(t, wideValue{Label: "start", Count: 5}, inner.Get(nil, 0))

	counts.Set(nil, 0, 6)
	require.Equal(t, "start", labels.Get(nil, 0))
	require.Equal(t, 6, counts.Get(nil, 0))
}
