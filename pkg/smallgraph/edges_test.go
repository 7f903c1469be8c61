package smallgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectUndirected(t *testing.T) {
	g := New[foo]()
	f1 := g.Insert(foo{v: 24})
	f2 := g.Insert(foo{v: 42})

	require.True(t, g.ConnectUndirected(f1, f2))
	assert.Equal(t, []Edge{{Source: 0, Dest: 1}, {Source: 1, Dest: 0}}, g.Edges())
	assert.True(t, g.IsConnected(f1, f2))
	assert.True(t, g.IsConnected(f2, f1))
}

func TestConnectDirected_KeepsDuplicates(t *testing.T) {
	g := New[foo]()
	a := g.Insert(foo{})
	b := g.Insert(foo{})

	g.ConnectDirected(a, b)
	g.ConnectDirected(a, b)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []NodeHandle{b, b}, g.NeighborsOut(a))
	assert.False(t, g.IsConnected(b, a), "directed edge has no reverse")
	assert.True(t, g.IsConnectedEither(b, a))
}

func TestRemove_CascadesToEdges(t *testing.T) {
	g := New[foo]()
	f1 := g.Insert(foo{v: 24})
	f2 := g.Insert(foo{v: 42})
	f3 := g.Insert(foo{v: 33})
	g.ConnectDirected(f1, f2)
	g.ConnectDirected(f2, f3)
	g.ConnectDirected(f1, f3)
	require.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []Edge{{0, 1}, {1, 2}, {0, 2}}, g.Edges())

	_, ok := g.Remove(f2)
	require.True(t, ok)

	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.IsConnected(f1, f3))
	assert.False(t, g.IsConnected(f1, f2))
	assert.False(t, g.IsConnected(f2, f3))
}

// Insert A, B, C; link A->B->C; remove B; the next insert takes B's slot.
func TestScenario_RemoveMiddleAndRecycle(t *testing.T) {
	g := New[string]()
	a := g.Insert("A")
	b := g.Insert("B")
	c := g.Insert("C")
	for i, h := range []NodeHandle{a, b, c} {
		assert.Equal(t, NodeHandle{index: i}, h)
	}

	g.ConnectDirected(a, b)
	g.ConnectDirected(b, c)

	_, ok := g.Remove(b)
	require.True(t, ok)

	assert.Equal(t, 2, g.Count())
	assert.Empty(t, g.NeighborsOut(a))
	assert.Empty(t, g.NeighborsIn(c))
	assert.False(t, g.IsConnected(a, b))
	assert.False(t, g.IsConnected(b, c))

	d := g.Insert("D")
	assert.Equal(t, NodeHandle{index: 1, generation: 1}, d)
	assert.False(t, g.IsConnected(a, d), "recycled slot starts with no edges")
	assert.Empty(t, g.NeighborsIn(d))
}

func TestNeighborsOut_ReportsCurrentGeneration(t *testing.T) {
	g := New[int]()
	a := g.Insert(0)
	b := g.Insert(1)
	_, ok := g.Remove(b)
	require.True(t, ok)
	b2 := g.Insert(2)
	require.Equal(t, 1, b2.Generation())

	require.True(t, g.ConnectDirected(a, b2))
	assert.Equal(t, []NodeHandle{b2}, g.NeighborsOut(a))
	assert.Equal(t, []NodeHandle{a}, g.NeighborsIn(b2))
}

func TestNeighborsIn_ReturnsSources(t *testing.T) {
	g := New[string]()
	hub := g.Insert("hub")
	x := g.Insert("x")
	y := g.Insert("y")
	z := g.Insert("z")

	g.ConnectDirected(x, hub)
	g.ConnectDirected(y, hub)
	g.ConnectDirected(hub, z)

	assert.Equal(t, []NodeHandle{x, y}, g.NeighborsIn(hub))
	assert.Equal(t, []NodeHandle{z}, g.NeighborsOut(hub))
	assert.Empty(t, g.NeighborsIn(x))
	assert.Equal(t, []NodeHandle{hub}, g.NeighborsIn(z))
}

func TestDisconnect(t *testing.T) {
	setup := func() (*Graph[string], NodeHandle, NodeHandle, NodeHandle) {
		g := New[string]()
		a := g.Insert("a")
		b := g.Insert("b")
		c := g.Insert("c")
		g.ConnectUndirected(a, b)
		g.ConnectDirected(a, b)
		g.ConnectDirected(b, c)
		g.ConnectDirected(c, a)
		return g, a, b, c
	}

	t.Run("directed removes one direction only", func(t *testing.T) {
		g, a, b, _ := setup()
		assert.Equal(t, 2, g.DisconnectDirected(a, b))
		assert.False(t, g.IsConnected(a, b))
		assert.True(t, g.IsConnected(b, a))
		assert.Equal(t, 3, g.EdgeCount())
	})

	t.Run("directed with no match is a no-op", func(t *testing.T) {
		g, _, b, c := setup()
		assert.Zero(t, g.DisconnectDirected(c, b))
		assert.Equal(t, 5, g.EdgeCount())
	})

	t.Run("pair removes both directions", func(t *testing.T) {
		g, a, b, c := setup()
		assert.Equal(t, 3, g.DisconnectPair(b, a))
		assert.False(t, g.IsConnectedEither(a, b))
		assert.True(t, g.IsConnected(b, c))
		assert.True(t, g.IsConnected(c, a))
	})

	t.Run("all strips every incident edge", func(t *testing.T) {
		g, a, b, c := setup()
		assert.Equal(t, 4, g.DisconnectAll(a))
		assert.Equal(t, []Edge{{Source: b.Index(), Dest: c.Index()}}, g.Edges())
		assert.True(t, g.Contains(a), "disconnecting does not remove the node")
	})
}

func TestEdges_ReturnsCopy(t *testing.T) {
	g := New[int]()
	a := g.Insert(1)
	b := g.Insert(2)
	g.ConnectDirected(a, b)

	edges := g.Edges()
	edges[0].Dest = 99
	assert.Equal(t, []Edge{{Source: 0, Dest: 1}}, g.Edges())
}
