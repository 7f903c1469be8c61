package smallgraph

// ConnectDirected adds an edge from parent to child. Duplicate edges are
// kept. It reports false, adding nothing, if either handle is invalid.
func (g *Graph[T]) ConnectDirected(parent, child NodeHandle) bool {
	if !g.Contains(parent) || !g.Contains(child) {
		return false
	}
	g.edges.Push(Edge{Source: parent.index, Dest: child.index})
	return true
}

// ConnectUndirected adds the two edges a->b and b->a. They are independent
// afterwards: removing one direction leaves the other in place.
func (g *Graph[T]) ConnectUndirected(a, b NodeHandle) bool {
	if !g.Contains(a) || !g.Contains(b) {
		return false
	}
	g.edges.Push(Edge{Source: a.index, Dest: b.index})
	g.edges.Push(Edge{Source: b.index, Dest: a.index})
	return true
}

// NeighborsOut returns the current handles of every node n has an edge to,
// one entry per edge.
func (g *Graph[T]) NeighborsOut(n NodeHandle) []NodeHandle {
	if !g.Contains(n) {
		return nil
	}
	var out []NodeHandle
	for _, e := range g.edges.Items() {
		if e.Source == n.index {
			out = append(out, g.handleAt(e.Dest))
		}
	}
	return out
}

// NeighborsIn returns the current handles of every node with an edge to n,
// one entry per edge.
func (g *Graph[T]) NeighborsIn(n NodeHandle) []NodeHandle {
	if !g.Contains(n) {
		return nil
	}
	var in []NodeHandle
	for _, e := range g.edges.Items() {
		if e.Dest == n.index {
			in = append(in, g.handleAt(e.Source))
		}
	}
	return in
}

// DisconnectAll removes every edge into or out of n and returns how many
// were removed.
func (g *Graph[T]) DisconnectAll(n NodeHandle) int {
	if !g.Contains(n) {
		return 0
	}
	return g.edges.Retain(func(e Edge) bool {
		return e.Source != n.index && e.Dest != n.index
	})
}

// DisconnectPair removes every edge between a and b in either direction and
// returns how many were removed.
func (g *Graph[T]) DisconnectPair(a, b NodeHandle) int {
	if !g.Contains(a) || !g.Contains(b) {
		return 0
	}
	return g.edges.Retain(func(e Edge) bool {
		forward := e.Source == a.index && e.Dest == b.index
		backward := e.Source == b.index && e.Dest == a.index
		return !forward && !backward
	})
}

// DisconnectDirected removes every source->dest edge, leaving dest->source
// alone, and returns how many were removed.
func (g *Graph[T]) DisconnectDirected(source, dest NodeHandle) int {
	if !g.Contains(source) || !g.Contains(dest) {
		return 0
	}
	return g.edges.Retain(func(e Edge) bool {
		return e.Source != source.index || e.Dest != dest.index
	})
}

// IsConnected reports whether there is at least one edge from a to b.
func (g *Graph[T]) IsConnected(a, b NodeHandle) bool {
	if !g.Contains(a) || !g.Contains(b) {
		return false
	}
	return g.edges.IndexFunc(func(e Edge) bool {
		return e.Source == a.index && e.Dest == b.index
	}) >= 0
}

// IsConnectedEither reports whether there is an edge between a and b in
// either direction.
func (g *Graph[T]) IsConnectedEither(a, b NodeHandle) bool {
	return g.IsConnected(a, b) || g.IsConnected(b, a)
}

// EdgeCount returns the number of stored edges. An undirected connection
// counts as two.
func (g *Graph[T]) EdgeCount() int {
	return g.edges.Len()
}

// Edges returns a copy of the edge list in insertion order.
func (g *Graph[T]) Edges() []Edge {
	return g.edges.Clone()
}
