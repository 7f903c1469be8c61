package smallgraph

import (
	"iter"

	"github.com/specialistvlad/smallgraph/internal/smallvec"
)

const (
	// InlineNodes is how many slots (and free-list entries) fit in a Graph
	// before that storage moves to the heap.
	InlineNodes = 128
	// InlineEdges is how many edges fit in a Graph before the edge list moves
	// to the heap.
	InlineEdges = 256
)

type slot[T any] struct {
	generation int
	occupied   bool
	value      T
}

// Graph is a directed graph of values of type T addressed by NodeHandle.
//
// The zero value is an empty graph that keeps everything on the heap; New
// returns one that uses its inline buffers first.
type Graph[T any] struct {
	slots smallvec.Vec[slot[T]]
	free  smallvec.Vec[NodeHandle] // FIFO, oldest removal first
	edges smallvec.Vec[Edge]

	slotBuf [InlineNodes]slot[T]
	freeBuf [InlineNodes]NodeHandle
	edgeBuf [InlineEdges]Edge
}

// New creates an empty Graph.
func New[T any]() *Graph[T] {
	g := &Graph[T]{}
	g.slots = smallvec.New(g.slotBuf[:0])
	g.free = smallvec.New(g.freeBuf[:0])
	g.edges = smallvec.New(g.edgeBuf[:0])
	return g
}

// lookup returns the slot h refers to, or nil if h is not valid.
func (g *Graph[T]) lookup(h NodeHandle) *slot[T] {
	if h.index < 0 || h.index >= g.slots.Len() {
		return nil
	}
	s := g.slots.Ptr(h.index)
	if s.generation != h.generation || !s.occupied {
		return nil
	}
	return s
}

// Insert stores value and returns its handle. The oldest free slot is
// reused if there is one; otherwise a new slot is appended.
func (g *Graph[T]) Insert(value T) NodeHandle {
	if g.free.Len() == 0 {
		h := NodeHandle{index: g.slots.Len()}
		g.slots.Push(slot[T]{occupied: true, value: value})
		return h
	}

	freed := g.free.RemoveAt(0)
	h := NodeHandle{index: freed.index, generation: freed.generation + 1}
	g.slots.Set(h.index, slot[T]{generation: h.generation, occupied: true, value: value})
	return h
}

// Remove deletes the node h refers to along with every edge touching it,
// and returns its value. It reports false, and changes nothing, if h is not
// valid.
func (g *Graph[T]) Remove(h NodeHandle) (T, bool) {
	s := g.lookup(h)
	if s == nil {
		var zero T
		return zero, false
	}

	value := s.value
	g.DisconnectAll(h)
	g.slots.Set(h.index, slot[T]{generation: h.generation + 1})
	g.free.Push(h)
	return value, true
}

// Get returns the value stored under h.
func (g *Graph[T]) Get(h NodeHandle) (T, bool) {
	s := g.lookup(h)
	if s == nil {
		var zero T
		return zero, false
	}
	return s.value, true
}

// GetMut returns a pointer to the value stored under h. The pointer is only
// good until the next Insert.
func (g *Graph[T]) GetMut(h NodeHandle) (*T, bool) {
	s := g.lookup(h)
	if s == nil {
		return nil, false
	}
	return &s.value, true
}

// Contains reports whether h is currently valid.
func (g *Graph[T]) Contains(h NodeHandle) bool {
	return g.lookup(h) != nil
}

// Count returns the number of live nodes. It scans every slot ever
// allocated, including tombstones.
func (g *Graph[T]) Count() int {
	n := 0
	for _, s := range g.slots.Items() {
		if s.occupied {
			n++
		}
	}
	return n
}

// Capacity returns the number of slots ever allocated, live or not.
func (g *Graph[T]) Capacity() int {
	return g.slots.Len()
}

// FreeLen returns the number of tombstoned slots waiting for reuse.
func (g *Graph[T]) FreeLen() int {
	return g.free.Len()
}

// All iterates over live nodes in slot order.
func (g *Graph[T]) All() iter.Seq2[NodeHandle, T] {
	return func(yield func(NodeHandle, T) bool) {
		for i, s := range g.slots.Items() {
			if !s.occupied {
				continue
			}
			if !yield(NodeHandle{index: i, generation: s.generation}, s.value) {
				return
			}
		}
	}
}

// handleAt builds the current handle for a slot index known to be in range.
func (g *Graph[T]) handleAt(index int) NodeHandle {
	return NodeHandle{index: index, generation: g.slots.At(index).generation}
}
