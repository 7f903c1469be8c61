// Package smallvec provides a growable, index-addressable sequence that keeps
// its elements in a caller-owned fixed buffer until that buffer is full.
//
// The usual pattern is to embed an array next to the Vec in the owning
// struct and hand a slice of it to New:
//
//	type owner struct {
//	    buf  [64]item
//	    list smallvec.Vec[item]
//	}
//
//	o := &owner{}
//	o.list = smallvec.New(o.buf[:0])
//
// Appends beyond the inline capacity move the contents to the heap. Nothing
// else about the Vec changes when that happens. A Vec that was built over an
// inline buffer must not be copied once in use, since the copy would still
// point into the original buffer.
package smallvec

import "slices"

// Vec is an ordered, duplicate-tolerant sequence. The zero value is an empty
// Vec with no inline storage.
type Vec[T any] struct {
	items     []T
	inlineCap int
}

// New returns an empty Vec backed by buf. Only the capacity of buf matters.
func New[T any](buf []T) Vec[T] {
	return Vec[T]{items: buf[:0], inlineCap: cap(buf)}
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int {
	return len(v.items)
}

// InlineCap returns the capacity of the buffer the Vec was created with.
func (v *Vec[T]) InlineCap() int {
	return v.inlineCap
}

// Spilled reports whether the elements have outgrown the inline buffer.
func (v *Vec[T]) Spilled() bool {
	return cap(v.items) > v.inlineCap
}

// Push appends x to the end of the sequence.
func (v *Vec[T]) Push(x T) {
	v.items = append(v.items, x)
}

// At returns the element at position i. It panics if i is out of range.
func (v *Vec[T]) At(i int) T {
	return v.items[i]
}

// Ptr returns a pointer to the element at position i. The pointer is only
// valid until the next Push, which may move the backing storage.
func (v *Vec[T]) Ptr(i int) *T {
	return &v.items[i]
}

// Set overwrites the element at position i.
func (v *Vec[T]) Set(i int, x T) {
	v.items[i] = x
}

// RemoveAt deletes the element at position i, shifting the rest down, and
// returns it.
func (v *Vec[T]) RemoveAt(i int) T {
	x := v.items[i]
	v.items = slices.Delete(v.items, i, i+1)
	return x
}

// Retain keeps only the elements for which keep returns true, preserving
// their order, and returns how many were dropped.
func (v *Vec[T]) Retain(keep func(T) bool) int {
	before := len(v.items)
	v.items = slices.DeleteFunc(v.items, func(x T) bool { return !keep(x) })
	return before - len(v.items)
}

// IndexFunc returns the position of the first element satisfying f, or -1.
func (v *Vec[T]) IndexFunc(f func(T) bool) int {
	return slices.IndexFunc(v.items, f)
}

// Items returns the live elements. The slice aliases the Vec's storage and
// must not be retained across mutations.
func (v *Vec[T]) Items() []T {
	return v.items
}

// Clone returns a heap-allocated copy of the elements.
func (v *Vec[T]) Clone() []T {
	return slices.Clone(v.items)
}
