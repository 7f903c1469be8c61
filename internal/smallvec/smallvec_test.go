package smallvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushStaysInlineUntilFull(t *testing.T) {
	var buf [4]int
	v := New(buf[:0])

	for i := range 4 {
		v.Push(i * 10)
	}
	assert.Equal(t, 4, v.Len())
	assert.False(t, v.Spilled())
	assert.Equal(t, 30, buf[3], "inline buffer should hold the elements")

	v.Push(40)
	assert.True(t, v.Spilled())
	assert.Equal(t, []int{0, 10, 20, 30, 40}, v.Items())
	assert.Equal(t, 4, v.InlineCap())
}

func TestZeroValue(t *testing.T) {
	var v Vec[string]
	assert.Equal(t, 0, v.Len())
	assert.False(t, v.Spilled())

	v.Push("a")
	assert.Equal(t, "a", v.At(0))
	assert.True(t, v.Spilled())
}

func TestSetAndPtr(t *testing.T) {
	var buf [2]int
	v := New(buf[:0])
	v.Push(1)
	v.Push(2)

	v.Set(0, 5)
	*v.Ptr(1) = 7
	assert.Equal(t, []int{5, 7}, v.Items())
}

func TestRemoveAt(t *testing.T) {
	var buf [8]string
	v := New(buf[:0])
	for _, s := range []string{"a", "b", "c", "d"} {
		v.Push(s)
	}

	assert.Equal(t, "a", v.RemoveAt(0))
	assert.Equal(t, []string{"b", "c", "d"}, v.Items())

	assert.Equal(t, "d", v.RemoveAt(2))
	assert.Equal(t, []string{"b", "c"}, v.Items())

	assert.Panics(t, func() { v.RemoveAt(5) })
}

func TestRetain(t *testing.T) {
	t.Run("drops failing elements and keeps order", func(t *testing.T) {
		var buf [8]int
		v := New(buf[:0])
		for _, n := range []int{1, 2, 3, 2, 5, 2} {
			v.Push(n)
		}

		dropped := v.Retain(func(n int) bool { return n != 2 })
		assert.Equal(t, 3, dropped)
		assert.Equal(t, []int{1, 3, 5}, v.Items())
	})

	t.Run("keeping everything is a no-op", func(t *testing.T) {
		var buf [2]int
		v := New(buf[:0])
		v.Push(1)
		v.Push(1)
		assert.Zero(t, v.Retain(func(int) bool { return true }))
		assert.Equal(t, 2, v.Len(), "duplicates are kept")
	})

	t.Run("works after spilling", func(t *testing.T) {
		var buf [1]int
		v := New(buf[:0])
		for i := range 10 {
			v.Push(i)
		}
		require.True(t, v.Spilled())
		v.Retain(func(n int) bool { return n%2 == 0 })
		assert.Equal(t, []int{0, 2, 4, 6, 8}, v.Items())
	})
}

func TestIndexFuncAndClone(t *testing.T) {
	var buf [4]int
	v := New(buf[:0])
	v.Push(3)
	v.Push(9)

	assert.Equal(t, 1, v.IndexFunc(func(n int) bool { return n == 9 }))
	assert.Equal(t, -1, v.IndexFunc(func(n int) bool { return n == 4 }))

	c := v.Clone()
	c[0] = 100
	assert.Equal(t, 3, v.At(0), "clone must not alias the inline buffer")
}
