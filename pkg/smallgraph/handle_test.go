package smallgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleString(t *testing.T) {
	assert.Equal(t, "0:0", NodeHandle{}.String())
	assert.Equal(t, "12:3", NodeHandle{index: 12, generation: 3}.String())
}

func TestParseHandle(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expectErr bool
		expected  NodeHandle
	}{
		{name: "zero", raw: "0:0", expected: NodeHandle{}},
		{name: "reused slot", raw: "1:1", expected: NodeHandle{index: 1, generation: 1}},
		{name: "large values", raw: "4096:17", expected: NodeHandle{index: 4096, generation: 17}},
		{name: "error - empty", raw: "", expectErr: true},
		{name: "error - missing generation", raw: "3", expectErr: true},
		{name: "error - negative index", raw: "-1:0", expectErr: true},
		{name: "error - trailing garbage", raw: "1:2x", expectErr: true},
		{name: "error - spaces", raw: "1: 2", expectErr: true},
		{name: "error - overflow", raw: "99999999999999999999999:0", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := ParseHandle(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, h)
		})
	}
}

func TestParseHandle_RoundTrip(t *testing.T) {
	g := New[int]()
	h := g.Insert(1)
	g.Remove(h)
	h = g.Insert(2)

	parsed, err := ParseHandle(h.String())
	require.NoError(t, err)
	assert.Equal(t, h, parsed)

	v, ok := g.Get(parsed)
	require.True(t, ok)
	assert.Equal(t, 2, v)
}
