package scenario

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Block type names accepted at the top level of a scenario file.
const (
	blockInsert     = "insert"
	blockSet        = "set"
	blockRemove     = "remove"
	blockConnect    = "connect"
	blockDisconnect = "disconnect"
	blockExpect     = "expect"
)

// fileSchema lists the top-level blocks. Decoding through hcl.Body.Content
// keeps them in source order, which gohcl's per-type slices would lose.
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockInsert, LabelNames: []string{"name"}},
		{Type: blockSet, LabelNames: []string{"node"}},
		{Type: blockRemove, LabelNames: []string{"node"}},
		{Type: blockConnect},
		{Type: blockDisconnect},
		{Type: blockExpect},
	},
}

// valueBody is the body of `insert` and `set` blocks.
type valueBody struct {
	Value *cty.Value `hcl:"value,optional"`
}

// emptyBody is the body of `remove` blocks.
type emptyBody struct{}

type connectBody struct {
	From       string `hcl:"from"`
	To         string `hcl:"to"`
	Undirected bool   `hcl:"undirected,optional"`
}

type disconnectBody struct {
	From string `hcl:"from"`
	To   string `hcl:"to,optional"`
	Mode string `hcl:"mode,optional"`
}

type expectBody struct {
	Count        *int                `hcl:"count,optional"`
	Edges        *int                `hcl:"edges,optional"`
	Connected    [][]string          `hcl:"connected,optional"`
	Disconnected [][]string          `hcl:"disconnected,optional"`
	Present      []string            `hcl:"present,optional"`
	Absent       []string            `hcl:"absent,optional"`
	Handle       map[string]string   `hcl:"handle,optional"`
	Out          map[string][]string `hcl:"out,optional"`
	In           map[string][]string `hcl:"in,optional"`
	Values       *cty.Value          `hcl:"values,optional"`
}
