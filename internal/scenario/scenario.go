package scenario

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/pkg/errors"
	"github.com/specialistvlad/smallgraph/pkg/smallgraph"
	"github.com/zclconf/go-cty/cty"
)

// Scenario is one loaded file, ready to run.
type Scenario struct {
	// Name is the file's base name, e.g. "chain.hcl".
	Name string
	// Path is the file the scenario was loaded from.
	Path string
	Ops  []Op
}

// OpKind names the operation a block performs.
type OpKind string

const (
	OpInsert     OpKind = blockInsert
	OpSet        OpKind = blockSet
	OpRemove     OpKind = blockRemove
	OpConnect    OpKind = blockConnect
	OpDisconnect OpKind = blockDisconnect
	OpExpect     OpKind = blockExpect
)

// DisconnectMode selects which edges a disconnect block removes.
type DisconnectMode string

const (
	// ModeDirected removes from->to edges only.
	ModeDirected DisconnectMode = "directed"
	// ModePair removes edges between from and to in both directions.
	ModePair DisconnectMode = "pair"
	// ModeAll removes every edge touching from.
	ModeAll DisconnectMode = "all"
)

// Op is a single decoded block. Which fields are set depends on Kind.
type Op struct {
	Kind  OpKind
	Range hcl.Range

	// Name is the binding created by an insert.
	Name string
	// Node is the target of set and remove.
	Node Ref
	// Value is the payload of insert and set; null when omitted.
	Value cty.Value

	From       Ref
	To         Ref
	Undirected bool
	Mode       DisconnectMode

	Expect *Expectation
}

// Ref points at a node either by bound name or by literal handle.
type Ref struct {
	Name    string
	Handle  smallgraph.NodeHandle
	Literal bool
}

// literalPrefix marks a reference as a literal handle, e.g. "#1:0".
const literalPrefix = "#"

func parseRef(raw string) (Ref, error) {
	if raw == "" {
		return Ref{}, errors.New("node reference cannot be empty")
	}
	if !strings.HasPrefix(raw, literalPrefix) {
		return Ref{Name: raw}, nil
	}
	h, err := smallgraph.ParseHandle(strings.TrimPrefix(raw, literalPrefix))
	if err != nil {
		return Ref{}, errors.Wrapf(err, "invalid literal handle %q", raw)
	}
	return Ref{Handle: h, Literal: true}, nil
}

// String returns the reference as it would be written in a scenario file.
func (r Ref) String() string {
	if r.Literal {
		return literalPrefix + r.Handle.String()
	}
	return r.Name
}

// Expectation is a set of assertions about the graph at one point in a run.
// Nil or empty fields are not checked.
type Expectation struct {
	Count        *int
	Edges        *int
	Connected    [][2]Ref
	Disconnected [][2]Ref
	Present      []Ref
	Absent       []Ref
	Handles      []HandleExpectation
	Out          []NeighborExpectation
	In           []NeighborExpectation
	Values       []ValueExpectation
}

// HandleExpectation asserts the exact handle a reference resolves to.
type HandleExpectation struct {
	Node Ref
	Want smallgraph.NodeHandle
}

// NeighborExpectation asserts a node's neighbors, ignoring order.
type NeighborExpectation struct {
	Node Ref
	Want []Ref
}

// ValueExpectation asserts the value stored under a reference.
type ValueExpectation struct {
	Node Ref
	Want cty.Value
}
