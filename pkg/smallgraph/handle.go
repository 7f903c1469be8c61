package smallgraph

import (
	"fmt"
	"regexp"
	"strconv"
)

// NodeHandle identifies a node in a Graph. Handles are comparable with ==
// and are only meaningful to the Graph that issued them.
type NodeHandle struct {
	index      int
	generation int
}

// Index returns the slot position the handle refers to.
func (h NodeHandle) Index() int {
	return h.index
}

// Generation returns the slot generation the handle was issued under.
func (h NodeHandle) Generation() int {
	return h.generation
}

// String returns the canonical "index:generation" form, e.g. "3:1".
func (h NodeHandle) String() string {
	return strconv.Itoa(h.index) + ":" + strconv.Itoa(h.generation)
}

// handleRegex matches the canonical string form produced by String.
var handleRegex = regexp.MustCompile(`^(\d+):(\d+)$`)

// ParseHandle is the inverse of NodeHandle.String. A parsed handle is not
// necessarily valid for any graph.
func ParseHandle(raw string) (NodeHandle, error) {
	if raw == "" {
		return NodeHandle{}, fmt.Errorf("handle cannot be empty")
	}

	matches := handleRegex.FindStringSubmatch(raw)
	if matches == nil {
		return NodeHandle{}, fmt.Errorf("invalid handle format %q: want index:generation", raw)
	}

	index, err := strconv.Atoi(matches[1])
	if err != nil {
		return NodeHandle{}, fmt.Errorf("invalid handle index in %q: %w", raw, err)
	}
	gen, err := strconv.Atoi(matches[2])
	if err != nil {
		return NodeHandle{}, fmt.Errorf("invalid handle generation in %q: %w", raw, err)
	}
	return NodeHandle{index: index, generation: gen}, nil
}

// Edge is a directed arc between two slot indices. Edges carry no generation;
// the graph keeps them consistent by pruning on removal.
type Edge struct {
	Source int
	Dest   int
}
