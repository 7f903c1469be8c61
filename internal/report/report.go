// Package report summarizes the final graph of a scenario run and renders it
// as text, JSON or YAML.
package report

import (
	"fmt"

	"github.com/specialistvlad/smallgraph/internal/scenario"
	"github.com/specialistvlad/smallgraph/pkg/smallgraph"
	"github.com/zclconf/go-cty/cty"
)

// Report is the end state of one scenario.
type Report struct {
	Scenario string `json:"scenario" yaml:"scenario"`
	Passed   bool   `json:"passed" yaml:"passed"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
	Nodes    int    `json:"nodes" yaml:"nodes"`
	Edges    int    `json:"edges" yaml:"edges"`
	Capacity int    `json:"capacity" yaml:"capacity"`
	Free     int    `json:"free" yaml:"free"`
	Entries  []Node `json:"entries" yaml:"entries"`
}

// Node describes one name binding. Removed nodes are kept with Live unset
// so the report shows which handles went stale.
type Node struct {
	Name   string   `json:"name" yaml:"name"`
	Handle string   `json:"handle" yaml:"handle"`
	Live   bool     `json:"live" yaml:"live"`
	Value  any      `json:"value,omitempty" yaml:"value,omitempty"`
	Out    []string `json:"out,omitempty" yaml:"out,omitempty"`
	In     []string `json:"in,omitempty" yaml:"in,omitempty"`

	raw cty.Value
}

// Build summarizes res. runErr is the error Run returned, if any; the report
// then describes the partial state at the point of failure.
func Build(res *scenario.Result, runErr error) (*Report, error) {
	g := res.Graph
	rep := &Report{
		Scenario: res.Scenario.Name,
		Passed:   runErr == nil,
		Nodes:    g.Count(),
		Edges:    g.EdgeCount(),
		Capacity: g.Capacity(),
		Free:     g.FreeLen(),
	}
	if runErr != nil {
		rep.Error = runErr.Error()
	}

	for _, name := range res.Names() {
		h, _ := res.Handle(name)
		entry := Node{Name: name, Handle: h.String()}

		if v, ok := g.Get(h); ok {
			native, err := ctyToNative(v)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", name, err)
			}
			entry.Live = true
			entry.Value = native
			entry.raw = v
			entry.Out = names(res, g.NeighborsOut(h))
			entry.In = names(res, g.NeighborsIn(h))
		}
		rep.Entries = append(rep.Entries, entry)
	}
	return rep, nil
}

func names(res *scenario.Result, hs []smallgraph.NodeHandle) []string {
	if len(hs) == 0 {
		return nil
	}
	out := make([]string, len(hs))
	for i, h := range hs {
		if name, ok := res.NameOf(h); ok {
			out[i] = name
		} else {
			out[i] = "#" + h.String()
		}
	}
	return out
}
