package scenario

import (
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/smallgraph/pkg/smallgraph"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// ExpectationError lists every assertion of an expect block that did not
// hold.
type ExpectationError struct {
	Failures []string
}

func (e *ExpectationError) Error() string {
	return fmt.Sprintf("%d expectation(s) failed: %s", len(e.Failures), strings.Join(e.Failures, "; "))
}

func (r *Result) check(exp *Expectation) error {
	g := r.Graph
	var failures []string
	fail := func(format string, args ...any) {
		failures = append(failures, fmt.Sprintf(format, args...))
	}

	// Loading guarantees every name in exp is declared before this block,
	// so resolve only fails for names that were never bound, which cannot
	// happen here.
	resolve := func(ref Ref) smallgraph.NodeHandle {
		h, _ := r.resolve(ref)
		return h
	}

	if exp.Count != nil {
		if got := g.Count(); got != *exp.Count {
			fail("count: want %d, got %d", *exp.Count, got)
		}
	}
	if exp.Edges != nil {
		if got := g.EdgeCount(); got != *exp.Edges {
			fail("edges: want %d, got %d", *exp.Edges, got)
		}
	}

	for _, p := range exp.Connected {
		if !g.IsConnected(resolve(p[0]), resolve(p[1])) {
			fail("connected: no edge %s -> %s", p[0], p[1])
		}
	}
	for _, p := range exp.Disconnected {
		if g.IsConnected(resolve(p[0]), resolve(p[1])) {
			fail("disconnected: unexpected edge %s -> %s", p[0], p[1])
		}
	}

	for _, ref := range exp.Present {
		if !g.Contains(resolve(ref)) {
			fail("present: %s is not live", ref)
		}
	}
	for _, ref := range exp.Absent {
		if g.Contains(resolve(ref)) {
			fail("absent: %s is still live", ref)
		}
	}

	for _, he := range exp.Handles {
		if got := resolve(he.Node); got != he.Want {
			fail("handle: %s want %s, got %s", he.Node, he.Want, got)
		}
	}

	for _, ne := range exp.Out {
		got := g.NeighborsOut(resolve(ne.Node))
		if !sameHandles(got, r.resolveAll(ne.Want)) {
			fail("out: %s want [%s], got [%s]", ne.Node, joinRefs(ne.Want), r.describe(got))
		}
	}
	for _, ne := range exp.In {
		got := g.NeighborsIn(resolve(ne.Node))
		if !sameHandles(got, r.resolveAll(ne.Want)) {
			fail("in: %s want [%s], got [%s]", ne.Node, joinRefs(ne.Want), r.describe(got))
		}
	}

	for _, ve := range exp.Values {
		got, ok := g.Get(resolve(ve.Node))
		if !ok {
			fail("values: %s is not live", ve.Node)
			continue
		}
		if !valuesEqual(got, ve.Want) {
			fail("values: %s want %s, got %s", ve.Node, ve.Want.GoString(), got.GoString())
		}
	}

	if len(failures) > 0 {
		return &ExpectationError{Failures: failures}
	}
	return nil
}

func (r *Result) resolveAll(refs []Ref) []smallgraph.NodeHandle {
	out := make([]smallgraph.NodeHandle, 0, len(refs))
	for _, ref := range refs {
		h, _ := r.resolve(ref)
		out = append(out, h)
	}
	return out
}

// describe renders handles using their bound names where possible.
func (r *Result) describe(hs []smallgraph.NodeHandle) string {
	parts := make([]string, len(hs))
	for i, h := range hs {
		if name, ok := r.NameOf(h); ok {
			parts[i] = name
		} else {
			parts[i] = literalPrefix + h.String()
		}
	}
	return strings.Join(parts, ", ")
}

func joinRefs(refs []Ref) string {
	parts := make([]string, len(refs))
	for i, ref := range refs {
		parts[i] = ref.String()
	}
	return strings.Join(parts, ", ")
}

// sameHandles compares two handle lists as multisets.
func sameHandles(a, b []smallgraph.NodeHandle) bool {
	if len(a) != len(b) {
		return false
	}
	cmp := func(x, y smallgraph.NodeHandle) int {
		if x.Index() != y.Index() {
			return x.Index() - y.Index()
		}
		return x.Generation() - y.Generation()
	}
	a = slices.SortedFunc(slices.Values(a), cmp)
	b = slices.SortedFunc(slices.Values(b), cmp)
	return slices.Equal(a, b)
}

// valuesEqual converts want to the type of got before comparing, so "2"
// matches a stored 2.
func valuesEqual(got, want cty.Value) bool {
	if got.IsNull() || want.IsNull() {
		return got.IsNull() && want.IsNull()
	}
	if !want.Type().Equals(got.Type()) {
		converted, err := convert.Convert(want, got.Type())
		if err != nil {
			return false
		}
		want = converted
	}
	eq := got.Equals(want)
	return eq.IsKnown() && !eq.IsNull() && eq.True()
}
