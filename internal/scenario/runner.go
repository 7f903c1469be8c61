package scenario

import (
	"context"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/pkg/errors"
	"github.com/specialistvlad/smallgraph/internal/ctxlog"
	"github.com/specialistvlad/smallgraph/pkg/smallgraph"
	"github.com/zclconf/go-cty/cty"
)

// Options tune how a scenario is run.
type Options struct {
	// Strict turns operations on handles that are not live into errors.
	// Otherwise they are logged and skipped, matching the graph's own
	// no-op semantics.
	Strict bool
}

// Result is the state of a scenario after its last operation.
type Result struct {
	Scenario *Scenario
	Graph    *smallgraph.Graph[cty.Value]

	// bindings maps node names to handles in declaration order.
	bindings *linkedhashmap.Map
}

// Names returns every bound name in declaration order, including names
// whose node has since been removed.
func (r *Result) Names() []string {
	names := make([]string, 0, r.bindings.Size())
	r.bindings.Each(func(key, _ interface{}) {
		names = append(names, key.(string))
	})
	return names
}

// Handle returns the handle a name was bound to.
func (r *Result) Handle(name string) (smallgraph.NodeHandle, bool) {
	v, ok := r.bindings.Get(name)
	if !ok {
		return smallgraph.NodeHandle{}, false
	}
	return v.(smallgraph.NodeHandle), true
}

// NameOf returns the name bound to h, if h is a handle some name was bound to.
func (r *Result) NameOf(h smallgraph.NodeHandle) (string, bool) {
	key, _ := r.bindings.Find(func(_ interface{}, v interface{}) bool {
		return v.(smallgraph.NodeHandle) == h
	})
	if key == nil {
		return "", false
	}
	return key.(string), true
}

func (r *Result) resolve(ref Ref) (smallgraph.NodeHandle, error) {
	if ref.Literal {
		return ref.Handle, nil
	}
	h, ok := r.Handle(ref.Name)
	if !ok {
		return smallgraph.NodeHandle{}, errors.Errorf("unknown node %q", ref.Name)
	}
	return h, nil
}

// Run replays sc against a new graph. It returns the partial result
// alongside the error if an operation or expectation fails.
func Run(ctx context.Context, sc *Scenario, opts Options) (*Result, error) {
	ctx, logger := ctxlog.With(ctx, "scenario", sc.Name)
	logger.Debug("Scenario run started.", "ops", len(sc.Ops), "strict", opts.Strict)

	res := &Result{
		Scenario: sc,
		Graph:    smallgraph.New[cty.Value](),
		bindings: linkedhashmap.New(),
	}

	for i := range sc.Ops {
		op := &sc.Ops[i]
		if err := res.apply(ctx, op, opts); err != nil {
			return res, errors.Wrapf(err, "%s: %s", op.Range, op.Kind)
		}
	}

	logger.Debug("Scenario run complete.", "nodes", res.Graph.Count(), "edges", res.Graph.EdgeCount())
	return res, nil
}

func (r *Result) apply(ctx context.Context, op *Op, opts Options) error {
	logger := ctxlog.FromContext(ctx)
	g := r.Graph

	switch op.Kind {
	case OpInsert:
		h := g.Insert(op.Value)
		r.bindings.Put(op.Name, h)
		logger.Debug("Inserted node.", "name", op.Name, "handle", h.String())

	case OpSet:
		h, err := r.resolve(op.Node)
		if err != nil {
			return err
		}
		p, ok := g.GetMut(h)
		if !ok {
			return r.stale(ctx, opts, op, op.Node)
		}
		*p = op.Value
		logger.Debug("Updated node value.", "node", op.Node.String(), "handle", h.String())

	case OpRemove:
		h, err := r.resolve(op.Node)
		if err != nil {
			return err
		}
		if _, ok := g.Remove(h); !ok {
			return r.stale(ctx, opts, op, op.Node)
		}
		logger.Debug("Removed node.", "node", op.Node.String(), "handle", h.String())

	case OpConnect:
		from, to, err := r.resolvePair(op.From, op.To)
		if err != nil {
			return err
		}
		var ok bool
		if op.Undirected {
			ok = g.ConnectUndirected(from, to)
		} else {
			ok = g.ConnectDirected(from, to)
		}
		if !ok {
			return r.stale(ctx, opts, op, op.From, op.To)
		}
		logger.Debug("Connected nodes.", "from", op.From.String(), "to", op.To.String(), "undirected", op.Undirected)

	case OpDisconnect:
		return r.disconnect(ctx, op, opts)

	case OpExpect:
		if err := r.check(op.Expect); err != nil {
			logger.Warn("Expectation failed.", "at", op.Range.String(), "error", err)
			return err
		}
		logger.Debug("Expectation passed.", "at", op.Range.String())

	default:
		return errors.Errorf("unsupported operation %q", op.Kind)
	}
	return nil
}

func (r *Result) disconnect(ctx context.Context, op *Op, opts Options) error {
	g := r.Graph
	from, err := r.resolve(op.From)
	if err != nil {
		return err
	}

	if op.Mode == ModeAll {
		if !g.Contains(from) {
			return r.stale(ctx, opts, op, op.From)
		}
		removed := g.DisconnectAll(from)
		ctxlog.FromContext(ctx).Debug("Disconnected node.", "node", op.From.String(), "removed", removed)
		return nil
	}

	to, err := r.resolve(op.To)
	if err != nil {
		return err
	}
	if !g.Contains(from) || !g.Contains(to) {
		return r.stale(ctx, opts, op, op.From, op.To)
	}

	var removed int
	if op.Mode == ModePair {
		removed = g.DisconnectPair(from, to)
	} else {
		removed = g.DisconnectDirected(from, to)
	}
	ctxlog.FromContext(ctx).Debug("Disconnected nodes.", "from", op.From.String(), "to", op.To.String(), "mode", string(op.Mode), "removed", removed)
	return nil
}

func (r *Result) resolvePair(a, b Ref) (smallgraph.NodeHandle, smallgraph.NodeHandle, error) {
	ha, err := r.resolve(a)
	if err != nil {
		return ha, ha, err
	}
	hb, err := r.resolve(b)
	return ha, hb, err
}

// stale handles an operation that referred to a node that is not live.
func (r *Result) stale(ctx context.Context, opts Options, op *Op, refs ...Ref) error {
	names := make([]string, len(refs))
	for i, ref := range refs {
		names[i] = ref.String()
	}
	msg := fmt.Sprintf("%s on a node that is not live (%s)", op.Kind, strings.Join(names, ", "))
	if opts.Strict {
		return errors.New(msg)
	}
	ctxlog.FromContext(ctx).Warn("Skipped operation.", "at", op.Range.String(), "reason", msg)
	return nil
}
