package scenario

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/specialistvlad/smallgraph/internal/ctxlog"
	"github.com/specialistvlad/smallgraph/pkg/smallgraph"
	"github.com/zclconf/go-cty/cty"
)

// Loader reads scenario files from disk.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new scenario loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load parses every .hcl file found under paths. Directories are walked
// recursively; the result is ordered by file path.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Scenario loader started.", "path_count", len(paths))

	files, err := findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.Errorf("no .hcl scenario files found in %v", paths)
	}
	logger.Debug("Discovered scenario files.", "count", len(files))

	scenarios := make([]*Scenario, 0, len(files))
	for _, file := range files {
		sc, err := l.LoadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

// LoadFile parses a single scenario file.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Scenario, error) {
	hclFile, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse scenario %s", path)
	}
	sc, err := decodeScenario(hclFile.Body, path)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Scenario decoded.", "path", path, "ops", len(sc.Ops))
	return sc, nil
}

// LoadSource parses scenario text held in memory. filename is only used in
// diagnostics. Unlike LoadFile it never returns a cached parse.
func (l *Loader) LoadSource(src []byte, filename string) (*Scenario, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse scenario %s", filename)
	}
	return decodeScenario(hclFile.Body, filename)
}

// decoder tracks which names have been declared so far in a file.
type decoder struct {
	path     string
	declared map[string]struct{}
}

func decodeScenario(body hcl.Body, path string) (*Scenario, error) {
	content, diags := body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to decode scenario %s", path)
	}

	d := &decoder{path: path, declared: make(map[string]struct{})}
	sc := &Scenario{Name: filepath.Base(path), Path: path}
	for _, block := range content.Blocks {
		op, err := d.decodeBlock(block)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: %s block", block.DefRange, block.Type)
		}
		sc.Ops = append(sc.Ops, op)
	}
	return sc, nil
}

func (d *decoder) decodeBlock(block *hcl.Block) (Op, error) {
	op := Op{Kind: OpKind(block.Type), Range: block.DefRange}

	switch block.Type {
	case blockInsert:
		var b valueBody
		if diags := gohcl.DecodeBody(block.Body, nil, &b); diags.HasErrors() {
			return op, diags
		}
		name := block.Labels[0]
		if name == "" || name[0] == literalPrefix[0] {
			return op, errors.Errorf("invalid node name %q", name)
		}
		if _, dup := d.declared[name]; dup {
			return op, errors.Errorf("node %q is already declared", name)
		}
		d.declared[name] = struct{}{}
		op.Name = name
		op.Value = valueOrNull(b.Value)

	case blockSet:
		var b valueBody
		if diags := gohcl.DecodeBody(block.Body, nil, &b); diags.HasErrors() {
			return op, diags
		}
		ref, err := d.ref(block.Labels[0])
		if err != nil {
			return op, err
		}
		op.Node = ref
		op.Value = valueOrNull(b.Value)

	case blockRemove:
		var b emptyBody
		if diags := gohcl.DecodeBody(block.Body, nil, &b); diags.HasErrors() {
			return op, diags
		}
		ref, err := d.ref(block.Labels[0])
		if err != nil {
			return op, err
		}
		op.Node = ref

	case blockConnect:
		var b connectBody
		if diags := gohcl.DecodeBody(block.Body, nil, &b); diags.HasErrors() {
			return op, diags
		}
		var err error
		if op.From, op.To, err = d.pair(b.From, b.To); err != nil {
			return op, err
		}
		op.Undirected = b.Undirected

	case blockDisconnect:
		var b disconnectBody
		if diags := gohcl.DecodeBody(block.Body, nil, &b); diags.HasErrors() {
			return op, diags
		}
		if err := d.decodeDisconnect(&op, b); err != nil {
			return op, err
		}

	case blockExpect:
		var b expectBody
		if diags := gohcl.DecodeBody(block.Body, nil, &b); diags.HasErrors() {
			return op, diags
		}
		exp, err := d.expectation(b)
		if err != nil {
			return op, err
		}
		op.Expect = exp

	default:
		// Unreachable: fileSchema rejects other block types.
		return op, errors.Errorf("unsupported block type %q", block.Type)
	}
	return op, nil
}

func (d *decoder) decodeDisconnect(op *Op, b disconnectBody) error {
	mode := DisconnectMode(b.Mode)
	if mode == "" {
		mode = ModeDirected
	}

	switch mode {
	case ModeAll:
		if b.To != "" {
			return errors.New(`mode "all" does not take a "to" node`)
		}
		from, err := d.ref(b.From)
		if err != nil {
			return err
		}
		op.From = from
	case ModeDirected, ModePair:
		from, to, err := d.pair(b.From, b.To)
		if err != nil {
			return err
		}
		op.From, op.To = from, to
	default:
		return errors.Errorf("unknown disconnect mode %q: want directed, pair or all", b.Mode)
	}
	op.Mode = mode
	return nil
}

func (d *decoder) expectation(b expectBody) (*Expectation, error) {
	exp := &Expectation{Count: b.Count, Edges: b.Edges}

	var err error
	if exp.Connected, err = d.pairs(b.Connected, "connected"); err != nil {
		return nil, err
	}
	if exp.Disconnected, err = d.pairs(b.Disconnected, "disconnected"); err != nil {
		return nil, err
	}
	if exp.Present, err = d.refs(b.Present); err != nil {
		return nil, errors.Wrap(err, "present")
	}
	if exp.Absent, err = d.refs(b.Absent); err != nil {
		return nil, errors.Wrap(err, "absent")
	}

	for _, key := range sortedKeys(b.Handle) {
		node, err := d.ref(key)
		if err != nil {
			return nil, errors.Wrap(err, "handle")
		}
		want, err := smallgraph.ParseHandle(b.Handle[key])
		if err != nil {
			return nil, errors.Wrapf(err, "handle for %q", key)
		}
		exp.Handles = append(exp.Handles, HandleExpectation{Node: node, Want: want})
	}

	if exp.Out, err = d.neighbors(b.Out, "out"); err != nil {
		return nil, err
	}
	if exp.In, err = d.neighbors(b.In, "in"); err != nil {
		return nil, err
	}

	if b.Values != nil && !b.Values.IsNull() {
		values := *b.Values
		if !values.Type().IsObjectType() && !values.Type().IsMapType() {
			return nil, errors.Errorf("values must be an object keyed by node, got %s", values.Type().FriendlyName())
		}
		for it := values.ElementIterator(); it.Next(); {
			k, v := it.Element()
			node, err := d.ref(k.AsString())
			if err != nil {
				return nil, errors.Wrap(err, "values")
			}
			exp.Values = append(exp.Values, ValueExpectation{Node: node, Want: v})
		}
	}
	return exp, nil
}

func (d *decoder) ref(raw string) (Ref, error) {
	r, err := parseRef(raw)
	if err != nil {
		return Ref{}, err
	}
	if !r.Literal {
		if _, ok := d.declared[r.Name]; !ok {
			return Ref{}, errors.Errorf("unknown node %q", r.Name)
		}
	}
	return r, nil
}

func (d *decoder) refs(raws []string) ([]Ref, error) {
	out := make([]Ref, 0, len(raws))
	for _, raw := range raws {
		r, err := d.ref(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (d *decoder) pair(from, to string) (Ref, Ref, error) {
	a, err := d.ref(from)
	if err != nil {
		return Ref{}, Ref{}, errors.Wrap(err, "from")
	}
	b, err := d.ref(to)
	if err != nil {
		return Ref{}, Ref{}, errors.Wrap(err, "to")
	}
	return a, b, nil
}

func (d *decoder) pairs(raws [][]string, attr string) ([][2]Ref, error) {
	out := make([][2]Ref, 0, len(raws))
	for _, p := range raws {
		if len(p) != 2 {
			return nil, errors.Errorf("%s: each entry must be a [from, to] pair, got %d elements", attr, len(p))
		}
		a, b, err := d.pair(p[0], p[1])
		if err != nil {
			return nil, errors.Wrap(err, attr)
		}
		out = append(out, [2]Ref{a, b})
	}
	return out, nil
}

func (d *decoder) neighbors(m map[string][]string, attr string) ([]NeighborExpectation, error) {
	var out []NeighborExpectation
	for _, key := range sortedKeys(m) {
		node, err := d.ref(key)
		if err != nil {
			return nil, errors.Wrap(err, attr)
		}
		want, err := d.refs(m[key])
		if err != nil {
			return nil, errors.Wrapf(err, "%s of %q", attr, key)
		}
		out = append(out, NeighborExpectation{Node: node, Want: want})
	}
	return out, nil
}

func valueOrNull(v *cty.Value) cty.Value {
	if v == nil {
		return cty.NullVal(cty.DynamicPseudoType)
	}
	return *v
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// findAllHCLFiles walks all given paths and returns a sorted, de-duplicated
// list of the .hcl files found.
func findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "error accessing path %s", path)
		}

		if !info.IsDir() {
			if filepath.Ext(path) != ".hcl" {
				return nil, errors.Errorf("scenario file %s must have a .hcl extension", path)
			}
			add(path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, entry os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.IsDir() && filepath.Ext(p) == ".hcl" {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "error walking %s", path)
		}
	}
	slices.Sort(allFiles)
	return allFiles, nil
}
