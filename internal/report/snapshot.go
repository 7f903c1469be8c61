package report

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
)

// renderHCL writes the live nodes and edges of each report as a scenario
// that rebuilds the same graph when replayed. Removed nodes are omitted, so
// handles in the replayed graph are compacted.
func renderHCL(w io.Writer, reports []*Report) error {
	for i, rep := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "# snapshot of %s\n", rep.Scenario); err != nil {
			return err
		}
		if _, err := snapshot(rep).WriteTo(w); err != nil {
			return errors.Wrapf(err, "failed to write HCL snapshot of %s", rep.Scenario)
		}
	}
	return nil
}

func snapshot(rep *Report) *hclwrite.File {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	for _, n := range rep.Entries {
		if !n.Live {
			continue
		}
		body := root.AppendNewBlock("insert", []string{n.Name}).Body()
		if n.raw != cty.NilVal && !n.raw.IsNull() {
			body.SetAttributeValue("value", n.raw)
		}
	}
	for _, n := range rep.Entries {
		for _, dest := range n.Out {
			body := root.AppendNewBlock("connect", nil).Body()
			body.SetAttributeValue("from", cty.StringVal(n.Name))
			body.SetAttributeValue("to", cty.StringVal(dest))
		}
	}
	return f
}
