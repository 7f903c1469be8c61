package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format selects how reports are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatHCL}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Errorf("invalid output format %q. Must be one of: text, json, yaml, hcl", s)
}

// Render writes reports to w. JSON and YAML always produce a list, even for a
// single report.
func Render(w io.Writer, format Format, reports ...*Report) error {
	if reports == nil {
		reports = []*Report{}
	}
	switch format {
	case FormatText, "":
		return renderText(w, reports)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(reports), "failed to encode JSON report")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return errors.Wrap(err, "failed to encode YAML report")
		}
		return errors.Wrap(enc.Close(), "failed to encode YAML report")
	case FormatHCL:
		return renderHCL(w, reports)
	default:
		return errors.Errorf("unsupported output format %q", format)
	}
}

func renderText(w io.Writer, reports []*Report) error {
	for i, rep := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		status := "ok"
		if !rep.Passed {
			status = "FAILED"
		}
		if _, err := fmt.Fprintf(w, "scenario %s: %s (nodes=%d edges=%d capacity=%d free=%d)\n",
			rep.Scenario, status, rep.Nodes, rep.Edges, rep.Capacity, rep.Free); err != nil {
			return err
		}
		if rep.Error != "" {
			if _, err := fmt.Fprintf(w, "  error: %s\n", rep.Error); err != nil {
				return err
			}
		}
		if len(rep.Entries) == 0 {
			continue
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  NAME\tHANDLE\tLIVE\tVALUE\tOUT\tIN")
		for _, n := range rep.Entries {
			live, value := "no", "-"
			if n.Live {
				live, value = "yes", compactValue(n.raw)
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n",
				n.Name, n.Handle, live, value, list(n.Out), list(n.In))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func list(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}
