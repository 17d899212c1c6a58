package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/shapes/pkg/shapes"
	"gopkg.in/yaml.v3"
)

// writeStructured encodes v as JSON or YAML according to format.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return userError(fmt.Errorf("marshal json: %w", err))
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q", errUnknownOutput, format)
	}
}

// writeReport prints a shape report in the configured format. Reports with
// non-finite values are rejected before anything is written.
func (a *app) writeReport(rep shapes.Report) error {
	if err := rep.Validate(); err != nil {
		return userError(fmt.Errorf("describe shape: %w", err))
	}
	if a.cfg.Output != outputText {
		return writeStructured(a.stdout, a.cfg.Output, rep)
	}

	var b strings.Builder
	fmt.Fprintln(&b, rep.String)
	fmt.Fprintf(&b, "area:      %s\n", formatNumber(rep.Area))
	fmt.Fprintf(&b, "perimeter: %s\n", formatNumber(rep.Perimeter))
	fmt.Fprintf(&b, "diagonal:  %s\n", formatNumber(rep.Diagonal))
	fmt.Fprintln(&b, rep.Picture)
	_, err := io.WriteString(a.stdout, b.String())
	return err
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseDimension converts a positional argument into a dimension.
// Range checks are left to the shapes package.
func parseDimension(name, arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, userError(fmt.Errorf("%s: %q is not a number", name, arg))
	}
	return v, nil
}
