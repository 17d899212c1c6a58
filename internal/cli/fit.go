package cli

import (
	"fmt"

	"github.com/mesh-intelligence/shapes/pkg/shapes"
	"github.com/spf13/cobra"
)

// fitResult is the structured output of the fit command.
type fitResult struct {
	Outer  string `json:"outer" yaml:"outer"`
	Inner  string `json:"inner" yaml:"inner"`
	Amount int    `json:"amount" yaml:"amount"`
}

func newFitCmd(a *app) *cobra.Command {
	var innerHeight float64

	cmd := &cobra.Command{
		Use:   "fit <width> <height> <side>",
		Short: "Count how many shapes fit inside a rectangle",
		Long: `Fit prints how many non-rotated squares of the given side fit inside a
width x height rectangle. With --inner-height the inner shape becomes a
rectangle of side x inner-height.

Example:
  shapes fit 16 8 4
  shapes fit 16 8 4 --inner-height 2`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := parseDimension("width", args[0])
			if err != nil {
				return err
			}
			height, err := parseDimension("height", args[1])
			if err != nil {
				return err
			}
			side, err := parseDimension("side", args[2])
			if err != nil {
				return err
			}

			outer, err := shapes.NewRectangle(width, height)
			if err != nil {
				return userError(fmt.Errorf("build outer rectangle: %w", err))
			}

			var inner shapes.Shape
			if cmd.Flags().Changed("inner-height") {
				inner, err = shapes.NewRectangle(side, innerHeight)
			} else {
				inner, err = shapes.NewSquare(side)
			}
			if err != nil {
				return userError(fmt.Errorf("build inner shape: %w", err))
			}

			n, err := outer.AmountInside(inner)
			if err != nil {
				return userError(fmt.Errorf("amount inside: %w", err))
			}
			a.log.Debug("computed fit", "outer", outer.String(), "inner", inner.String(), "amount", n)

			if a.cfg.Output != outputText {
				return writeStructured(a.stdout, a.cfg.Output, fitResult{
					Outer:  outer.String(),
					Inner:  inner.String(),
					Amount: n,
				})
			}
			_, err = fmt.Fprintln(a.stdout, n)
			return err
		},
	}

	cmd.Flags().Float64Var(&innerHeight, "inner-height", 0, "use a side x inner-height rectangle as the inner shape")
	return cmd
}
