package cli

import (
	"fmt"

	"github.com/mesh-intelligence/shapes/pkg/shapes"
	"github.com/spf13/cobra"
)

func newSquareCmd(a *app) *cobra.Command {
	var setSide float64

	cmd := &cobra.Command{
		Use:   "square <side>",
		Short: "Describe a square",
		Long: `Square builds a square with the given side and prints its area, perimeter,
diagonal and picture. --set-side is applied after construction.

Example:
  shapes square 9
  shapes square 9 --set-side 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			side, err := parseDimension("side", args[0])
			if err != nil {
				return err
			}

			sq, err := shapes.NewSquare(side)
			if err != nil {
				return userError(fmt.Errorf("build square: %w", err))
			}
			a.log.Debug("built square", "side", side)

			if cmd.Flags().Changed("set-side") {
				if err := sq.SetSide(setSide); err != nil {
					return userError(fmt.Errorf("set side: %w", err))
				}
			}
			return a.writeReport(shapes.Describe(sq))
		},
	}

	cmd.Flags().Float64Var(&setSide, "set-side", 0, "side to apply after construction")
	return cmd
}
