package cli

import (
	"fmt"

	"github.com/mesh-intelligence/shapes/pkg/shapes"
	"github.com/spf13/cobra"
)

func newRectangleCmd(a *app) *cobra.Command {
	var setWidth, setHeight float64

	cmd := &cobra.Command{
		Use:     "rectangle <width> <height>",
		Aliases: []string{"rect"},
		Short:   "Describe a rectangle",
		Long: `Rectangle builds a rectangle of the given width and height and prints its
area, perimeter, diagonal and picture. --set-width and --set-height are
applied after construction, width first.

Example:
  shapes rectangle 10 5
  shapes rectangle 10 5 --set-height 3 -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := parseDimension("width", args[0])
			if err != nil {
				return err
			}
			height, err := parseDimension("height", args[1])
			if err != nil {
				return err
			}

			r, err := shapes.NewRectangle(width, height)
			if err != nil {
				return userError(fmt.Errorf("build rectangle: %w", err))
			}
			a.log.Debug("built rectangle", "width", width, "height", height)

			if cmd.Flags().Changed("set-width") {
				if err := r.SetWidth(setWidth); err != nil {
					return userError(fmt.Errorf("set width: %w", err))
				}
			}
			if cmd.Flags().Changed("set-height") {
				if err := r.SetHeight(setHeight); err != nil {
					return userError(fmt.Errorf("set height: %w", err))
				}
			}
			return a.writeReport(shapes.Describe(r))
		},
	}

	cmd.Flags().Float64Var(&setWidth, "set-width", 0, "width to apply after construction")
	cmd.Flags().Float64Var(&setHeight, "set-height", 0, "height to apply after construction")
	return cmd
}
