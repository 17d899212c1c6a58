package cli

import (
	"fmt"

	"github.com/mesh-intelligence/shapes/pkg/shapes"
	"github.com/spf13/cobra"
)

// demoStep records one call of the demo walk-through and its printed result.
type demoStep struct {
	Call   string `json:"call" yaml:"call"`
	Result string `json:"result" yaml:"result"`
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through rectangle and square operations",
		Long: `Demo builds Rectangle(10, 5) and Square(9), mutates them, and prints the
result of each operation along the way, ending with how many squares
fit inside the resized rectangle.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := runDemo()
			if err != nil {
				return sysError(fmt.Errorf("demo: %w", err))
			}
			a.log.Debug("demo finished", "steps", len(steps))

			if a.cfg.Output != outputText {
				return writeStructured(a.stdout, a.cfg.Output, steps)
			}
			for _, s := range steps {
				if _, err := fmt.Fprintln(a.stdout, s.Result); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// runDemo performs the walk-through and returns the result of every
// reporting call in order.
func runDemo() ([]demoStep, error) {
	var steps []demoStep
	record := func(call, result string) {
		steps = append(steps, demoStep{Call: call, Result: result})
	}

	rect, err := shapes.NewRectangle(10, 5)
	if err != nil {
		return nil, err
	}
	record("rect.Area()", formatNumber(rect.Area()))

	if err := rect.SetHeight(3); err != nil {
		return nil, err
	}
	record("rect.Perimeter()", formatNumber(rect.Perimeter()))
	record("rect.String()", rect.String())
	record("rect.Picture()", rect.Picture())

	sq, err := shapes.NewSquare(9)
	if err != nil {
		return nil, err
	}
	record("sq.Area()", formatNumber(sq.Area()))

	if err := sq.SetSide(4); err != nil {
		return nil, err
	}
	record("sq.Diagonal()", formatNumber(sq.Diagonal()))
	record("sq.String()", sq.String())
	record("sq.Picture()", sq.Picture())

	if err := rect.SetHeight(8); err != nil {
		return nil, err
	}
	if err := rect.SetWidth(16); err != nil {
		return nil, err
	}
	n, err := rect.AmountInside(sq)
	if err != nil {
		return nil, err
	}
	record("rect.AmountInside(sq)", fmt.Sprint(n))

	return steps, nil
}
