package cli

import (
	"fmt"

	"github.com/mesh-intelligence/shapes/pkg/shapes"
	"github.com/spf13/cobra"
)

const modulePath = "github.com/mesh-intelligence/shapes"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the shapes version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "shapes v%s\nmodule: %s\n", shapes.Version, modulePath)
			return nil
		},
	}
}
