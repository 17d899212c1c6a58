// Package cli implements the shapes command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mesh-intelligence/shapes/internal/logger"
	"github.com/mesh-intelligence/shapes/pkg/shapes"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	output    string
	verbose   bool
}

// app is the per-invocation state built by the root command before any
// subcommand runs.
type app struct {
	flags  rootFlags
	cfg    settings
	log    *logger.Logger
	stdout io.Writer
}

// NewRootCmd creates the top-level "shapes" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{log: logger.Nop()}

	root := &cobra.Command{
		Use:   "shapes",
		Short: "Measure and draw rectangles and squares",
		Long: "Shapes builds rectangles and squares from the given dimensions and prints\n" +
			"their area, perimeter, diagonal, picture and containment counts.",
		Version: shapes.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $SHAPES_CONFIG_DIR or the platform config dir)")
	root.PersistentFlags().StringVarP(&a.flags.output, "output", "o", "", "output format: text, json or yaml")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging on stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newRectangleCmd(a))
	root.AddCommand(newSquareCmd(a))
	root.AddCommand(newFitCmd(a))
	root.AddCommand(newDemoCmd(a))

	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.stdout = cmd.OutOrStdout()

	cfg, err := loadSettings(cmd, a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("load config: %w", err))
	}
	if err := cfg.validate(); err != nil {
		return userError(err)
	}
	a.cfg = cfg

	log, err := logger.New(cfg.LogMode, cfg.Verbose)
	if err != nil {
		return sysError(fmt.Errorf("build logger: %w", err))
	}
	a.log = log.With("command", cmd.Name())
	a.log.Debug("configuration loaded", "config_dir", cfg.ConfigDir, "config_file", cfg.ConfigFile, "output", cfg.Output)
	return nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitError attaches an exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps err to a process exit code. Errors without an explicit
// code come from cobra argument handling and count as user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
