// Package cli is the gamemath command line: one subcommand per library
// operation, each printing its result as space separated numbers.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zeusync/gamemath/internal/config"
	"github.com/zeusync/gamemath/internal/injector"
	"github.com/zeusync/gamemath/internal/observability/log"
)

var (
	ErrArgs          = errors.New("invalid arguments")
	ErrInvalidNumber = errors.New("invalid number")
)

type app struct {
	cfgFile  string
	logLevel string
	seed     string

	rt *injector.Runtime
}

// NewRootCommand builds the command tree. Each call returns an
// independent tree, so tests can run commands side by side.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "gamemath",
		Short:         "Vector, color and transform helpers from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.rt != nil {
				_ = a.rt.Log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level")
	root.PersistentFlags().StringVar(&a.seed, "seed", "", "override the configured random seed")

	root.AddCommand(a.vectorCommands()...)
	root.AddCommand(a.colorCommands()...)
	root.AddCommand(a.scalarCommands()...)
	root.AddCommand(a.transformCommand())
	for _, cmd := range root.Commands() {
		acceptNegatives(cmd)
	}
	return root
}

// Execute runs the root command with os.Args and reports a failure on stderr.
func Execute(ctx context.Context) error {
	root := NewRootCommand()
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "gamemath:", err)
	}
	return err
}

func (a *app) init(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.cfgFile != "" {
		loaded, err := config.LoadFile(a.cfgFile)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.seed != "" {
		cfg.Random.Seed = a.seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	rt, err := injector.InitializeRuntime(&cfg)
	if err != nil {
		return err
	}
	a.rt = rt
	a.rt.Log = rt.Log.Named(cmd.Name())
	a.rt.Log.Debug("command started", log.Strings("args", cmd.Flags().Args()))
	return nil
}

// emit prints values on one line and records them at debug level.
func (a *app) emit(cmd *cobra.Command, values ...float32) error {
	if err := writeFloats(cmd.OutOrStdout(), values...); err != nil {
		return err
	}
	a.rt.Log.Debug("result", log.Floats("values", values...))
	return nil
}

func writeFloats(w io.Writer, values ...float32) error {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

func parseFloats(args []string) ([]float32, error) {
	out := make([]float32, len(args))
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
		}
		out[i] = float32(f)
	}
	return out, nil
}
