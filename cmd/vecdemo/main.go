// Command vecdemo opens a window that exercises the vector and color
// packages: a rotating arrow with a clamped length and a hue-cycling
// point cloud.
package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/zeusync/gamemath/internal/config"
	"github.com/zeusync/gamemath/internal/demo"
	"github.com/zeusync/gamemath/internal/injector"
	"github.com/zeusync/gamemath/internal/observability/log"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "vecdemo",
		Short:         "Show rotation, magnitude clamping and hue cycling in a window",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			rt, err := injector.InitializeRuntime(cfg)
			if err != nil {
				return err
			}
			logger := rt.Log.Named("vecdemo")
			defer func() { _ = logger.Sync() }()

			if err := run(rt, logger); err != nil {
				logger.Error("demo stopped", log.Err(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "YAML config file")
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.Default()
		return &cfg, nil
	}
	return config.LoadFile(path)
}

func run(rt *injector.Runtime, logger log.Log) error {
	cfg := rt.Config.Demo
	g := &game{
		scene: demo.NewScene(cfg, rt.Rand),
		cfg:   cfg,
		log:   logger,
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("gamemath")

	logger.Info("window opened",
		log.Int("width", cfg.Width),
		log.Int("height", cfg.Height),
		log.Int("points", cfg.Points),
		log.String("seed", rt.Config.Random.Seed),
	)

	// Escape ends the loop with ebiten.Termination, which RunGame reports as nil.
	return ebiten.RunGame(g)
}
