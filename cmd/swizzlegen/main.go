package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zeusync/gamemath/internal/observability/log"
	"github.com/zeusync/gamemath/internal/swizzle"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		manifestPath string
		outDir       string
		logLevel     string
	)

	cmd := &cobra.Command{
		Use:           "swizzlegen",
		Short:         "Render the named swizzle functions of pkg/vector",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger, err := log.New(log.Options{Level: level, Encoding: "console"})
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if err := run(cmd.Context(), logger, manifestPath, outDir); err != nil {
				logger.Error("generation failed", log.String("manifest", manifestPath), log.Err(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "swizzle.yaml", "swizzle manifest")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	return cmd
}

func run(ctx context.Context, logger log.Log, manifestPath, outDir string) error {
	f, err := os.Open(manifestPath)
	if err != nil {
		return fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	m, err := swizzle.LoadManifest(f)
	if err != nil {
		return err
	}

	paths, err := swizzle.Generate(ctx, m, outDir)
	if err != nil {
		return err
	}
	logger.Info("swizzles generated",
		log.String("package", m.Package),
		log.Int("groups", len(m.Groups)),
		log.Strings("files", paths),
	)
	return nil
}
