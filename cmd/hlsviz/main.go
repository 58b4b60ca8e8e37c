package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hlscmds/hlsviz/audio"
	"github.com/hlscmds/hlsviz/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by all subcommands.
type app struct {
	verbose    bool
	configPath string

	logger *zap.Logger
	cfg    *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "hlsviz",
		Short: "Figures for the HLS-CMDS heart and lung sound dataset",
		Long: `hlsviz renders the dataset overview donut chart, waveform panels and
mel spectrogram panels of heart and lung sound recordings.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger

			if a.configPath == "" {
				a.cfg = config.Default()
				return nil
			}
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.logger.Debug("loaded config", zap.String("path", a.configPath))
			a.cfg = cfg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config (default: built in dataset)")

	root.AddCommand(
		a.donutCmd(),
		a.waveformCmd(),
		a.melspecCmd(),
		a.exportCmd(),
		a.initConfigCmd(),
	)
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

// sourcesFromArgs titles clips by file name without extension.
func sourcesFromArgs(args []string) []audio.Source {
	out := make([]audio.Source, len(args))
	for i, p := range args {
		base := filepath.Base(p)
		out[i] = audio.Source{Path: p, Title: strings.TrimSuffix(base, filepath.Ext(base))}
	}
	return out
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
