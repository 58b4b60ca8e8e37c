package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hlscmds/hlsviz/audio"
	"github.com/hlscmds/hlsviz/mel"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) melspecCmd() *cobra.Command {
	var output, dumpDir, rawDir string
	cmd := &cobra.Command{
		Use:   "melspec [clip ...]",
		Short: "Plot mel spectrograms of clips above a dB colorbar",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := a.cfg.Spectrogram
			if output == "" {
				output = sc.Output
			}
			sources := sc.Clips
			if len(args) > 0 {
				sources = sourcesFromArgs(args)
			}
			opts, err := sc.FigureOptions()
			if err != nil {
				return err
			}
			m := sc.Mel()

			c, err := m.PlotFile(sources, output, opts, a.logger)
			if err != nil {
				return err
			}
			a.logger.Info("wrote mel spectrograms",
				zap.String("path", output),
				zap.Int("panels", len(sources)),
				zap.Int("skipped", len(c.Skipped)))

			if dumpDir != "" {
				if err := a.dumpFloat16(m, sources, sc.Rate, dumpDir); err != nil {
					return err
				}
			}
			if rawDir != "" {
				if err := a.dumpRaw(m, sources, sc.Rate, rawDir); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image (default from config)")
	cmd.Flags().StringVar(&dumpDir, "dump", "", "also write each spectrogram as raw float16 dB to this directory")
	cmd.Flags().StringVar(&rawDir, "raw", "", "also write each spectrogram as a grayscale PNG to this directory")
	return cmd
}

func outName(dir, path, ext string) string {
	base := filepath.Base(path)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+ext)
}

func (a *app) dumpFloat16(m *mel.Mel, sources []audio.Source, rate int, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, src := range sources {
		spec, err := m.LoadMel(src.Path, rate)
		if err != nil {
			a.logger.Warn("skipping dump", zap.String("clip", src.Path), zap.Error(err))
			continue
		}
		name := outName(dir, src.Path, ".f16")
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		if err := spec.WriteFloat16(f); err != nil {
			f.Close()
			return fmt.Errorf("dump %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		a.logger.Debug("dumped spectrogram",
			zap.String("path", name),
			zap.Int("bands", spec.Bands()),
			zap.Int("frames", spec.Frames()))
	}
	return nil
}

func (a *app) dumpRaw(m *mel.Mel, sources []audio.Source, rate int, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, src := range sources {
		name := outName(dir, src.Path, ".png")
		if err := m.ToMelPng(src.Path, name, rate); err != nil {
			a.logger.Warn("skipping raw image", zap.String("clip", src.Path), zap.Error(err))
			continue
		}
		a.logger.Debug("wrote raw spectrogram", zap.String("path", name))
	}
	return nil
}
