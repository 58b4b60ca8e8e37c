package main

import (
	"github.com/hlscmds/hlsviz/wave"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) waveformCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "waveform [clip ...]",
		Short: "Plot the waveforms of clips in stacked panels",
		RunE: func(cmd *cobra.Command, args []string) error {
			wc := a.cfg.Waveform
			if output == "" {
				output = wc.Output
			}
			sources := wc.Clips
			if len(args) > 0 {
				sources = sourcesFromArgs(args)
			}
			c, err := wave.PlotFile(sources, output, wc.Options(), a.logger)
			if err != nil {
				return err
			}
			a.logger.Info("wrote waveforms",
				zap.String("path", output),
				zap.Int("panels", len(sources)),
				zap.Int("skipped", len(c.Skipped)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image (default from config)")
	return cmd
}
