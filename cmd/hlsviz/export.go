package main

import (
	"github.com/hlscmds/hlsviz/audio"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) exportCmd() *cobra.Command {
	var rate int
	cmd := &cobra.Command{
		Use:   "export <input> <output.wav>",
		Short: "Decode a clip and write a playable mono 16-bit WAV copy",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clip, err := audio.Load(args[0], rate)
			if err != nil {
				return err
			}
			if err := clip.WriteWAV(args[1]); err != nil {
				return err
			}
			a.logger.Info("exported clip",
				zap.String("from", args[0]),
				zap.String("to", args[1]),
				zap.Int("rate", clip.SampleRate),
				zap.Duration("duration", clip.Duration()))
			return nil
		},
	}
	cmd.Flags().IntVar(&rate, "rate", audio.DefaultRate, "output sample rate, 0 keeps the input rate")
	return cmd
}
