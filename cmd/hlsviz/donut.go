package main

import (
	"github.com/hlscmds/hlsviz/donut"
	"github.com/hlscmds/hlsviz/plot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) donutCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "donut",
		Short: "Render the layered sound type donut chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := a.cfg.Chart
			if output == "" {
				output = cc.Output
			}
			chart, err := cc.Chart()
			if err != nil {
				return err
			}
			fig, err := donut.RenderChart(chart, cc.HoleRadius, cc.Title)
			if err != nil {
				return err
			}
			if err := plot.SaveDonut(fig, plot.DefaultDonutStyle(), output); err != nil {
				return err
			}
			a.logger.Info("wrote donut chart",
				zap.String("path", output),
				zap.Int("rings", len(fig.Rings)),
				zap.Int("legend", len(fig.Legend)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image (default from config)")
	return cmd
}
