package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) initConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config <path>",
		Short: "Write the effective config as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Save(args[0]); err != nil {
				return err
			}
			a.logger.Info("wrote config", zap.String("path", args[0]))
			return nil
		},
	}
}
