package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sentai/internal/services"
)

func newHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the configured endpoint answers a JSON ping",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			c, err := ctx.newClassifier(cmd, "", "")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			label := "LLM endpoint"
			if !c.Configured() {
				fmt.Fprintln(out, renderStatusLine(label, statusError, "API key not set", colorize))
				return c.HealthCheck(cmd.Context())
			}

			runCtx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.LLM.TimeoutSeconds)*time.Second)
			defer cancel()
			runCtx = services.WithOperation(runCtx, "health")

			if err := c.HealthCheck(runCtx); err != nil {
				fmt.Fprintln(out, renderStatusLine(label, statusError, services.Kind(err), colorize))
				return err
			}
			fmt.Fprintln(out, renderStatusLine(label, statusOK, fmt.Sprintf("Ready (model: %s)", c.Model()), colorize))
			return nil
		},
	}
}
