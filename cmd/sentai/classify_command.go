package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sentai/internal/config"
	"sentai/internal/sentiment"
	"sentai/internal/services"
)

type classifyOptions struct {
	model  string
	mode   string
	format string
}

func runClassify(cmd *cobra.Command, ctx *commandContext, opts *classifyOptions, text string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	format, err := resolveOutputFormat(opts.format, cfg.Output.Format)
	if err != nil {
		return err
	}
	c, err := ctx.newClassifier(cmd, opts.model, opts.mode)
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.LLM.TimeoutSeconds)*time.Second)
	defer cancel()
	runCtx = services.WithOperation(runCtx, "classify")

	result, err := c.Classify(runCtx, text)
	if err != nil {
		return err
	}
	return writeResult(cmd, format, result)
}

func resolveOutputFormat(flagValue, configured string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(flagValue))
	if format == "" {
		format = configured
	}
	switch format {
	case config.OutputJSON, config.OutputTable, config.OutputYAML:
		return format, nil
	default:
		return "", usageError(fmt.Errorf("unsupported output format %q (use %s, %s or %s)", flagValue, config.OutputJSON, config.OutputTable, config.OutputYAML))
	}
}

func writeResult(cmd *cobra.Command, format string, result sentiment.Result) error {
	switch format {
	case config.OutputTable:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), renderResultTable(result))
		return err
	case config.OutputYAML:
		return writeYAML(cmd, result)
	default:
		return writeJSON(cmd, result)
	}
}
