package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sentai/internal/classifier"
	"sentai/internal/sentiment"
)

func newPromptCommand(ctx *commandContext) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the instructions sent to the model",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value := strings.TrimSpace(mode)
			if value == "" {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				value = cfg.LLM.Mode
			}
			parsed, err := classifier.ParseMode(value)
			if err != nil {
				return err
			}
			instructions, err := classifier.BuildInstructions(parsed)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), instructions)
			return err
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "Structured output mode (json_schema, json_object)")
	return cmd
}

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "schema",
		Short:       "Print the JSON schema of a classification result",
		Args:        noArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := sentiment.SchemaJSON()
			if err != nil {
				return fmt.Errorf("encode schema: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	return usageError(cobra.NoArgs(cmd, args))
}
