package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	ctx := newCommandContext(flags)
	opts := &classifyOptions{}

	rootCmd := &cobra.Command{
		Use:   "sentai [flags] <text>",
		Short: "Classify the sentiment of a piece of text with a language model",
		Long: "sentai sends the text to an OpenAI-compatible chat completion endpoint and prints\n" +
			"its polarity, emotion, subjectivity and a short rationale as JSON.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			return usageError(cobra.ExactArgs(1)(cmd, args))
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, ctx, opts, args[0])
		},
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	persistent.StringVar(&flags.envFile, "env-file", "", "Dotenv file to load before reading configuration (default .env)")
	persistent.StringVar(&flags.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	persistent.StringVar(&flags.logFormat, "log-format", "", "Log format override (console, json)")

	rootCmd.Flags().StringVar(&opts.model, "model", "", "Model identifier override")
	rootCmd.Flags().StringVar(&opts.mode, "mode", "", "Structured output mode (json_schema, json_object)")
	rootCmd.Flags().StringVar(&opts.format, "format", "", "Output format (json, table, yaml)")

	rootCmd.AddCommand(newPromptCommand(ctx))
	rootCmd.AddCommand(newSchemaCommand())
	rootCmd.AddCommand(newHealthCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
