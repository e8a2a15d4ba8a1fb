package config

const (
	defaultConfigPath     = "~/.config/sentai/config.toml"
	projectConfigName     = "sentai.toml"
	defaultEnvFile        = ".env"
	defaultBaseURL        = "https://api.openai.com/v1"
	defaultModel          = "gpt-4o-mini"
	defaultMode           = ModeJSONSchema
	defaultTitle          = "sentai"
	defaultTimeoutSeconds = 60
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
	defaultOutputFormat   = OutputJSON
)

// Structured-output modes accepted by llm.mode.
const (
	ModeJSONSchema = "json_schema"
	ModeJSONObject = "json_object"
)

// Result renderings accepted by output.format.
const (
	OutputJSON  = "json"
	OutputTable = "table"
	OutputYAML  = "yaml"
)

// DefaultEnvFile is the dotenv file read when --env-file is not given.
const DefaultEnvFile = defaultEnvFile

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		LLM: LLM{
			BaseURL:        defaultBaseURL,
			Model:          defaultModel,
			Mode:           defaultMode,
			Title:          defaultTitle,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
	}
}
