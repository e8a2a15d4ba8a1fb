package config

import (
	"os"
	"strings"
)

// Environment variables consulted during normalization. Set values override
// the config file.
const (
	EnvAPIKey   = "OPENAI_API_KEY"
	EnvBaseURL  = "OPENAI_BASE_URL"
	EnvModel    = "SENTAI_MODEL"
	EnvLogLevel = "SENTAI_LOG_LEVEL"
)

func (c *Config) normalize() error {
	c.normalizeLLM()
	c.normalizeLogging()
	c.normalizeOutput()
	return nil
}

func (c *Config) normalizeLLM() {
	c.LLM.APIKey = envOverride(EnvAPIKey, c.LLM.APIKey)
	c.LLM.BaseURL = envOverride(EnvBaseURL, c.LLM.BaseURL)
	c.LLM.Model = envOverride(EnvModel, c.LLM.Model)

	c.LLM.BaseURL = strings.TrimRight(c.LLM.BaseURL, "/")
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = defaultBaseURL
	}
	if c.LLM.Model == "" {
		c.LLM.Model = defaultModel
	}
	c.LLM.Mode = strings.ToLower(strings.TrimSpace(c.LLM.Mode))
	if c.LLM.Mode == "" {
		c.LLM.Mode = defaultMode
	}
	c.LLM.Referer = strings.TrimSpace(c.LLM.Referer)
	c.LLM.Title = strings.TrimSpace(c.LLM.Title)
	if c.LLM.TimeoutSeconds == 0 {
		c.LLM.TimeoutSeconds = defaultTimeoutSeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console", "text":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(envOverride(EnvLogLevel, c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
}

func envOverride(key, current string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return strings.TrimSpace(current)
}
