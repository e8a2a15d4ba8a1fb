package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable. A missing API key is not a
// validation failure: the classifier reports it when a request is attempted.
func (c *Config) Validate() error {
	if err := c.validateLLM(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLLM() error {
	if c.LLM.Model == "" {
		return errors.New("llm.model must be set")
	}
	parsed, err := url.Parse(c.LLM.BaseURL)
	if err != nil {
		return fmt.Errorf("llm.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("llm.base_url must use http or https, got %q", c.LLM.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("llm.base_url must include a host, got %q", c.LLM.BaseURL)
	}
	switch c.LLM.Mode {
	case ModeJSONSchema, ModeJSONObject:
	default:
		return fmt.Errorf("llm.mode must be %q or %q, got %q", ModeJSONSchema, ModeJSONObject, c.LLM.Mode)
	}
	if c.LLM.TimeoutSeconds <= 0 {
		return errors.New("llm.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case OutputJSON, OutputTable, OutputYAML:
		return nil
	default:
		return fmt.Errorf("output.format must be %q, %q or %q, got %q", OutputJSON, OutputTable, OutputYAML, c.Output.Format)
	}
}
