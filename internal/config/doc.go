// Package config loads, normalizes, and validates sentai configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads .env files, and honours environment
// overrides such as OPENAI_API_KEY. The Config type centralizes every knob the
// CLI needs so the classifier receives sanitized connection settings and
// canonical log formats in one pass.
//
// Validation never requires the API key. Its absence is a runtime condition
// reported by the classifier with a fixed message.
package config
