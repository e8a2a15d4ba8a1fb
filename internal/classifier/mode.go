package classifier

import (
	"fmt"
	"strings"

	"sentai/internal/sentiment"
	"sentai/internal/services"
	"sentai/internal/services/llm"
)

// Mode selects the response_format shape requested from the endpoint.
type Mode string

const (
	// ModeJSONSchema sends the result schema as a strict json_schema format.
	ModeJSONSchema Mode = "json_schema"
	// ModeJSONObject asks for any JSON object and embeds the schema in the prompt.
	ModeJSONObject Mode = "json_object"
)

// ParseMode accepts the config spelling of a mode. Empty selects ModeJSONSchema.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ModeJSONSchema:
		return ModeJSONSchema, nil
	case ModeJSONObject:
		return ModeJSONObject, nil
	default:
		return "", services.Wrap(services.ErrConfiguration, component, "parse mode", fmt.Sprintf("unknown mode %q", value), nil)
	}
}

func (m Mode) String() string { return string(m) }

func (m Mode) responseFormat() llm.ResponseFormat {
	if m == ModeJSONObject {
		return llm.JSONObjectFormat()
	}
	return llm.JSONSchemaFormat(sentiment.SchemaName, sentiment.Schema())
}
