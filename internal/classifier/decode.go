package classifier

import (
	"errors"
	"strings"

	"sentai/internal/sentiment"
	"sentai/internal/services"
	"sentai/internal/services/llm"
)

// wireResult mirrors the response object with plain strings so that missing
// and out-of-set values reach Result.Validate instead of failing the decode.
type wireResult struct {
	Polarity     string `json:"polarity"`
	Emotion      string `json:"emotion"`
	Subjectivity string `json:"subjectivity"`
	Rationale    string `json:"rationale"`
}

// DecodeResult parses model output into a validated Result. Non-JSON content
// is a remote failure tagged with services.ErrInvalidJSON; JSON that violates
// the schema is a services.ErrValidation failure.
func DecodeResult(content string) (sentiment.Result, error) {
	var wire wireResult
	if err := llm.DecodeLLMJSON(content, &wire); err != nil {
		if errors.Is(err, services.ErrInvalidJSON) {
			return sentiment.Result{}, services.Wrap(services.ErrRemote, component, "decode response", "", err)
		}
		return sentiment.Result{}, services.Wrap(services.ErrValidation, component, "validate response", "", err)
	}
	result := sentiment.Result{
		Polarity:     sentiment.Polarity(strings.TrimSpace(wire.Polarity)),
		Emotion:      sentiment.Emotion(strings.TrimSpace(wire.Emotion)),
		Subjectivity: sentiment.Subjectivity(strings.TrimSpace(wire.Subjectivity)),
		Rationale:    wire.Rationale,
	}
	if err := result.Validate(); err != nil {
		return sentiment.Result{}, services.Wrap(services.ErrValidation, component, "validate response", "", err)
	}
	return result, nil
}
