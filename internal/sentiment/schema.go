package sentiment

import "encoding/json"

// SchemaName identifies the result schema in structured-output requests.
const SchemaName = "ClassificationResult"

const (
	descPolarity     = "The overall sentiment polarity of the text."
	descEmotion      = "The primary emotion expressed in the text."
	descSubjectivity = "Whether the text is objective (fact-based) or feeling-based (opinion/sentiment)."
	descRationale    = "A brief explanation justifying the classification choices."
)

// FieldNames lists the result keys in output order.
func FieldNames() []string {
	return []string{"polarity", "emotion", "subjectivity", "rationale"}
}

// Schema returns the JSON schema for Result. Every call builds a fresh map so
// callers may embed it in request payloads without sharing state.
func Schema() map[string]any {
	return map[string]any{
		"title": SchemaName,
		"type":  "object",
		"properties": map[string]any{
			"polarity": map[string]any{
				"type":        "string",
				"description": descPolarity,
				"enum":        stringValues(polarities),
			},
			"emotion": map[string]any{
				"type":        "string",
				"description": descEmotion,
				"enum":        stringValues(emotions),
			},
			"subjectivity": map[string]any{
				"type":        "string",
				"description": descSubjectivity,
				"enum":        stringValues(subjectivities),
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": descRationale,
			},
		},
		"required":             FieldNames(),
		"additionalProperties": false,
	}
}

// SchemaJSON renders Schema as indented JSON. Map keys are sorted by the
// encoder, so the output is stable across calls.
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}

func stringValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
