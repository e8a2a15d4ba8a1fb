package classifier

import (
	"fmt"
	"strings"

	"sentai/internal/sentiment"
	"sentai/internal/services"
)

// ClassificationPrompt is the base system instruction sent with every request.
const ClassificationPrompt = `You are an expert text classifier. Your task is to analyze the user's input text and classify it across three dimensions: Polarity, Emotion, and Subjectivity. You must provide a brief rationale for your choices. Respond ONLY with a valid JSON object that strictly adheres to the provided schema.`

// BuildInstructions renders the system prompt for mode. The output depends only
// on mode and the sentiment vocabulary.
func BuildInstructions(mode Mode) (string, error) {
	var b strings.Builder
	b.WriteString(ClassificationPrompt)
	b.WriteString("\n\nAllowed values:\n")
	fmt.Fprintf(&b, "- polarity: %s\n", joinLabels(sentiment.Polarities()))
	fmt.Fprintf(&b, "- emotion: %s\n", joinLabels(sentiment.Emotions()))
	fmt.Fprintf(&b, "- subjectivity: %s\n", joinLabels(sentiment.Subjectivities()))
	b.WriteString("- rationale: a brief explanation justifying the classification choices\n")

	switch mode {
	case ModeJSONSchema:
	case ModeJSONObject:
		schema, err := sentiment.SchemaJSON()
		if err != nil {
			return "", fmt.Errorf("classifier: encode schema: %w", err)
		}
		b.WriteString("\nJSON schema:\n```json\n")
		b.Write(schema)
		b.WriteString("\n```\n")
	default:
		return "", services.Wrap(services.ErrConfiguration, component, "build instructions", fmt.Sprintf("unknown mode %q", mode), nil)
	}
	return strings.TrimSpace(b.String()), nil
}

func joinLabels[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
