// Package classifier builds classification prompts and runs them against a
// chat completion endpoint.
//
// # Classification Logic
//
// Classify normalizes the input text, builds instructions for the configured
// Mode, sends exactly one request, and decodes the returned content into a
// sentiment.Result. Both modes decode and validate locally, so the error
// taxonomy is the same whichever response_format the endpoint honours.
//
// # Errors
//
//   - services.ErrConfiguration: no credential (ErrMissingAPIKey) or unknown mode.
//   - services.ErrInvalidInput: the text is empty after normalization.
//   - services.ErrRemote: transport, HTTP or API failure; with
//     services.ErrInvalidJSON when the content is not JSON.
//   - services.ErrValidation: JSON that misses a field or uses an unknown value.
//
// # Entry Points
//
// New / FromEnvironment: construct from Config.
// Classifier.Reinitialize: fresh instance, re-reading the environment.
// Classifier.Classify: one classification.
// Classifier.HealthCheck: ping the endpoint.
// BuildInstructions: the system prompt for a Mode.
// DecodeResult: parse and validate raw model output.
package classifier
