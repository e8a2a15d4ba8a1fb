// Package llm provides an OpenAI-compatible chat completion client.
//
// # Request Shape
//
// Every call sends one system message and one user message at temperature 0
// and asks for structured output through response_format. JSONSchemaFormat
// sends a strict named schema; JSONObjectFormat asks only for a JSON object and
// relies on the prompt to describe the shape.
//
// # Configuration
//
// Requires api_key and model, and optionally base_url, referer, title and
// timeout. base_url may be the API root (".../v1") or the full
// chat/completions endpoint.
//
// # Entry Points
//
// NewClient: construct client from Config.
// Client.Complete: send one Request, receive the extracted Completion.
// Client.CompleteJSON: shorthand for json_object requests.
// Client.HealthCheck: verify API key and model availability.
// DecodeLLMJSON: decode model output, tolerating code fences.
//
// # Failure Handling
//
// The client never retries. HTTP status, network, deadline, API error and
// empty-content failures are wrapped with services.ErrRemote and keep the
// provider's message. DecodeLLMJSON tags non-JSON payloads with
// services.ErrInvalidJSON.
package llm
