// Package services defines shared utilities consumed by the classifier and the
// remote integrations it talks to.
//
// Key responsibilities:
//   - Context helpers that stamp request IDs and operation names for logging
//     and outbound request correlation.
//   - Structured error markers plus the Wrap and Mark helpers. Callers use
//     errors.Is against the markers to tell configuration problems, remote
//     failures, malformed payloads, and schema drift apart.
//
// Use these helpers when wiring new integrations so error classification and
// log fields stay uniform across the CLI.
package services
