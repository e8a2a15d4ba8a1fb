// Package textutil provides text helpers shared by the classifier and the CLI.
//
// NormalizeInput canonicalizes user text before it is sent to the model so
// visually identical inputs produce identical requests. Label turns schema
// keys into display labels for table output. Snippet condenses payloads for
// error messages and logs.
package textutil
