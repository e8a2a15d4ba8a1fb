// Package main hosts the sentai CLI entrypoint and command graph.
//
// The root command takes exactly one positional argument, classifies it, and
// prints the result as JSON (or a table with --format table). Subcommands
// expose the prompt, the result schema, an endpoint health check and
// configuration scaffolding. Configuration resolution (.env, TOML, then
// environment fallbacks) and stderr logging are set up once per invocation in
// commandContext so commands only deal with presentation.
//
// Exit status is 0 on success and 1 otherwise. Configuration and usage errors
// print "Error: <message>"; anything else prints
// "An unexpected error occurred: <message>".
package main
