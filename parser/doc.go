// Package parser implements the two-phase template parser that converts an
// ordered sequence of literal text segments interleaved with embedded values
// into a structured [uri.URI].
//
// The first phase lexes the literal segments with a resumable finite state
// machine, splicing embedded values between segment tokens without
// mis-tokenizing across boundaries. The second phase runs a fixed pipeline of
// six builder stages (scheme, userinfo, host/port, path, query, fragment),
// each consuming its own token prefix and incrementally populating the URI.
//
// Parsing is fully synchronous and allocates all mutable state per call, so
// concurrent Parse calls on independent inputs need no synchronization.
package parser
