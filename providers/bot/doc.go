// Package bot defines the shared, provider-agnostic types and interfaces used
// across all bot client implementations. Each client's conversion layer is
// responsible for mapping these types to its own wire format, keeping the rest
// of the codebase decoupled from provider-specific details.
//
// The central interface is [Client]: list the bots a backend exposes and open
// a streaming conversation with one of them. Directory results travel as
// [Result] values, which carry partial outcomes (some bots plus some errors)
// as a first-class, expected shape. Conversation replies are delivered through
// [Stream], a push-style sequence of [Result] chunks.
package bot
