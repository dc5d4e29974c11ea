package bot

import "context"

// Client is the capability contract every bot backend implements, and that
// composite clients implement as well so heterogeneous backends can be
// addressed through one value.
//
// Clients always receive and return identifiers without any composition-layer
// namespacing; namespacing is exclusively a composite's responsibility.
type Client interface {
	// ListBots fetches the directory of bots this backend exposes. It
	// completes once and may be called repeatedly; this layer imposes no
	// caching obligation (caching is a composition concern layered on top).
	// Failures travel inside the returned Result, never as a panic.
	ListBots(ctx context.Context) *Result[[]Bot]

	// Converse opens a streaming conversation with the given bot. The
	// returned stream yields ordered content chunks and terminates after a
	// final chunk or the first unrecoverable error. Converse always returns
	// a stream: pre-dispatch failures surface as a one-element failing
	// sequence. Abandoning the stream (breaking out of the range loop or
	// cancelling ctx) stops further delivery, though I/O already in flight
	// is not guaranteed to stop.
	Converse(ctx context.Context, botID ID, messages []Message, tools []Tool) *Stream

	// Clone returns an independent handle sharing the same underlying
	// resources. Composites rely on this to store adapters behind one
	// interface and hand out duplicate handles cheaply.
	Clone() Client
}
