package bot

import "iter"

// Stream is a push-style sequence of content chunks produced during a
// conversation. Each element is a [Result] so transient, recoverable errors
// can travel alongside content; an unrecoverable error is simply the last
// element.
//
// Consumers range over [Stream.Iter] and may break out at any point;
// producers observe the yield return value and stop producing. Breaking out
// (or cancelling the context passed to [Client.Converse]) is the only
// cancellation signal — I/O already issued may still complete.
type Stream struct {
	seq iter.Seq[*Result[MessageContent]]
}

// NewStream creates a Stream from a raw chunk sequence. The sequence is
// expected to yield cumulative content snapshots (see [MessageContent]).
func NewStream(seq iter.Seq[*Result[MessageContent]]) *Stream {
	return &Stream{seq: seq}
}

// NewErrorStream creates a one-element failing stream. It is the canonical
// way to surface a pre-dispatch failure while honoring the contract that
// [Client.Converse] always returns a stream.
func NewErrorStream(err *Error) *Stream {
	return &Stream{seq: func(yield func(*Result[MessageContent]) bool) {
		yield(Fail[MessageContent](err))
	}}
}

// NewContentStream wraps an already-complete content value as a single-chunk
// stream. Useful for backends that produce their whole reply at once.
func NewContentStream(content MessageContent) *Stream {
	return &Stream{seq: func(yield func(*Result[MessageContent]) bool) {
		yield(Ok(content))
	}}
}

// Iter returns the underlying sequence for range-based consumption.
func (s *Stream) Iter() iter.Seq[*Result[MessageContent]] {
	return s.seq
}

// Collect drains the stream and returns the final content snapshot together
// with every error encountered along the way. Since chunks are cumulative,
// the last chunk carrying a value is the complete reply. The boolean reports
// whether any chunk carried a value at all.
func (s *Stream) Collect() (MessageContent, []*Error, bool) {
	var final MessageContent
	var errs []*Error
	hasContent := false

	for result := range s.seq {
		errs = append(errs, result.Errors()...)
		if content, ok := result.Value(); ok {
			final = content
			hasContent = true
		}
	}

	return final, errs, hasContent
}
