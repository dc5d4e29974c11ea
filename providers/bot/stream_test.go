package bot

import "testing"

// ========== NewErrorStream ==========

// TestNewErrorStream verifies the one-element failing sequence used to
// surface pre-dispatch errors: exactly one chunk, no value, the given error.
func TestNewErrorStream(t *testing.T) {
	stream := NewErrorStream(NewError(ErrUnknown, "no such bot"))

	var collected []*Result[MessageContent]
	for result := range stream.Iter() {
		collected = append(collected, result)
	}

	if len(collected) != 1 {
		t.Fatalf("expected exactly 1 element, got %d", len(collected))
	}
	if _, present := collected[0].Value(); present {
		t.Error("failing element must not carry a value")
	}
	if !collected[0].HasErrors() {
		t.Fatal("failing element must carry the error")
	}
	if got := collected[0].Errors()[0].Message; got != "no such bot" {
		t.Errorf("error message = %q, want %q", got, "no such bot")
	}
}

// ========== NewContentStream ==========

// TestNewContentStream verifies that a complete reply wraps into a
// single-chunk clean stream.
func TestNewContentStream(t *testing.T) {
	stream := NewContentStream(MessageContent{Text: "done"})

	content, errs, ok := stream.Collect()
	if !ok {
		t.Fatal("expected content to be present")
	}
	if content.Text != "done" {
		t.Errorf("content text = %q, want %q", content.Text, "done")
	}
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %d", len(errs))
	}
}

// ========== Collect ==========

// TestStream_Collect_CumulativeSnapshots verifies that Collect keeps the last
// chunk carrying a value: chunks are cumulative, so the final snapshot is the
// complete reply.
func TestStream_Collect_CumulativeSnapshots(t *testing.T) {
	stream := NewStream(func(yield func(*Result[MessageContent]) bool) {
		for _, text := range []string{"Hel", "Hello", "Hello world"} {
			if !yield(Ok(MessageContent{Text: text})) {
				return
			}
		}
	})

	content, errs, ok := stream.Collect()
	if !ok {
		t.Fatal("expected content to be present")
	}
	if content.Text != "Hello world" {
		t.Errorf("final snapshot = %q, want %q", content.Text, "Hello world")
	}
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %d", len(errs))
	}
}

// TestStream_Collect_MidStreamError verifies that errors encountered along
// the way are all returned alongside the last good snapshot.
func TestStream_Collect_MidStreamError(t *testing.T) {
	stream := NewStream(func(yield func(*Result[MessageContent]) bool) {
		if !yield(Ok(MessageContent{Text: "partial"})) {
			return
		}
		yield(Fail[MessageContent](NewError(ErrNetwork, "connection lost")))
	})

	content, errs, ok := stream.Collect()
	if !ok {
		t.Fatal("expected the pre-error snapshot to be present")
	}
	if content.Text != "partial" {
		t.Errorf("final snapshot = %q, want %q", content.Text, "partial")
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
}

// TestStream_Collect_NoContent verifies the ok=false report when no chunk
// ever carried a value.
func TestStream_Collect_NoContent(t *testing.T) {
	stream := NewErrorStream(NewError(ErrResponse, "status 500"))

	_, errs, ok := stream.Collect()
	if ok {
		t.Error("expected no content")
	}
	if len(errs) != 1 {
		t.Errorf("expected 1 error, got %d", len(errs))
	}
}

// ========== Abandonment ==========

// TestStream_Abandonment verifies that breaking out of the range loop stops
// the producer: no chunks are produced past the break.
func TestStream_Abandonment(t *testing.T) {
	produced := 0
	stream := NewStream(func(yield func(*Result[MessageContent]) bool) {
		for i := 0; i < 100; i++ {
			produced++
			if !yield(Ok(MessageContent{Text: "chunk"})) {
				return
			}
		}
	})

	consumed := 0
	for range stream.Iter() {
		consumed++
		if consumed == 3 {
			break
		}
	}

	if consumed != 3 {
		t.Fatalf("consumed %d chunks, want 3", consumed)
	}
	if produced != 3 {
		t.Errorf("producer ran %d times after abandonment, want 3", produced)
	}
}
