package bot

import (
	"errors"
	"io"
	"testing"
)

// TestError_Message verifies formatting with and without a cause.
func TestError_Message(t *testing.T) {
	plain := NewError(ErrResponse, "status 429")
	if got := plain.Error(); got != "response: status 429" {
		t.Errorf("Error() = %q, want %q", got, "response: status 429")
	}

	wrapped := NewErrorWithCause(ErrNetwork, "request failed", io.ErrUnexpectedEOF)
	if got := wrapped.Error(); got != "network: request failed: unexpected EOF" {
		t.Errorf("Error() = %q, want %q", got, "network: request failed: unexpected EOF")
	}
}

// TestError_Unwrap verifies that errors.Is sees through the wrapper.
func TestError_Unwrap(t *testing.T) {
	wrapped := NewErrorWithCause(ErrFormat, "bad payload", io.ErrUnexpectedEOF)

	if !errors.Is(wrapped, io.ErrUnexpectedEOF) {
		t.Error("errors.Is should match the wrapped cause")
	}
	if errors.Is(NewError(ErrFormat, "bad payload"), io.ErrUnexpectedEOF) {
		t.Error("errors.Is must not match when there is no cause")
	}
}
