package tester

import (
	"context"
	"testing"

	"github.com/leofalp/botmux/providers/bot"
)

// userMessage builds a single-element user conversation.
func userMessage(text string) []bot.Message {
	return []bot.Message{{Role: bot.RoleUser, Content: bot.MessageContent{Text: text}}}
}

// ========== ListBots ==========

// TestClient_ListBots_Clean verifies the configured directory and the
// invocation counter.
func TestClient_ListBots_Clean(t *testing.T) {
	client := New().WithBots(bot.Bot{ID: "m1", Name: "Model One"})

	result := client.ListBots(context.Background())
	bots, present := result.Value()
	if !present || len(bots) != 1 || bots[0].ID != "m1" {
		t.Errorf("directory = %v (present=%v), want one bot m1", bots, present)
	}
	if result.HasErrors() {
		t.Errorf("unexpected errors: %v", result.Errors())
	}
	if calls := client.ListBotsCalls(); calls != 1 {
		t.Errorf("ListBotsCalls() = %d, want 1", calls)
	}
}

// TestClient_ListBots_Partial verifies the partial shape: bots plus errors.
func TestClient_ListBots_Partial(t *testing.T) {
	client := New().
		WithBots(bot.Bot{ID: "m1"}).
		WithListErrors(bot.NewError(bot.ErrResponse, "status 500"))

	result := client.ListBots(context.Background())
	if _, present := result.Value(); !present {
		t.Error("partial result must carry its value")
	}
	if !result.HasErrors() {
		t.Error("partial result must carry its errors")
	}
}

// TestClient_ListBots_Failure verifies the pure-failure shape.
func TestClient_ListBots_Failure(t *testing.T) {
	client := New().WithListFailure(bot.NewError(bot.ErrNetwork, "down"))

	result := client.ListBots(context.Background())
	if _, present := result.Value(); present {
		t.Error("pure failure must not carry a value")
	}
	if len(result.Errors()) != 1 {
		t.Errorf("expected 1 error, got %d", len(result.Errors()))
	}
}

// ========== Converse ==========

// TestClient_Converse_EchoFallback verifies the unscripted default: the last
// user message echoed back as cumulative word-by-word snapshots.
func TestClient_Converse_EchoFallback(t *testing.T) {
	client := New()

	var texts []string
	for result := range client.Converse(context.Background(), "m1", userMessage("hello world"), nil).Iter() {
		content, ok := result.Value()
		if !ok {
			t.Fatalf("unexpected errors: %v", result.Errors())
		}
		texts = append(texts, content.Text)
	}

	want := []string{"echo:", "echo: hello", "echo: hello world"}
	if len(texts) != len(want) {
		t.Fatalf("chunks = %v, want %v", texts, want)
	}
	if texts[len(texts)-1] != "echo: hello world" {
		t.Errorf("final snapshot = %q, want %q", texts[len(texts)-1], "echo: hello world")
	}
}

// TestClient_Converse_ScriptedReply verifies scripted chunks are yielded
// verbatim, in order.
func TestClient_Converse_ScriptedReply(t *testing.T) {
	client := New().WithReply("m1",
		bot.MessageContent{Text: "thinking"},
		bot.MessageContent{Text: "thinking done", ToolCalls: []bot.ToolCall{NewToolCall("search", `{"q":"go"}`)}},
	)

	content, errs, ok := client.Converse(context.Background(), "m1", userMessage("hi"), nil).Collect()
	if len(errs) != 0 || !ok {
		t.Fatalf("unexpected outcome: ok=%v errs=%v", ok, errs)
	}
	if content.Text != "thinking done" {
		t.Errorf("final text = %q, want %q", content.Text, "thinking done")
	}
	if len(content.ToolCalls) != 1 || content.ToolCalls[0].Name != "search" {
		t.Errorf("final tool calls = %v, want one 'search' call", content.ToolCalls)
	}
}

// TestClient_Converse_ScriptedError verifies the one-element failing stream.
func TestClient_Converse_ScriptedError(t *testing.T) {
	client := New().WithConverseError("m1", bot.NewError(bot.ErrResponse, "overloaded"))

	var collected []*bot.Result[bot.MessageContent]
	for result := range client.Converse(context.Background(), "m1", userMessage("hi"), nil).Iter() {
		collected = append(collected, result)
	}

	if len(collected) != 1 {
		t.Fatalf("expected exactly 1 element, got %d", len(collected))
	}
	if !collected[0].HasErrors() {
		t.Error("expected the element to carry the scripted error")
	}
}

// TestClient_Converse_Cancellation verifies that a cancelled context turns
// into a failing element instead of more content.
func TestClient_Converse_Cancellation(t *testing.T) {
	client := New().WithReply("m1", bot.MessageContent{Text: "never delivered"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, errs, ok := client.Converse(ctx, "m1", userMessage("hi"), nil).Collect()
	if ok {
		t.Error("expected no content after cancellation")
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
}

// TestClient_RecordsConversations verifies the assertion hook and that Clone
// shares records with the original handle.
func TestClient_RecordsConversations(t *testing.T) {
	client := New()
	clone := client.Clone()

	clone.Converse(context.Background(), "m1", userMessage("hi"), nil).Collect()
	client.Converse(context.Background(), "m2", userMessage("hi"), nil).Collect()

	conversed := client.ConversedWith()
	if len(conversed) != 2 || conversed[0] != "m1" || conversed[1] != "m2" {
		t.Errorf("ConversedWith() = %v, want [m1 m2]", conversed)
	}
}

// ========== NewToolCall ==========

// TestNewToolCall verifies fresh unique ids and the pending permission
// default.
func TestNewToolCall(t *testing.T) {
	first := NewToolCall("search", `{"q":"one"}`)
	second := NewToolCall("search", `{"q":"two"}`)

	if first.ID == "" || first.ID == second.ID {
		t.Errorf("expected distinct non-empty ids, got %q and %q", first.ID, second.ID)
	}
	if first.Permission != bot.ToolCallPending {
		t.Errorf("permission = %q, want %q", first.Permission, bot.ToolCallPending)
	}
	if first.Name != "search" {
		t.Errorf("name = %q, want %q", first.Name, "search")
	}
}
