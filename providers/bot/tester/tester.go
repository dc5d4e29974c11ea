// Package tester provides a deterministic, in-process bot client for tests,
// demos and offline development. Directories and replies are scripted up
// front; unscripted conversations fall back to echoing the last user message.
// The client records how it was called so tests can assert on cache and
// dispatch behavior.
package tester

import (
	"context"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/leofalp/botmux/providers/bot"
)

// Client is a scripted bot.Client. All handles returned by Clone share the
// same script and call records. The zero value is not usable; use [New].
type Client struct {
	inner *state
}

type state struct {
	mu sync.Mutex

	bots          []bot.Bot
	listErrs      []*bot.Error
	failDirectory bool
	replies       map[bot.ID][]bot.MessageContent
	converseErrs  map[bot.ID]*bot.Error
	listBotsCalls int
	conversedWith []bot.ID
}

// Ensure Client implements the client contract.
var _ bot.Client = (*Client)(nil)

// New creates a tester client with an empty directory.
func New() *Client {
	return &Client{inner: &state{
		bots:         []bot.Bot{},
		replies:      make(map[bot.ID][]bot.MessageContent),
		converseErrs: make(map[bot.ID]*bot.Error),
	}}
}

// WithBots sets the bots reported by ListBots.
func (c *Client) WithBots(bots ...bot.Bot) *Client {
	c.inner.mu.Lock()
	defer c.inner.mu.Unlock()
	c.inner.bots = bots
	return c
}

// WithListErrors makes ListBots return a partial result: the configured bots
// plus the given errors.
func (c *Client) WithListErrors(errs ...*bot.Error) *Client {
	c.inner.mu.Lock()
	defer c.inner.mu.Unlock()
	c.inner.listErrs = errs
	c.inner.failDirectory = false
	return c
}

// WithListFailure makes ListBots return a pure failure carrying the given
// errors and no value.
func (c *Client) WithListFailure(errs ...*bot.Error) *Client {
	c.inner.mu.Lock()
	defer c.inner.mu.Unlock()
	c.inner.listErrs = errs
	c.inner.failDirectory = true
	return c
}

// ClearListErrors restores a clean directory result on subsequent calls.
func (c *Client) ClearListErrors() *Client {
	c.inner.mu.Lock()
	defer c.inner.mu.Unlock()
	c.inner.listErrs = nil
	c.inner.failDirectory = false
	return c
}

// WithReply scripts the conversation chunks streamed for the given bot id.
// Chunks are yielded as-is, so script them as cumulative snapshots.
func (c *Client) WithReply(id bot.ID, chunks ...bot.MessageContent) *Client {
	c.inner.mu.Lock()
	defer c.inner.mu.Unlock()
	c.inner.replies[id] = chunks
	return c
}

// WithConverseError scripts a one-element failing stream for the given bot id.
func (c *Client) WithConverseError(id bot.ID, err *bot.Error) *Client {
	c.inner.mu.Lock()
	defer c.inner.mu.Unlock()
	c.inner.converseErrs[id] = err
	return c
}

// ListBotsCalls returns how many times ListBots has been invoked across all
// handles of this client.
func (c *Client) ListBotsCalls() int {
	c.inner.mu.Lock()
	defer c.inner.mu.Unlock()
	return c.inner.listBotsCalls
}

// ConversedWith returns the bot ids Converse has been invoked with, in order.
func (c *Client) ConversedWith() []bot.ID {
	c.inner.mu.Lock()
	defer c.inner.mu.Unlock()
	ids := make([]bot.ID, len(c.inner.conversedWith))
	copy(ids, c.inner.conversedWith)
	return ids
}

// ListBots implements bot.Client.
func (c *Client) ListBots(_ context.Context) *bot.Result[[]bot.Bot] {
	c.inner.mu.Lock()
	defer c.inner.mu.Unlock()
	c.inner.listBotsCalls++

	if c.inner.failDirectory {
		return bot.Fail[[]bot.Bot](c.inner.listErrs...)
	}

	bots := make([]bot.Bot, len(c.inner.bots))
	copy(bots, c.inner.bots)

	result, err := bot.NewResult(&bots, c.inner.listErrs)
	if err != nil {
		// Unreachable: the value is always present here.
		return bot.Ok(bots)
	}
	return result
}

// Converse implements bot.Client. Scripted errors win over scripted replies;
// without a script the last user message is echoed back word by word as
// cumulative snapshots.
func (c *Client) Converse(ctx context.Context, botID bot.ID, messages []bot.Message, _ []bot.Tool) *bot.Stream {
	c.inner.mu.Lock()
	c.inner.conversedWith = append(c.inner.conversedWith, botID)
	scriptedErr := c.inner.converseErrs[botID]
	chunks, scripted := c.inner.replies[botID]
	c.inner.mu.Unlock()

	if scriptedErr != nil {
		return bot.NewErrorStream(scriptedErr)
	}

	if !scripted {
		chunks = echoChunks(messages)
	}

	return bot.NewStream(func(yield func(*bot.Result[bot.MessageContent]) bool) {
		for _, chunk := range chunks {
			if ctx.Err() != nil {
				yield(bot.Fail[bot.MessageContent](bot.NewErrorWithCause(
					bot.ErrUnknown, "conversation cancelled", ctx.Err(),
				)))
				return
			}
			if !yield(bot.Ok(chunk)) {
				return
			}
		}
	})
}

// Clone implements bot.Client. The returned handle shares scripts and call
// records with the original.
func (c *Client) Clone() bot.Client {
	return &Client{inner: c.inner}
}

// NewToolCall fabricates a tool call with a fresh ULID id, for scripting
// replies that exercise function calling.
func NewToolCall(name, arguments string) bot.ToolCall {
	return bot.ToolCall{
		ID:         ulid.Make().String(),
		Name:       name,
		Arguments:  arguments,
		Permission: bot.ToolCallPending,
	}
}

// echoChunks builds the fallback reply: the last user message echoed back,
// streamed as cumulative word-by-word snapshots.
func echoChunks(messages []bot.Message) []bot.MessageContent {
	var lastUser string
	for _, message := range messages {
		if message.Role == bot.RoleUser {
			lastUser = message.Content.Text
		}
	}
	if lastUser == "" {
		return []bot.MessageContent{{Text: "echo:"}}
	}

	words := strings.Fields("echo: " + lastUser)
	chunks := make([]bot.MessageContent, 0, len(words))
	var accumulated strings.Builder
	for i, word := range words {
		if i > 0 {
			accumulated.WriteString(" ")
		}
		accumulated.WriteString(word)
		chunks = append(chunks, bot.MessageContent{Text: accumulated.String()})
	}
	return chunks
}
