// Package mapped provides a decorator client that rewrites the bot directory
// of an inner client: rename bots, replace avatars, or hide entries entirely.
// Conversations and errors pass through untouched.
package mapped

import (
	"context"

	"github.com/leofalp/botmux/providers/bot"
)

// MapFunc transforms one directory entry. Returning false drops the bot from
// the mapped directory. The function must not mutate the id in a way that
// breaks routing: conversations are delegated with the id the caller used.
type MapFunc func(bot.Bot) (bot.Bot, bool)

// Client wraps an inner bot.Client and applies a MapFunc to every bot its
// directory reports.
type Client struct {
	inner bot.Client
	mapFn MapFunc
}

// Ensure Client implements the client contract.
var _ bot.Client = (*Client)(nil)

// New creates a mapped client around inner. A nil mapFn leaves the directory
// unchanged.
func New(inner bot.Client, mapFn MapFunc) *Client {
	return &Client{inner: inner, mapFn: mapFn}
}

// ListBots implements bot.Client. The inner result's errors are preserved;
// only the value, when present, is transformed.
func (c *Client) ListBots(ctx context.Context) *bot.Result[[]bot.Bot] {
	result := c.inner.ListBots(ctx)
	if c.mapFn == nil {
		return result
	}

	bots, ok := result.Value()
	if !ok {
		return result
	}

	mapped := make([]bot.Bot, 0, len(bots))
	for _, b := range bots {
		if transformed, keep := c.mapFn(b); keep {
			mapped = append(mapped, transformed)
		}
	}

	mappedResult, err := bot.NewResult(&mapped, result.Errors())
	if err != nil {
		// Unreachable: the value is always present here.
		return result
	}
	return mappedResult
}

// Converse implements bot.Client by delegating to the inner client unchanged.
func (c *Client) Converse(ctx context.Context, botID bot.ID, messages []bot.Message, tools []bot.Tool) *bot.Stream {
	return c.inner.Converse(ctx, botID, messages, tools)
}

// Clone implements bot.Client.
func (c *Client) Clone() bot.Client {
	return &Client{inner: c.inner.Clone(), mapFn: c.mapFn}
}
