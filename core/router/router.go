package router

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/leofalp/botmux/providers/bot"
	"github.com/leofalp/botmux/providers/observability"
)

// entry pairs a sub-client with its cached directory result. A nil bots field
// means the directory has not been fetched yet (or was invalidated).
type entry struct {
	client bot.Client
	bots   *bot.Result[[]bot.Bot]
}

// Router is a client composed from multiple sub-clients to interact with all
// of them as one.
//
// # Bot ids
//
// Ids are prefixed with the key used to insert the sub-client. Ids read from
// [Router.ListBots] can be passed straight back to [Router.Converse]; when
// constructing ids manually use [PrefixID] and [UnprefixID]. Only the first
// '/' is significant, so sub-client-local ids may freely contain further '/'
// characters.
//
// # Cache
//
// The router caches the result of calling ListBots on each sub-client. A
// sub-client is only refetched when it has no cached result yet or when the
// cached result contains errors; a clean cached success (even an empty one)
// is never refetched automatically. To force a refetch, invalidate the cache
// explicitly with [Router.InvalidateCache] or [Router.InvalidateAllCaches].
//
// All methods are safe for concurrent use. The internal lock is never held
// across sub-client I/O, so structural changes (insert/remove/invalidate)
// are not blocked by in-flight network calls.
type Router struct {
	mu    sync.Mutex
	items map[string]*entry
}

// Ensure Router implements the client contract itself.
var _ bot.Client = (*Router)(nil)

// New creates an empty router. A router without sub-clients is valid: its
// directory is an empty success.
func New() *Router {
	return &Router{items: make(map[string]*entry)}
}

// InsertClient inserts a sub-client under the given key, replacing any
// previous client stored there. The new entry starts with an unset cache.
func (r *Router) InsertClient(key string, client bot.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[key] = &entry{client: client}
}

// RemoveClient removes the sub-client stored under the key, along with its
// cached directory. Removing an absent key is a no-op.
func (r *Router) RemoveClient(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, key)
}

// Client returns a clone of the sub-client stored under the key.
func (r *Router) Client(key string) (bot.Client, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[key]
	if !ok {
		return nil, false
	}
	return item.client.Clone(), true
}

// Keys returns the keys of all registered sub-clients in sorted order.
func (r *Router) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sortedKeys()
}

// InvalidateCache unsets the cached directory for the client with the given
// key, forcing a refetch on the next directory access.
func (r *Router) InvalidateCache(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item, ok := r.items[key]; ok {
		item.bots = nil
	}
}

// InvalidateAllCaches unsets the cached directory for every sub-client.
func (r *Router) InvalidateAllCaches() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		item.bots = nil
	}
}

// ListBots implements [bot.Client]. It refetches the directory of every
// sub-client whose cache is unset or errored, then merges all cached results
// into one aggregate with ids rewritten to "<key>/<id>". Errors from failing
// sub-clients are carried alongside the bots gathered from the others.
func (r *Router) ListBots(ctx context.Context) *bot.Result[[]bot.Bot] {
	r.refresh(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	var results []*bot.Result[[]bot.Bot]
	for _, key := range r.sortedKeys() {
		item := r.items[key]
		if item.bots == nil {
			continue
		}
		results = append(results, namespaced(key, item.bots))
	}

	// An empty client set is an empty directory, never an error.
	if len(results) == 0 {
		return bot.Ok([]bot.Bot{})
	}

	return bot.Merge(results...)
}

// Converse implements [bot.Client]. The bot id must carry a "<key>/" prefix;
// the router resolves the key, strips the prefix and delegates the rest of
// the call unchanged. Dispatch failures surface as a one-element failing
// stream without contacting any sub-client.
func (r *Router) Converse(ctx context.Context, botID bot.ID, messages []bot.Message, tools []bot.Tool) *bot.Stream {
	return bot.NewStream(func(yield func(*bot.Result[bot.MessageContent]) bool) {
		key, id, ok := UnprefixID(botID)
		if !ok {
			yield(bot.Fail[bot.MessageContent](bot.NewError(
				bot.ErrUnknown,
				fmt.Sprintf("bot id %q does not belong to a router", botID),
			)))
			return
		}

		// Refresh before resolving, so a router whose cache has not yet
		// observed a newly inserted client can still self-heal on first use.
		r.refresh(ctx)

		client, found := r.Client(key)
		if !found {
			yield(bot.Fail[bot.MessageContent](bot.NewError(
				bot.ErrUnknown,
				fmt.Sprintf("this router has no client for bot id %q", botID),
			)))
			return
		}

		if observer := observability.ObserverFromContext(ctx); observer != nil {
			observer.Debug(ctx, observability.EventConverseDispatch,
				observability.String(observability.AttrClientKey, key),
				observability.String(observability.AttrBotID, id.String()),
			)
		}

		for result := range client.Converse(ctx, id, messages, tools).Iter() {
			if !yield(result) {
				return
			}
		}
	})
}

// Clone implements [bot.Client]. All handles share the same client set and
// caches.
func (r *Router) Clone() bot.Client {
	return r
}

// refresh refetches the directory of every sub-client that has no cached
// result yet, or whose cached result contains errors. The snapshot of stale
// entries is taken under the lock, the fan-out runs with the lock released,
// and results are written back under the lock again. A write-back whose entry
// was removed mid-flight is silently dropped.
func (r *Router) refresh(ctx context.Context) {
	type refetch struct {
		key    string
		client bot.Client
	}

	r.mu.Lock()
	var stale []refetch
	for key, item := range r.items {
		if item.bots == nil || item.bots.HasErrors() {
			stale = append(stale, refetch{key: key, client: item.client.Clone()})
		}
	}
	total := len(r.items)
	r.mu.Unlock()

	if len(stale) == 0 {
		return
	}

	observer := observability.ObserverFromContext(ctx)
	if observer != nil {
		observer.Debug(ctx, observability.EventRefreshStart,
			observability.Int(observability.AttrRouterClients, total),
			observability.Int(observability.AttrRouterRefreshed, len(stale)),
		)
	}

	// Fan out to all stale sub-clients at once and wait for every one of
	// them; no timeout is imposed here, that is a sub-client concern.
	results := make([]*bot.Result[[]bot.Bot], len(stale))
	var wg sync.WaitGroup
	for i := range stale {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = stale[i].client.ListBots(ctx)
		}()
	}
	wg.Wait()

	r.mu.Lock()
	for i, s := range stale {
		item, ok := r.items[s.key]
		if !ok {
			if observer != nil {
				observer.Trace(ctx, observability.EventWriteBackDropped,
					observability.String(observability.AttrClientKey, s.key),
				)
			}
			continue
		}
		item.bots = results[i]

		if observer != nil {
			bots, _ := results[i].Value()
			observer.Trace(ctx, observability.EventWriteBack,
				observability.String(observability.AttrClientKey, s.key),
				observability.Int(observability.AttrBotCount, len(bots)),
				observability.Int(observability.AttrErrorCount, len(results[i].Errors())),
			)
		}
	}
	r.mu.Unlock()

	if observer != nil {
		observer.Debug(ctx, observability.EventRefreshEnd,
			observability.Int(observability.AttrRouterRefreshed, len(stale)),
		)
	}
}

// sortedKeys returns the entry keys in sorted order. Callers must hold r.mu.
// Sorting keeps aggregation output deterministic across calls.
func (r *Router) sortedKeys() []string {
	keys := make([]string, 0, len(r.items))
	for key := range r.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// namespaced returns a copy of a sub-client directory result with every bot
// id rewritten to "<key>/<id>". Valueless results are returned as-is: there
// is nothing to rewrite and the errors pass through untouched.
func namespaced(key string, result *bot.Result[[]bot.Bot]) *bot.Result[[]bot.Bot] {
	bots, ok := result.Value()
	if !ok {
		return result
	}

	prefixed := make([]bot.Bot, len(bots))
	for i, b := range bots {
		b.ID = PrefixID(key, b.ID)
		prefixed[i] = b
	}

	namespacedResult, err := bot.NewResult(&prefixed, result.Errors())
	if err != nil {
		// Unreachable: the value is always present here.
		return result
	}
	return namespacedResult
}

// PrefixID prefixes a bot id with the given sub-client key.
func PrefixID(key string, id bot.ID) bot.ID {
	return bot.ID(key + "/" + string(id))
}

// UnprefixID splits a router-namespaced bot id into the sub-client key and
// the original id. Returns false when the id carries no namespace.
func UnprefixID(id bot.ID) (string, bot.ID, bool) {
	key, rest, found := strings.Cut(string(id), "/")
	if !found {
		return "", "", false
	}
	return key, bot.ID(rest), true
}
