package observability

// Semantic conventions for observability attributes. These constants define
// standard attribute names to ensure consistency across components.

// --- Client Attributes ---

const (
	// AttrClientKey is the key a sub-client was registered under.
	AttrClientKey = "client.key"

	// AttrBotID is the bot identifier a request is addressed to.
	AttrBotID = "bot.id"

	// AttrBotCount is the number of bots carried by a directory result.
	AttrBotCount = "bot.count"

	// AttrErrorCount is the number of errors carried by a result.
	AttrErrorCount = "error.count"
)

// --- Router Attributes ---

const (
	// AttrRouterClients is the number of sub-clients composed by a router.
	AttrRouterClients = "router.clients"

	// AttrRouterRefreshed is the number of sub-clients refetched during a
	// directory refresh.
	AttrRouterRefreshed = "router.refreshed"
)

// --- Events ---

const (
	// EventConverseDispatch marks a conversation delegated to a sub-client.
	EventConverseDispatch = "router.converse.dispatch"

	// EventRefreshStart marks the beginning of a directory refresh fan-out.
	EventRefreshStart = "router.refresh.start"

	// EventRefreshEnd marks the completion of a directory refresh fan-out.
	EventRefreshEnd = "router.refresh.end"

	// EventWriteBack marks one sub-client directory result written back to
	// the router cache.
	EventWriteBack = "router.writeback"

	// EventWriteBackDropped marks a refresh write-back discarded because its
	// entry was removed mid-flight.
	EventWriteBackDropped = "router.writeback.dropped"
)
