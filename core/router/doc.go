// Package router provides a composite bot client: many keyed sub-clients
// addressed through one [bot.Client] value. Bot identifiers exported by the
// router are namespaced as "<key>/<id>", directory listings are cached per
// sub-client with selective invalidation, and a failing sub-client never
// suppresses the bots of the others — partial results are the normal case.
//
// The primary entry point is [New]; sub-clients are attached with
// [Router.InsertClient] and the composite is then used like any other client.
package router
