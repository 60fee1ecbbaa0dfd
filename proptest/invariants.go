package proptest

import (
	"memorypak/internal/collection"

	"pgregory.net/rapid"
)

const (
	InvOwnedExcludesWishlist   = "owned-excludes-wishlist"
	InvToggleInvolution        = "toggle-involution"
	InvWishlistOwnedNoop       = "wishlist-on-owned-is-noop"
	InvFavoriteIndependent     = "favorite-independent"
	InvGameKeysIsolated        = "game-keys-isolated"
	InvModelConsistent         = "model-consistent"
	InvEverySavePersisted      = "every-change-persisted"
	InvEmptyQueryReturnsAll    = "empty-query-returns-all"
	InvQuerySubsetOfInput      = "query-subset-of-input"
	InvSearchCaseInsensitive   = "search-case-insensitive"
	InvQueryStateless          = "query-stateless"
	InvSortOrdered             = "sort-ordered"
	InvStatsWithinTotal        = "stats-within-total"
	InvSaveLoadRoundTrip       = "save-load-round-trip"
	InvExportImportRoundTrip   = "export-import-round-trip"
	InvMalformedInputTolerated = "malformed-input-tolerated"
)

func verifyStructuralInvariants(t *rapid.T, st *collection.State) {
	for _, d := range []collection.Domain{collection.Consoles, collection.Games} {
		sets := st.Sets(d)
		for id := range sets.Owned {
			if sets.Wishlist.Has(id) {
				t.Fatalf("[%s] violated: %s id %q is both owned and wishlisted", InvOwnedExcludesWishlist, d, id)
			}
		}
	}
}
