package query

import (
	"strings"

	"memorypak/internal/catalog"
	"memorypak/internal/collection"
)

type ScopeKind int

const (
	ScopeAllConsoles ScopeKind = iota
	ScopeAllGames
	ScopeConsoleGames
)

// Scope is the part of the catalog statistics are computed over.
type Scope struct {
	Kind    ScopeKind
	Console string
}

func AllConsoles() Scope {
	return Scope{Kind: ScopeAllConsoles}
}

func AllGames() Scope {
	return Scope{Kind: ScopeAllGames}
}

func ConsoleGames(console string) Scope {
	return Scope{Kind: ScopeConsoleGames, Console: console}
}

type Stats struct {
	Total    int
	Owned    int
	Wishlist int
	Favorite int

	// Completion is Owned/Total as a percentage. It is only meaningful when
	// HasCompletion is set, which requires Total > 0.
	Completion    float64
	HasCompletion bool
}

// ComputeStats counts the scope's entries and memberships. For the two
// "all" scopes the membership counts are the sizes of the whole sets, not of
// whatever subset a query currently shows.
func ComputeStats(store *catalog.Store, st *collection.State, scope Scope) Stats {
	var s Stats

	switch scope.Kind {
	case ScopeAllConsoles:
		s.Total = store.ConsoleCount()
		s.Owned, s.Wishlist, s.Favorite = counts(st.Consoles)
	case ScopeAllGames:
		s.Total = store.GameCount()
		s.Owned, s.Wishlist, s.Favorite = counts(st.Games)
	case ScopeConsoleGames:
		s.Total = len(store.Games(scope.Console))
		prefix := catalog.GameKey(scope.Console, "")
		s.Owned = countPrefix(st.Games.Owned, prefix)
		s.Wishlist = countPrefix(st.Games.Wishlist, prefix)
		s.Favorite = countPrefix(st.Games.Favorite, prefix)
	}

	if s.Total > 0 {
		s.Completion = float64(s.Owned) / float64(s.Total) * 100
		s.HasCompletion = true
	}
	return s
}

func counts(sets *collection.Sets) (owned, wishlist, favorite int) {
	return sets.Owned.Len(), sets.Wishlist.Len(), sets.Favorite.Len()
}

func countPrefix(s collection.Set, prefix string) int {
	n := 0
	for id := range s {
		if strings.HasPrefix(id, prefix) {
			n++
		}
	}
	return n
}
