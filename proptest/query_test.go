package proptest

import (
	"strings"
	"testing"

	"memorypak/internal/catalog"
	"memorypak/internal/query"

	"pgregory.net/rapid"
)

func TestProperty_EmptyQueryReturnsAll(t *testing.T) {
	RunBasic(t, func(h *Harness) {
		consoles := h.Consoles(minConsoles, maxConsoles)
		games := h.Games()
		st := h.State(consoles, games)

		assertSameElements(h.T, InvEmptyQueryReturnsAll,
			consoleNames(consoles), consoleNames(query.Consoles(consoles, st, query.Query{})))
		assertSameElements(h.T, InvEmptyQueryReturnsAll,
			gameKeys(games), gameKeys(query.Games(games, st, query.Query{})))
	})
}

func TestProperty_QueryIsSubsetOfInput(t *testing.T) {
	RunBasic(t, func(h *Harness) {
		consoles := h.Consoles(minConsoles, maxConsoles)
		games := h.Games()
		st := h.State(consoles, games)

		cq := query.Query{
			Filter: filterGen(query.ConsoleFilters).Draw(h.T, "consoleFilter"),
			Search: shortQueryGen.Draw(h.T, "consoleSearch"),
			Sort:   sortGen(query.ConsoleSorts).Draw(h.T, "consoleSort"),
		}
		assertSubset(h.T, consoleNames(query.Consoles(consoles, st, cq)), consoleNames(consoles))

		gq := query.Query{
			Filter: filterGen(query.GameFilters).Draw(h.T, "gameFilter"),
			Search: shortQueryGen.Draw(h.T, "gameSearch"),
			Sort:   sortGen(query.GameSorts).Draw(h.T, "gameSort"),
		}
		assertSubset(h.T, gameKeys(query.Games(games, st, gq)), gameKeys(games))
	})
}

func TestProperty_SearchCaseInsensitive(t *testing.T) {
	RunBasic(t, func(h *Harness) {
		consoles := h.Consoles(typicalMinConsoles, typicalMaxConsoles)
		games := h.Games()
		st := h.State(consoles, games)
		needle := shortQueryGen.Draw(h.T, "search")

		lower := query.Consoles(consoles, st, query.Query{Search: needle})
		upper := query.Consoles(consoles, st, query.Query{Search: "  " + strings.ToUpper(needle) + " "})
		assertSameElements(h.T, InvSearchCaseInsensitive, consoleNames(lower), consoleNames(upper))

		lowerGames := query.Games(games, st, query.Query{Search: needle})
		upperGames := query.Games(games, st, query.Query{Search: strings.ToUpper(needle)})
		assertSameElements(h.T, InvSearchCaseInsensitive, gameKeys(lowerGames), gameKeys(upperGames))
	})
}

func TestProperty_QueryIsStateless(t *testing.T) {
	RunBasic(t, func(h *Harness) {
		consoles := h.Consoles(minConsoles, maxConsoles)
		st := h.State(consoles, nil)
		q := query.Query{
			Filter: filterGen(query.ConsoleFilters).Draw(h.T, "filter"),
			Sort:   sortGen(query.ConsoleSorts).Draw(h.T, "sort"),
		}
		input := consoleNames(consoles)

		first := consoleNames(query.Consoles(consoles, st, q))
		second := consoleNames(query.Consoles(consoles, st, q))

		if strings.Join(first, "\x00") != strings.Join(second, "\x00") {
			h.T.Fatalf("[%s] violated: %v then %v", InvQueryStateless, first, second)
		}
		if strings.Join(input, "\x00") != strings.Join(consoleNames(consoles), "\x00") {
			h.T.Fatalf("[%s] violated: input reordered", InvQueryStateless)
		}
	})
}

func TestProperty_ConsoleSortOrder(t *testing.T) {
	RunBasic(t, func(h *Harness) {
		consoles := h.Consoles(minConsoles, maxConsoles)
		st := h.State(consoles, nil)
		sort := rapid.SampledFrom(query.ConsoleSorts).Draw(h.T, "sort")

		got := query.Consoles(consoles, st, query.Query{Sort: sort})

		member := func(ids map[string]struct{}) func(catalog.Console) int {
			return func(c catalog.Console) int {
				if _, ok := ids[c.Name]; ok {
					return 0
				}
				return 1
			}
		}
		handheld := func(c catalog.Console) int {
			if c.IsHandheld() {
				return 1
			}
			return 0
		}

		var rank func(catalog.Console) int
		switch sort {
		case query.SortOwnedFirst:
			rank = member(st.Consoles.Owned)
		case query.SortWishlistFirst:
			rank = member(st.Consoles.Wishlist)
		case query.SortFavoriteFirst:
			rank = member(st.Consoles.Favorite)
		case query.SortGenerationOldest:
			rank = query.Generation
		case query.SortGenerationNewest:
			rank = func(c catalog.Console) int { return -query.Generation(c) }
		case query.SortConsolesFirst:
			rank = handheld
		case query.SortHandheldsFirst:
			rank = func(c catalog.Console) int { return 1 - handheld(c) }
		default:
			rank = func(catalog.Console) int { return 0 }
		}

		assertOrdered(h.T, got, rank, func(c catalog.Console) string { return c.Name })
	})
}

func TestProperty_GameSortOrder(t *testing.T) {
	RunBasic(t, func(h *Harness) {
		games := h.Games()
		st := h.State(nil, games)
		sort := rapid.SampledFrom([]query.Sort{query.SortByName, query.SortOwnedFirst, query.SortFavoriteFirst}).Draw(h.T, "sort")

		got := query.Games(games, st, query.Query{Sort: sort})

		rank := func(catalog.GameRef) int { return 0 }
		switch sort {
		case query.SortOwnedFirst:
			rank = func(g catalog.GameRef) int { return boolRank(!st.Games.Owned.Has(g.Key())) }
		case query.SortFavoriteFirst:
			rank = func(g catalog.GameRef) int { return boolRank(!st.Games.Favorite.Has(g.Key())) }
		}

		assertOrdered(h.T, got, rank, func(g catalog.GameRef) string { return g.Name })
	})
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestProperty_StatsWithinTotal(t *testing.T) {
	RunBasic(t, func(h *Harness) {
		consoles := h.Consoles(minConsoles, maxConsoles)
		games := h.Games()
		st := h.State(consoles, games)

		byConsole := make(map[string][]catalog.Game)
		for _, g := range games {
			byConsole[g.Console] = append(byConsole[g.Console], g.Game)
		}
		store := catalog.NewStore(consoles, byConsole)

		scopes := []query.Scope{query.AllConsoles(), query.AllGames()}
		for _, c := range store.GameConsoles() {
			scopes = append(scopes, query.ConsoleGames(c))
		}

		for _, scope := range scopes {
			s := query.ComputeStats(store, st, scope)
			if s.Owned+s.Wishlist > s.Total {
				h.T.Fatalf("[%s] violated: %+v for scope %+v", InvStatsWithinTotal, s, scope)
			}
			if s.HasCompletion != (s.Total > 0) || s.Completion < 0 || s.Completion > 100 {
				h.T.Fatalf("[%s] violated: completion %+v for scope %+v", InvStatsWithinTotal, s, scope)
			}
		}
	})
}
