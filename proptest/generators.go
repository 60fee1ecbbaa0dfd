package proptest

import (
	"memorypak/internal/catalog"
	"memorypak/internal/collection"
	"memorypak/internal/query"

	"pgregory.net/rapid"
)

var (
	iterDirGen     = rapid.StringMatching(`[a-z]{8}`)
	shortQueryGen  = rapid.StringMatching(`[a-z0-9]{1,3}`)
	consoleNameGen = rapid.StringMatching(`[A-Z][A-Za-z0-9 ]{0,12}`)
	gameNameGen    = rapid.StringMatching(`[A-Za-z][A-Za-z0-9 ]{0,16}`)
	companyGen     = rapid.OneOf(rapid.Just(""), rapid.StringMatching(`[A-Z][a-z]{2,10}`))

	knownTags = []string{
		"console", "handheld", "vr", "pc-gaming", "retro",
		"8-bit", "16-bit", "5th-gen", "6th-gen", "7th-gen", "8th-gen", "9th-gen",
	}
	kinds   = []collection.Kind{collection.Owned, collection.Wishlist, collection.Favorite}
	domains = []collection.Domain{collection.Consoles, collection.Games}
)

func consoleGen() *rapid.Generator[catalog.Console] {
	return rapid.Custom(func(t *rapid.T) catalog.Console {
		return catalog.Console{
			Name: consoleNameGen.Draw(t, "consoleName"),
			Tags: rapid.SliceOfNDistinct(rapid.SampledFrom(knownTags), 0, 3, rapid.ID[string]).Draw(t, "tags"),
		}
	})
}

// consolesGen draws consoles with distinct names.
func consolesGen(minCount, maxCount int) *rapid.Generator[[]catalog.Console] {
	return rapid.SliceOfNDistinct(consoleGen(), minCount, maxCount, func(c catalog.Console) string { return c.Name })
}

func gameGen() *rapid.Generator[catalog.Game] {
	return rapid.Custom(func(t *rapid.T) catalog.Game {
		return catalog.Game{
			Name:      gameNameGen.Draw(t, "gameName"),
			Developer: companyGen.Draw(t, "developer"),
			Publisher: companyGen.Draw(t, "publisher"),
		}
	})
}

func gameRefsGen(maxCount int) *rapid.Generator[[]catalog.GameRef] {
	ref := rapid.Custom(func(t *rapid.T) catalog.GameRef {
		return catalog.GameRef{
			Console: rapid.SampledFrom([]string{"NES", "SNES", "Game Boy", "PS5"}).Draw(t, "console"),
			Game:    gameGen().Draw(t, "game"),
		}
	})
	return rapid.SliceOfNDistinct(ref, 0, maxCount, catalog.GameRef.Key)
}

func filterGen(filters []query.Filter) *rapid.Generator[query.Filter] {
	return rapid.OneOf(rapid.SampledFrom(filters), rapid.Just(query.Filter("unknown")))
}

func sortGen(sorts []query.Sort) *rapid.Generator[query.Sort] {
	return rapid.OneOf(rapid.SampledFrom(sorts), rapid.Just(query.Sort("unknown")))
}

func idsGen(pool []string) *rapid.Generator[[]string] {
	if len(pool) == 0 {
		return rapid.Just([]string(nil))
	}
	return rapid.SliceOfN(rapid.SampledFrom(pool), 0, len(pool))
}

// stateGen draws a normalized collection over the given console names and
// game keys.
func stateGen(consoles, games []string) *rapid.Generator[*collection.State] {
	return rapid.Custom(func(t *rapid.T) *collection.State {
		st := collection.NewState()
		fill := func(sets *collection.Sets, pool []string, label string) {
			sets.Owned = collection.NewSet(idsGen(pool).Draw(t, label+"Owned")...)
			sets.Wishlist = collection.NewSet(idsGen(pool).Draw(t, label+"Wishlist")...)
			sets.Favorite = collection.NewSet(idsGen(pool).Draw(t, label+"Favorite")...)
			for id := range sets.Owned {
				delete(sets.Wishlist, id)
			}
		}
		fill(st.Consoles, consoles, "console")
		fill(st.Games, games, "game")
		return st
	})
}

func malformedCatalogGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("- - - -"),
		rapid.Just(":::"),
		rapid.Just("[\n["),
		rapid.Just("consoles: {name: SNES}"),
		rapid.Just("consoles:\n  - name: [not, a, string]\n"),
		rapid.Just("consoles:\n  - tags: 42\n"),
		rapid.Just("games: 7"),
		rapid.Just(`{"games": [{"title": null}]}`),
		rapid.Just(`{"console": ["x"], "games": []}`),
		rapid.Just("\t\ttabs: everywhere"),
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(10, 100).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			return string(bytes)
		}),
	)
}
