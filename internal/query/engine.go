package query

import (
	"cmp"
	"slices"
	"strings"

	"memorypak/internal/catalog"
	"memorypak/internal/collection"
)

type Filter string

const (
	FilterAll              Filter = "all"
	FilterOwned            Filter = "owned"
	FilterWishlist         Filter = "wishlist"
	FilterFavorite         Filter = "favorite"
	FilterHome             Filter = "home"
	FilterHandheld         Filter = "handheld"
	FilterVR               Filter = "vr"
	FilterPCGamingHandheld Filter = "pc-gaming-handheld"
	FilterRetro            Filter = "retro"
	FilterModern           Filter = "modern"
)

type Sort string

const (
	SortByName           Sort = "name"
	SortOwnedFirst       Sort = "ownedFirst"
	SortWishlistFirst    Sort = "wishlistFirst"
	SortFavoriteFirst    Sort = "favoriteFirst"
	SortGenerationOldest Sort = "generationOldest"
	SortGenerationNewest Sort = "generationNewest"
	SortConsolesFirst    Sort = "consolesFirst"
	SortHandheldsFirst   Sort = "handheldsFirst"
	SortDeveloperAZ      Sort = "developerAZ"
	SortPublisherAZ      Sort = "publisherAZ"
)

var (
	ConsoleFilters = []Filter{
		FilterAll, FilterOwned, FilterWishlist, FilterFavorite, FilterHome, FilterHandheld,
		FilterVR, FilterPCGamingHandheld, FilterRetro, FilterModern,
	}
	GameFilters = []Filter{FilterAll, FilterOwned, FilterWishlist, FilterFavorite}

	ConsoleSorts = []Sort{
		SortByName, SortOwnedFirst, SortWishlistFirst, SortFavoriteFirst,
		SortGenerationOldest, SortGenerationNewest, SortConsolesFirst, SortHandheldsFirst,
	}
	GameSorts = []Sort{
		SortByName, SortOwnedFirst, SortWishlistFirst, SortFavoriteFirst,
		SortDeveloperAZ, SortPublisherAZ,
	}
)

// ParseFilter matches s case-insensitively against the known filters and
// falls back to FilterAll.
func ParseFilter(s string) Filter {
	for _, f := range ConsoleFilters {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f
		}
	}
	return FilterAll
}

// ParseSort matches s case-insensitively against the known sorts and falls
// back to SortByName.
func ParseSort(s string) Sort {
	s = strings.TrimSpace(s)
	for _, o := range slices.Concat(ConsoleSorts, GameSorts) {
		if strings.EqualFold(string(o), s) {
			return o
		}
	}
	return SortByName
}

// Query describes one view of the catalog. The zero value lists everything
// by name.
type Query struct {
	Filter Filter
	Search string
	Sort   Sort
}

const unknownGeneration = 999

var generationOrder = map[string]int{
	"retro":   1,
	"8-bit":   2,
	"16-bit":  3,
	"5th-gen": 4,
	"6th-gen": 5,
	"7th-gen": 6,
	"8th-gen": 7,
	"9th-gen": 8,
}

// Generation ranks a console by its first generation tag; consoles without
// one rank 999.
func Generation(c catalog.Console) int {
	for _, tag := range c.Tags {
		if g, ok := generationOrder[tag]; ok {
			return g
		}
	}
	return unknownGeneration
}

// Consoles filters, searches and sorts consoles. Neither input is modified.
func Consoles(consoles []catalog.Console, st *collection.State, q Query) []catalog.Console {
	sets := st.Sets(collection.Consoles)
	needle := normalizeSearch(q.Search)

	out := make([]catalog.Console, 0, len(consoles))
	for _, c := range consoles {
		if !matchesConsoleFilter(c, sets, q.Filter) {
			continue
		}
		if needle != "" && !matchesConsoleSearch(c, needle) {
			continue
		}
		out = append(out, c)
	}

	slices.SortStableFunc(out, consoleComparator(sets, q.Sort))
	return out
}

func matchesConsoleFilter(c catalog.Console, sets *collection.Sets, f Filter) bool {
	switch f {
	case FilterOwned:
		return sets.Owned.Has(c.Name)
	case FilterWishlist:
		return sets.Wishlist.Has(c.Name)
	case FilterFavorite:
		return sets.Favorite.Has(c.Name)
	case FilterHome:
		return c.HasTag("console") && !c.HasTag("handheld")
	case FilterHandheld:
		return c.HasTag("handheld")
	case FilterVR:
		return c.HasTag("vr")
	case FilterPCGamingHandheld:
		return c.HasTag("pc-gaming")
	case FilterRetro:
		return c.HasTag("retro")
	case FilterModern:
		return c.HasTag("8th-gen") || c.HasTag("9th-gen")
	default:
		return true
	}
}

func matchesConsoleSearch(c catalog.Console, needle string) bool {
	if strings.Contains(strings.ToLower(c.Name), needle) {
		return true
	}
	for _, tag := range c.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func consoleComparator(sets *collection.Sets, by Sort) func(a, b catalog.Console) int {
	var primary func(a, b catalog.Console) int

	switch by {
	case SortOwnedFirst:
		primary = membersFirst(sets.Owned, func(c catalog.Console) string { return c.Name })
	case SortWishlistFirst:
		primary = membersFirst(sets.Wishlist, func(c catalog.Console) string { return c.Name })
	case SortFavoriteFirst:
		primary = membersFirst(sets.Favorite, func(c catalog.Console) string { return c.Name })
	case SortGenerationOldest:
		primary = func(a, b catalog.Console) int { return cmp.Compare(Generation(a), Generation(b)) }
	case SortGenerationNewest:
		primary = func(a, b catalog.Console) int { return cmp.Compare(-Generation(a), -Generation(b)) }
	case SortConsolesFirst:
		primary = func(a, b catalog.Console) int { return compareBool(a.IsHandheld(), b.IsHandheld()) }
	case SortHandheldsFirst:
		primary = func(a, b catalog.Console) int { return compareBool(!a.IsHandheld(), !b.IsHandheld()) }
	}

	return func(a, b catalog.Console) int {
		if primary != nil {
			if c := primary(a, b); c != 0 {
				return c
			}
		}
		return strings.Compare(a.Name, b.Name)
	}
}

// Games filters, searches and sorts games by composite key membership.
func Games(games []catalog.GameRef, st *collection.State, q Query) []catalog.GameRef {
	sets := st.Sets(collection.Games)
	needle := normalizeSearch(q.Search)

	out := make([]catalog.GameRef, 0, len(games))
	for _, g := range games {
		if !matchesGameFilter(g, sets, q.Filter) {
			continue
		}
		if needle != "" && !matchesGameSearch(g, needle) {
			continue
		}
		out = append(out, g)
	}

	slices.SortStableFunc(out, gameComparator(sets, q.Sort))
	return out
}

func matchesGameFilter(g catalog.GameRef, sets *collection.Sets, f Filter) bool {
	switch f {
	case FilterOwned:
		return sets.Owned.Has(g.Key())
	case FilterWishlist:
		return sets.Wishlist.Has(g.Key())
	case FilterFavorite:
		return sets.Favorite.Has(g.Key())
	default:
		return true
	}
}

func matchesGameSearch(g catalog.GameRef, needle string) bool {
	for _, field := range []string{g.Name, g.Developer, g.Publisher} {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func gameComparator(sets *collection.Sets, by Sort) func(a, b catalog.GameRef) int {
	var primary func(a, b catalog.GameRef) int

	switch by {
	case SortOwnedFirst:
		primary = membersFirst(sets.Owned, catalog.GameRef.Key)
	case SortWishlistFirst:
		primary = membersFirst(sets.Wishlist, catalog.GameRef.Key)
	case SortFavoriteFirst:
		primary = membersFirst(sets.Favorite, catalog.GameRef.Key)
	case SortDeveloperAZ:
		primary = func(a, b catalog.GameRef) int { return strings.Compare(a.Developer, b.Developer) }
	case SortPublisherAZ:
		primary = func(a, b catalog.GameRef) int { return strings.Compare(a.Publisher, b.Publisher) }
	}

	return func(a, b catalog.GameRef) int {
		if primary != nil {
			if c := primary(a, b); c != 0 {
				return c
			}
		}
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Console, b.Console)
	}
}

// membersFirst orders members of s before non-members.
func membersFirst[T any](s collection.Set, id func(T) string) func(a, b T) int {
	return func(a, b T) int {
		return compareBool(!s.Has(id(a)), !s.Has(id(b)))
	}
}

// compareBool orders false before true.
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func normalizeSearch(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
