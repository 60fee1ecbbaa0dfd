package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"memorypak/cmd/memorypak/render"
	"memorypak/internal/catalog"
	"memorypak/internal/collection"
	"memorypak/internal/query"
)

type AmbiguousMatchError struct {
	Query   string
	Matches []string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("multiple entries match %q", e.Query)
}

func (e *AmbiguousMatchError) WriteMatches(w io.Writer) {
	fmt.Fprintln(w, "Multiple entries match. Please be more specific:")
	for _, name := range e.Matches {
		fmt.Fprintf(w, "  - %s\n", name)
	}
}

func handleFindError(w io.Writer, err error) bool {
	var ambErr *AmbiguousMatchError
	if errors.As(err, &ambErr) {
		ambErr.WriteMatches(w)
		return true
	}
	return false
}

// findConsole resolves a console by exact or case-insensitive name, then by a
// unique substring match.
func findConsole(store *catalog.Store, name string) (catalog.Console, error) {
	if c, err := store.FindConsole(name); err == nil {
		return c, nil
	}

	matches := query.Consoles(store.Consoles(), collection.NewState(), query.Query{Search: name})
	switch len(matches) {
	case 0:
		return catalog.Console{}, fmt.Errorf("no console found matching %q: %w", name, catalog.ErrNotFound)
	case 1:
		return matches[0], nil
	}
	names := make([]string, len(matches))
	for i, c := range matches {
		names[i] = c.Name
	}
	return catalog.Console{}, &AmbiguousMatchError{Query: name, Matches: names}
}

// findGameConsole resolves the console a game list belongs to. Game files may
// exist for consoles missing from the console catalog.
func findGameConsole(store *catalog.Store, name string) (string, error) {
	for _, console := range store.GameConsoles() {
		if console == name {
			return console, nil
		}
	}
	for _, console := range store.GameConsoles() {
		if strings.EqualFold(console, name) {
			return console, nil
		}
	}
	c, err := findConsole(store, name)
	if err != nil {
		return "", err
	}
	return c.Name, nil
}

// Target names a console, or a game when Game is set.
type Target struct {
	Console string `arg:"" help:"Console name"`
	Game    string `arg:"" optional:"" help:"Game name on that console"`
}

type resolvedTarget struct {
	Domain collection.Domain
	ID     string
	Label  string
}

func (t Target) resolve(store *catalog.Store) (resolvedTarget, error) {
	if t.Game == "" {
		c, err := findConsole(store, t.Console)
		if err != nil {
			return resolvedTarget{}, err
		}
		return resolvedTarget{Domain: collection.Consoles, ID: c.Name, Label: c.Name}, nil
	}

	console, err := findGameConsole(store, t.Console)
	if err != nil {
		return resolvedTarget{}, err
	}
	game, err := store.Game(console, t.Game)
	if err != nil {
		return resolvedTarget{}, err
	}
	return resolvedTarget{
		Domain: collection.Games,
		ID:     game.Key(),
		Label:  fmt.Sprintf("%s (%s)", game.Name, game.Console),
	}, nil
}

func consoleItems(consoles []catalog.Console, st *collection.State) []render.ListItem {
	items := make([]render.ListItem, len(consoles))
	for i, c := range consoles {
		f := st.Consoles.Flags(c.Name)
		items[i] = render.ListItem{
			Name:     c.Name,
			Detail:   strings.Join(c.Tags, ", "),
			Owned:    f.Owned,
			Wishlist: f.Wishlist,
			Favorite: f.Favorite,
		}
	}
	return items
}

func gameItems(games []catalog.GameRef, st *collection.State, showConsole bool) []render.ListItem {
	items := make([]render.ListItem, len(games))
	for i, g := range games {
		f := st.Games.Flags(g.Key())
		name := g.Name
		if showConsole {
			name = fmt.Sprintf("%s (%s)", g.Name, g.Console)
		}
		items[i] = render.ListItem{
			Name:     name,
			Detail:   gameDetail(g.Game),
			Owned:    f.Owned,
			Wishlist: f.Wishlist,
			Favorite: f.Favorite,
		}
	}
	return items
}

func gameDetail(g catalog.Game) string {
	switch {
	case g.Developer != "" && g.Publisher != "" && g.Developer != g.Publisher:
		return g.Developer + " / " + g.Publisher
	case g.Developer != "":
		return g.Developer
	default:
		return g.Publisher
	}
}

func statsView(label string, s query.Stats) render.StatsView {
	return render.StatsView{
		Label:         label,
		Total:         s.Total,
		Owned:         s.Owned,
		Wishlist:      s.Wishlist,
		Favorite:      s.Favorite,
		Completion:    s.Completion,
		HasCompletion: s.HasCompletion,
	}
}
