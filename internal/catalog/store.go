package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Store is the in-memory catalog for one session. It is never mutated after
// construction.
type Store struct {
	consoles []Console
	byName   map[string]int
	games    map[string][]Game
}

func NewStore(consoles []Console, games map[string][]Game) *Store {
	s := &Store{
		consoles: slices.Clone(consoles),
		byName:   make(map[string]int, len(consoles)),
		games:    make(map[string][]Game, len(games)),
	}
	for i, c := range s.consoles {
		s.byName[c.Name] = i
	}
	for console, list := range games {
		s.games[console] = slices.Clone(list)
	}
	return s
}

func (s *Store) Consoles() []Console {
	return slices.Clone(s.consoles)
}

func (s *Store) Console(name string) (Console, error) {
	i, ok := s.byName[name]
	if !ok {
		return Console{}, fmt.Errorf("console %q: %w", name, ErrNotFound)
	}
	return s.consoles[i], nil
}

// FindConsole resolves a console by exact name first, then by a unique
// case-insensitive match.
func (s *Store) FindConsole(name string) (Console, error) {
	if c, err := s.Console(name); err == nil {
		return c, nil
	}
	var match []Console
	for _, c := range s.consoles {
		if strings.EqualFold(c.Name, name) {
			match = append(match, c)
		}
	}
	if len(match) != 1 {
		return Console{}, fmt.Errorf("console %q: %w", name, ErrNotFound)
	}
	return match[0], nil
}

// Games returns the games of one console. Unknown consoles have no games.
func (s *Store) Games(console string) []GameRef {
	list := s.games[console]
	refs := make([]GameRef, 0, len(list))
	for _, g := range list {
		refs = append(refs, GameRef{Console: console, Game: g})
	}
	return refs
}

func (s *Store) Game(console, name string) (GameRef, error) {
	for _, g := range s.games[console] {
		if g.Name == name {
			return GameRef{Console: console, Game: g}, nil
		}
	}
	for _, g := range s.games[console] {
		if strings.EqualFold(g.Name, name) {
			return GameRef{Console: console, Game: g}, nil
		}
	}
	return GameRef{}, fmt.Errorf("game %q on %q: %w", name, console, ErrNotFound)
}

// AllGames returns every game of every console, grouped by console name.
func (s *Store) AllGames() []GameRef {
	var refs []GameRef
	for _, console := range s.GameConsoles() {
		refs = append(refs, s.Games(console)...)
	}
	return refs
}

// GameConsoles lists the consoles that have a game catalog, sorted.
func (s *Store) GameConsoles() []string {
	names := make([]string, 0, len(s.games))
	for name := range s.games {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s *Store) ConsoleCount() int {
	return len(s.consoles)
}

func (s *Store) GameCount() int {
	n := 0
	for _, list := range s.games {
		n += len(list)
	}
	return n
}
