package collection

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

type Kind string

const (
	Owned    Kind = "owned"
	Wishlist Kind = "wishlist"
	Favorite Kind = "favorite"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case Owned, Wishlist, Favorite:
		return k, nil
	}
	return "", fmt.Errorf("unknown membership kind %q", s)
}

// Domain selects which membership structure an id belongs to: console names
// or composite game keys.
type Domain string

const (
	Consoles Domain = "consoles"
	Games    Domain = "games"
)

// Set is a string set. The zero value is empty and ready to use.
type Set map[string]struct{}

func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Sorted returns the members in ordinal order.
func (s Set) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Sets holds the three membership sets of one domain.
type Sets struct {
	Owned    Set
	Wishlist Set
	Favorite Set
}

func NewSets() *Sets {
	return &Sets{Owned: Set{}, Wishlist: Set{}, Favorite: Set{}}
}

// Of returns the set for one membership kind.
func (s *Sets) Of(k Kind) Set {
	switch k {
	case Owned:
		return s.Owned
	case Wishlist:
		return s.Wishlist
	default:
		return s.Favorite
	}
}

func (s *Sets) Has(k Kind, id string) bool {
	return s.Of(k).Has(id)
}

func (s *Sets) Len(k Kind) int {
	return s.Of(k).Len()
}

func (s *Sets) Flags(id string) Flags {
	return Flags{
		Owned:    s.Owned.Has(id),
		Wishlist: s.Wishlist.Has(id),
		Favorite: s.Favorite.Has(id),
	}
}

// normalize drops wishlist entries that are also owned.
func (s *Sets) normalize() int {
	dropped := 0
	for id := range s.Owned {
		if s.Wishlist.Has(id) {
			delete(s.Wishlist, id)
			dropped++
		}
	}
	return dropped
}

func (s *Sets) clone() *Sets {
	return &Sets{
		Owned:    maps.Clone(s.Owned),
		Wishlist: maps.Clone(s.Wishlist),
		Favorite: maps.Clone(s.Favorite),
	}
}

// Flags is the membership of a single id.
type Flags struct {
	Owned    bool
	Wishlist bool
	Favorite bool
}

// State is the whole collection: console memberships keyed by console name
// and game memberships keyed by composite game key.
type State struct {
	Consoles *Sets
	Games    *Sets
}

func NewState() *State {
	return &State{Consoles: NewSets(), Games: NewSets()}
}

func (s *State) Sets(d Domain) *Sets {
	if d == Games {
		return s.Games
	}
	return s.Consoles
}

func (s *State) Has(d Domain, k Kind, id string) bool {
	return s.Sets(d).Has(k, id)
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	return &State{Consoles: s.Consoles.clone(), Games: s.Games.clone()}
}
