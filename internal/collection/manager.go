package collection

import (
	"log/slog"
)

// Persister stores the collection after each change.
type Persister interface {
	Save(s *State) error
}

// Manager is the only writer of a State. Every mutation is followed by a
// synchronous Save; a failed save is logged and the in-memory change stays.
// A Manager is not safe for concurrent use.
type Manager struct {
	state *State
	store Persister
	log   *slog.Logger
}

func NewManager(state *State, store Persister, log *slog.Logger) *Manager {
	if state == nil {
		state = NewState()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Manager{state: state, store: store, log: log}
}

// State exposes the current collection for read-only use by queries.
func (m *Manager) State() *State {
	return m.state
}

func (m *Manager) Flags(d Domain, id string) Flags {
	return m.state.Sets(d).Flags(id)
}

// ToggleOwned removes id from owned, or adds it and drops it from the
// wishlist. It reports whether id is owned afterwards.
func (m *Manager) ToggleOwned(d Domain, id string) bool {
	s := m.state.Sets(d)
	owned := !s.Owned.Has(id)
	if owned {
		s.Owned[id] = struct{}{}
		delete(s.Wishlist, id)
	} else {
		delete(s.Owned, id)
	}
	m.persist(d, Owned, id)
	return owned
}

// ToggleWishlist flips wishlist membership. Owned ids cannot be wishlisted;
// the call is ignored and reports false.
func (m *Manager) ToggleWishlist(d Domain, id string) bool {
	s := m.state.Sets(d)
	if s.Owned.Has(id) {
		m.log.Debug("ignoring wishlist toggle for owned item", "domain", d, "id", id)
		return false
	}
	wished := toggle(s.Wishlist, id)
	m.persist(d, Wishlist, id)
	return wished
}

func (m *Manager) ToggleFavorite(d Domain, id string) bool {
	fav := toggle(m.state.Sets(d).Favorite, id)
	m.persist(d, Favorite, id)
	return fav
}

// Toggle dispatches to the toggle for kind k.
func (m *Manager) Toggle(d Domain, k Kind, id string) bool {
	switch k {
	case Owned:
		return m.ToggleOwned(d, id)
	case Wishlist:
		return m.ToggleWishlist(d, id)
	default:
		return m.ToggleFavorite(d, id)
	}
}

// Import merges an exported collection into the current one. Owned wins over
// wishlist for ids that end up in both.
func (m *Manager) Import(doc ExportDocument) {
	imported := doc.State()
	for _, d := range []Domain{Consoles, Games} {
		dst, src := m.state.Sets(d), imported.Sets(d)
		for _, k := range []Kind{Owned, Wishlist, Favorite} {
			for id := range src.Of(k) {
				dst.Of(k)[id] = struct{}{}
			}
		}
		dst.normalize()
	}
	m.save()
}

func toggle(s Set, id string) bool {
	if s.Has(id) {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

func (m *Manager) persist(d Domain, k Kind, id string) {
	m.log.Debug("collection changed", "domain", d, "kind", k, "id", id)
	m.save()
}

func (m *Manager) save() {
	if m.store == nil {
		return
	}
	if err := m.store.Save(m.state); err != nil {
		m.log.Error("failed to save collection", "error", err)
	}
}
