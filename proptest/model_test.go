package proptest

import (
	"maps"
	"slices"

	"memorypak/internal/collection"

	"pgregory.net/rapid"
)

// CollectionModel is a plain-map reference for the membership rules.
type CollectionModel struct {
	members map[collection.Domain]map[collection.Kind]map[string]bool
}

func newCollectionModel() *CollectionModel {
	m := &CollectionModel{members: make(map[collection.Domain]map[collection.Kind]map[string]bool)}
	for _, d := range domains {
		m.members[d] = make(map[collection.Kind]map[string]bool)
		for _, k := range kinds {
			m.members[d][k] = make(map[string]bool)
		}
	}
	return m
}

func (m *CollectionModel) Toggle(d collection.Domain, k collection.Kind, id string) bool {
	sets := m.members[d]
	if k == collection.Wishlist && sets[collection.Owned][id] {
		return false
	}
	if sets[k][id] {
		delete(sets[k], id)
		return false
	}
	sets[k][id] = true
	if k == collection.Owned {
		delete(sets[collection.Wishlist], id)
	}
	return true
}

func (m *CollectionModel) IDs(d collection.Domain) []string {
	seen := make(map[string]bool)
	for _, k := range kinds {
		maps.Copy(seen, m.members[d][k])
	}
	return slices.Sorted(maps.Keys(seen))
}

func (m *CollectionModel) State() *collection.State {
	st := collection.NewState()
	for _, d := range domains {
		for _, k := range kinds {
			for id := range m.members[d][k] {
				st.Sets(d).Of(k)[id] = struct{}{}
			}
		}
	}
	return st
}

// CheckedManager applies every operation to both the manager and the model
// and verifies they agree, including what reached disk.
type CheckedManager struct {
	t     *rapid.T
	h     *ManagerHarness
	model *CollectionModel
}

func NewCheckedManager(h *ManagerHarness) *CheckedManager {
	return &CheckedManager{t: h.T, h: h, model: newCollectionModel()}
}

func (c *CheckedManager) Model() *CollectionModel {
	return c.model
}

func (c *CheckedManager) Toggle(d collection.Domain, k collection.Kind, id string) bool {
	c.t.Helper()
	before := c.h.Manager.Flags(d, id)

	got := c.h.Manager.Toggle(d, k, id)
	want := c.model.Toggle(d, k, id)
	if got != want {
		c.t.Fatalf("[%s] violated: Toggle(%s, %s, %q) = %v, model says %v", InvModelConsistent, d, k, id, got, want)
	}

	after := c.h.Manager.Flags(d, id)
	if k == collection.Wishlist && before.Owned && after != before {
		c.t.Fatalf("[%s] violated: wishlist toggle changed owned %q: %+v -> %+v", InvWishlistOwnedNoop, id, before, after)
	}
	if k != collection.Favorite && after.Favorite != before.Favorite {
		c.t.Fatalf("[%s] violated: %s toggle changed favorite of %q", InvFavoriteIndependent, k, id)
	}

	c.verify()
	return got
}

func (c *CheckedManager) verify() {
	c.t.Helper()
	st := c.h.Manager.State()
	verifyStructuralInvariants(c.t, st)
	assertStatesEqual(c.t, InvModelConsistent, c.model.State(), st)
	assertStatesEqual(c.t, InvEverySavePersisted, st, c.h.Reload())
}
