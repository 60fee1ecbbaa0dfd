package proptest

import (
	"strings"

	"memorypak/internal/catalog"
	"memorypak/internal/collection"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

// snapshot flattens a collection into sorted lists for comparison.
type snapshot struct {
	Consoles, Games [3][]string
}

func snapshotOf(st *collection.State) snapshot {
	var s snapshot
	for i, k := range kinds {
		s.Consoles[i] = st.Consoles.Of(k).Sorted()
		s.Games[i] = st.Games.Of(k).Sorted()
	}
	return s
}

func assertStatesEqual(t *rapid.T, inv string, expected, actual *collection.State) {
	t.Helper()
	if diff := cmp.Diff(snapshotOf(expected), snapshotOf(actual), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("[%s] violated: state mismatch (-want +got):\n%s", inv, diff)
	}
}

func consoleNames(consoles []catalog.Console) []string {
	out := make([]string, len(consoles))
	for i, c := range consoles {
		out[i] = c.Name
	}
	return out
}

func gameKeys(games []catalog.GameRef) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.Key()
	}
	return out
}

func assertSubset(t *rapid.T, subset, superset []string) {
	t.Helper()
	super := make(map[string]bool, len(superset))
	for _, id := range superset {
		super[id] = true
	}
	for _, id := range subset {
		if !super[id] {
			t.Fatalf("[%s] violated: %q not in input", InvQuerySubsetOfInput, id)
		}
	}
}

func assertSameElements(t *rapid.T, inv string, expected, actual []string) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.SortSlices(func(a, b string) bool { return a < b }), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("[%s] violated (-want +got):\n%s", inv, diff)
	}
}

// assertOrdered checks that rank never decreases along the slice and that
// names ascend within equal ranks.
func assertOrdered[T any](t *rapid.T, items []T, rank func(T) int, name func(T) string) {
	t.Helper()
	for i := 0; i+1 < len(items); i++ {
		a, b := items[i], items[i+1]
		ra, rb := rank(a), rank(b)
		if ra > rb || (ra == rb && strings.Compare(name(a), name(b)) > 0) {
			t.Fatalf("[%s] violated at positions %d, %d: %q before %q", InvSortOrdered, i, i+1, name(a), name(b))
		}
	}
}
