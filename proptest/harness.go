package proptest

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"memorypak/internal/catalog"
	"memorypak/internal/collection"

	"pgregory.net/rapid"
)

const (
	minConsoles        = 0
	maxConsoles        = 12
	typicalMinConsoles = 1
	typicalMaxConsoles = 8
	maxGames           = 15
)

type Harness struct {
	T   *rapid.T
	Dir string
}

func (h *Harness) Consoles(minCount, maxCount int) []catalog.Console {
	return consolesGen(minCount, maxCount).Draw(h.T, "consoles")
}

func (h *Harness) Games() []catalog.GameRef {
	return gameRefsGen(maxGames).Draw(h.T, "games")
}

// State draws a collection whose ids come from the given catalog.
func (h *Harness) State(consoles []catalog.Console, games []catalog.GameRef) *collection.State {
	names := make([]string, len(consoles))
	for i, c := range consoles {
		names[i] = c.Name
	}
	keys := make([]string, len(games))
	for i, g := range games {
		keys[i] = g.Key()
	}
	return stateGen(names, keys).Draw(h.T, "state")
}

type ManagerHarness struct {
	Harness
	Store   *collection.FileStore
	Manager *collection.Manager
}

func (h *ManagerHarness) Reload() *collection.State {
	return h.Store.Load()
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func newIterDir(rt *rapid.T, tempDir string) string {
	iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
	if err := os.MkdirAll(iterDir, 0o755); err != nil {
		rt.Fatalf("failed to create iter dir: %v", err)
	}
	return iterDir
}

func RunWithManager(t *testing.T, fn func(h *ManagerHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := newIterDir(rt, tempDir)
		statePath := filepath.Join(iterDir, "state.json")
		_ = os.Remove(statePath)

		store, err := collection.NewFileStore(statePath, quietLogger())
		if err != nil {
			rt.Fatalf("failed to create store: %v", err)
		}

		harness := &ManagerHarness{
			Harness: Harness{
				T:   rt,
				Dir: iterDir,
			},
			Store:   store,
			Manager: collection.NewManager(store.Load(), store, quietLogger()),
		}

		fn(harness)
	})
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		harness := &Harness{
			T:   rt,
			Dir: newIterDir(rt, tempDir),
		}

		fn(harness)
	})
}
