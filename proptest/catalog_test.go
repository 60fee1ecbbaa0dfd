package proptest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"memorypak/internal/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"
)

func TestProperty_ParseConsoles_RoundTrip(t *testing.T) {
	RunBasic(t, func(h *Harness) {
		consoles := h.Consoles(minConsoles, maxConsoles)
		wrapped := rapid.Bool().Draw(h.T, "wrapped")

		var doc any = consoles
		if wrapped {
			doc = map[string]any{"consoles": consoles}
		}
		data, err := yaml.Marshal(doc)
		if err != nil {
			h.T.Fatalf("failed to marshal: %v", err)
		}

		got, err := catalog.ParseConsoles(data)
		if err != nil {
			h.T.Fatalf("failed to parse %q: %v", data, err)
		}

		want := make([]catalog.Console, len(consoles))
		for i, c := range consoles {
			want[i] = catalog.Console{Name: strings.TrimSpace(c.Name), Tags: c.Tags}
		}
		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			h.T.Fatalf("[%s] violated (-want +got):\n%s", InvSaveLoadRoundTrip, diff)
		}
	})
}

func TestProperty_ParseGames_KeepsNamedGames(t *testing.T) {
	RunBasic(t, func(h *Harness) {
		games := rapid.SliceOfN(gameGen(), 0, 10).Draw(h.T, "games")
		data, err := yaml.Marshal(map[string]any{"console": "Game Boy", "games": games})
		if err != nil {
			h.T.Fatalf("failed to marshal: %v", err)
		}

		console, got, err := catalog.ParseGames(data, "gameboy")
		if err != nil {
			h.T.Fatalf("failed to parse: %v", err)
		}
		if console != "Game Boy" {
			h.T.Fatalf("console = %q, want the name stored in the file", console)
		}
		if len(got) != len(games) {
			h.T.Fatalf("[%s] violated: %d games in, %d out", InvSaveLoadRoundTrip, len(games), len(got))
		}
	})
}

func TestProperty_ParseMalformed_NeverPanics(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		content := malformedCatalogGen().Draw(rt, "content")

		requireNoPanic(rt, "ParseConsoles", content, func() {
			_, _ = catalog.ParseConsoles([]byte(content))
		})
		requireNoPanic(rt, "ParseGames", content, func() {
			_, _, _ = catalog.ParseGames([]byte(content), "fallback")
		})
	})
}

func TestProperty_Loader_MalformedFilesTolerated(t *testing.T) {
	RunBasic(t, func(h *Harness) {
		content := malformedCatalogGen().Draw(h.T, "content")
		consolesPath := filepath.Join(h.Dir, "consoles.yaml")
		gamesDir := filepath.Join(h.Dir, "games")
		if err := os.MkdirAll(gamesDir, 0o755); err != nil {
			h.T.Fatalf("failed to create games dir: %v", err)
		}
		for _, path := range []string{consolesPath, filepath.Join(gamesDir, "broken.json")} {
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				h.T.Fatalf("failed to write %s: %v", path, err)
			}
		}

		loader := &catalog.Loader{ConsolesPath: consolesPath, GamesDir: gamesDir, Log: quietLogger()}
		var store *catalog.Store
		requireNoPanic(h.T, "Loader.Load", content, func() {
			store = loader.Load()
		})

		for _, c := range store.Consoles() {
			if strings.TrimSpace(c.Name) == "" {
				h.T.Fatalf("[%s] violated: console with empty name loaded", InvMalformedInputTolerated)
			}
		}
		for _, g := range store.AllGames() {
			if strings.TrimSpace(g.Name) == "" {
				h.T.Fatalf("[%s] violated: game with empty name loaded", InvMalformedInputTolerated)
			}
		}
	})
}

func TestProperty_Store_LookupsAgreeWithInput(t *testing.T) {
	RunBasic(t, func(h *Harness) {
		consoles := h.Consoles(typicalMinConsoles, typicalMaxConsoles)
		store := catalog.NewStore(consoles, nil)

		if store.ConsoleCount() != len(consoles) {
			h.T.Fatalf("ConsoleCount() = %d, want %d", store.ConsoleCount(), len(consoles))
		}
		for _, c := range consoles {
			got, err := store.Console(c.Name)
			if err != nil {
				h.T.Fatalf("Console(%q): %v", c.Name, err)
			}
			if got.Name != c.Name {
				h.T.Fatalf("Console(%q) returned %q", c.Name, got.Name)
			}
		}
	})
}
