package proptest

import (
	"bytes"
	"os"
	"testing"
	"time"

	"memorypak/internal/collection"

	"pgregory.net/rapid"
)

func requireNoPanic(rt *rapid.T, description, input string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			rt.Fatalf("[%s] violated: %s panicked: %v\nInput: %q", InvMalformedInputTolerated, description, r, input)
		}
	}()
	fn()
}

func TestProperty_SaveLoad_RoundTrip(t *testing.T) {
	RunWithManager(t, func(h *ManagerHarness) {
		consoles := h.Consoles(typicalMinConsoles, typicalMaxConsoles)
		st := h.State(consoles, h.Games())

		if err := h.Store.Save(st); err != nil {
			h.T.Fatalf("failed to save: %v", err)
		}

		assertStatesEqual(h.T, InvSaveLoadRoundTrip, st, h.Reload())
	})
}

func TestProperty_ExportImport_RoundTrip(t *testing.T) {
	RunWithManager(t, func(h *ManagerHarness) {
		st := h.State(h.Consoles(typicalMinConsoles, typicalMaxConsoles), h.Games())

		var buf bytes.Buffer
		if err := collection.WriteExport(&buf, collection.NewExport(st, time.Now())); err != nil {
			h.T.Fatalf("failed to export: %v", err)
		}
		doc, err := collection.ReadExport(&buf)
		if err != nil {
			h.T.Fatalf("failed to read export: %v", err)
		}

		h.Manager.Import(doc)

		assertStatesEqual(h.T, InvExportImportRoundTrip, st, h.Manager.State())
		assertStatesEqual(h.T, InvExportImportRoundTrip, st, h.Reload())
	})
}

func TestProperty_Import_KeepsOwnedExclusive(t *testing.T) {
	RunWithManager(t, func(h *ManagerHarness) {
		consoles := h.Consoles(typicalMinConsoles, typicalMaxConsoles)
		games := h.Games()
		for _, k := range []collection.Kind{collection.Owned, collection.Wishlist} {
			for _, id := range idsGen(consoleNames(consoles)).Draw(h.T, string(k)) {
				h.Manager.Toggle(collection.Consoles, k, id)
			}
		}

		incoming := h.State(consoles, games)
		h.Manager.Import(collection.NewExport(incoming, time.Now()))

		verifyStructuralInvariants(h.T, h.Manager.State())
		for id := range incoming.Consoles.Owned {
			if !h.Manager.State().Consoles.Owned.Has(id) {
				h.T.Fatalf("[%s] violated: imported owned %q lost", InvExportImportRoundTrip, id)
			}
		}
	})
}

func TestProperty_Load_MalformedStateStartsEmpty(t *testing.T) {
	RunWithManager(t, func(h *ManagerHarness) {
		content := malformedCatalogGen().Draw(h.T, "content")
		if err := os.WriteFile(h.Store.Path(), []byte(content), 0o644); err != nil {
			h.T.Fatalf("failed to write state: %v", err)
		}

		var st *collection.State
		requireNoPanic(h.T, "FileStore.Load", content, func() {
			st = h.Store.Load()
		})

		if st == nil {
			h.T.Fatalf("[%s] violated: Load returned nil", InvMalformedInputTolerated)
		}
		verifyStructuralInvariants(h.T, st)
	})
}

func TestProperty_DecodeState_NeverPanics(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		data := rapid.SliceOf(rapid.Byte()).Draw(rt, "data")

		requireNoPanic(rt, "DecodeState", string(data), func() {
			st, err := collection.DecodeState(data)
			if err == nil {
				verifyStructuralInvariants(rt, st)
			}
		})
	})
}
