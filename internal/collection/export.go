package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

const ExportVersion = "1.0"

var ErrExportVersion = errors.New("unsupported export version")

// ExportDocument is a portable copy of the collection.
type ExportDocument struct {
	ID         string    `json:"id"`
	Version    string    `json:"version"`
	ExportedAt time.Time `json:"exported_at"`
	Consoles   *Lists    `json:"consoles"`
	Games      *Lists    `json:"games"`
}

func NewExport(s *State, now time.Time) ExportDocument {
	return ExportDocument{
		ID:         uuid.New().String(),
		Version:    ExportVersion,
		ExportedAt: now.UTC(),
		Consoles:   newLists(s.Consoles),
		Games:      newLists(s.Games),
	}
}

// State converts the document back into a collection.
func (d ExportDocument) State() *State {
	st := &State{Consoles: d.Consoles.sets(), Games: d.Games.sets()}
	st.Consoles.normalize()
	st.Games.normalize()
	return st
}

func WriteExport(w io.Writer, doc ExportDocument) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func ReadExport(r io.Reader) (ExportDocument, error) {
	var doc ExportDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return ExportDocument{}, fmt.Errorf("failed to parse export: %w", err)
	}
	if doc.Version != ExportVersion {
		return ExportDocument{}, fmt.Errorf("%w: %q", ErrExportVersion, doc.Version)
	}
	return doc, nil
}
