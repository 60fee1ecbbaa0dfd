package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Lists is the on-disk form of Sets: sorted id lists.
type Lists struct {
	Owned    []string `json:"owned"`
	Wishlist []string `json:"wishlist"`
	Favorite []string `json:"favorite"`
}

type stateFile struct {
	Consoles *Lists `json:"consoles,omitempty"`
	Games    *Lists `json:"games,omitempty"`

	// Single-list documents written before games were tracked.
	Owned    []string `json:"owned,omitempty"`
	Wishlist []string `json:"wishlist,omitempty"`
	Favorite []string `json:"favorite,omitempty"`
}

func (f *Lists) sets() *Sets {
	s := NewSets()
	if f == nil {
		return s
	}
	s.Owned = NewSet(f.Owned...)
	s.Wishlist = NewSet(f.Wishlist...)
	s.Favorite = NewSet(f.Favorite...)
	return s
}

func newLists(s *Sets) *Lists {
	return &Lists{
		Owned:    s.Owned.Sorted(),
		Wishlist: s.Wishlist.Sorted(),
		Favorite: s.Favorite.Sorted(),
	}
}

func (f stateFile) state() *State {
	st := &State{Consoles: f.Consoles.sets(), Games: f.Games.sets()}
	if f.Consoles == nil && (f.Owned != nil || f.Wishlist != nil || f.Favorite != nil) {
		st.Consoles = (&Lists{Owned: f.Owned, Wishlist: f.Wishlist, Favorite: f.Favorite}).sets()
	}
	return st
}

// FileStore keeps the collection in a JSON file.
type FileStore struct {
	path string
	log  *slog.Logger
}

func NewFileStore(path string, log *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &FileStore{path: path, log: log}, nil
}

func (fs *FileStore) Path() string {
	return fs.path
}

// Load reads the collection. A missing, unreadable or malformed file yields an
// empty collection; only the last two are logged.
func (fs *FileStore) Load() *State {
	data, err := os.ReadFile(fs.path)
	if errors.Is(err, os.ErrNotExist) {
		return NewState()
	}
	if err != nil {
		fs.log.Warn("could not read collection, starting empty", "path", fs.path, "error", err)
		return NewState()
	}

	st, err := DecodeState(data)
	if err != nil {
		fs.log.Warn("could not parse collection, starting empty", "path", fs.path, "error", err)
		return NewState()
	}
	return st
}

// DecodeState parses a collection document and restores the owned/wishlist
// exclusion if the document breaks it.
func DecodeState(data []byte) (*State, error) {
	var f stateFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse collection: %w", err)
	}
	st := f.state()
	st.Consoles.normalize()
	st.Games.normalize()
	return st, nil
}

func EncodeState(s *State) ([]byte, error) {
	return json.MarshalIndent(stateFile{
		Consoles: newLists(s.Consoles),
		Games:    newLists(s.Games),
	}, "", "  ")
}

func (fs *FileStore) Save(s *State) error {
	data, err := EncodeState(s)
	if err != nil {
		return err
	}

	tmpPath := fs.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection: %w", err)
	}
	return os.Rename(tmpPath, fs.path)
}
