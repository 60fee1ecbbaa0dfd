package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type consolesFile struct {
	Consoles []Console `yaml:"consoles"`
}

type rawConsole struct {
	Name string      `yaml:"name"`
	Tags []yaml.Node `yaml:"tags"`
}

type rawGame struct {
	Name      string `yaml:"name"`
	Title     string `yaml:"title"`
	Developer string `yaml:"developer"`
	Publisher string `yaml:"publisher"`
}

// Loader reads the catalog from disk. Problems with individual files are
// logged and replaced by empty data so a broken file never blocks startup.
type Loader struct {
	ConsolesPath string
	GamesDir     string
	Log          *slog.Logger
}

func (l *Loader) logger() *slog.Logger {
	if l.Log == nil {
		return slog.Default()
	}
	return l.Log
}

func (l *Loader) Load() *Store {
	return NewStore(l.LoadConsoles(), l.LoadGames())
}

// LoadConsoles reads the console catalog. A missing file is created with an
// empty catalog.
func (l *Loader) LoadConsoles() []Console {
	log := l.logger().With("path", l.ConsolesPath)

	data, err := os.ReadFile(l.ConsolesPath)
	if errors.Is(err, os.ErrNotExist) {
		if err := writeDefaultConsoles(l.ConsolesPath); err != nil {
			log.Warn("could not create default console catalog", "error", err)
		}
		return nil
	}
	if err != nil {
		log.Warn("could not read console catalog", "error", err)
		return nil
	}

	consoles, err := ParseConsoles(data)
	if err != nil {
		log.Warn("could not parse console catalog", "error", err)
		return nil
	}
	log.Debug("loaded consoles", "count", len(consoles))
	return consoles
}

func writeDefaultConsoles(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(consolesFile{Consoles: []Console{}})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ParseConsoles accepts either a bare list of consoles or an object with a
// "consoles" list. Null tags are dropped; other scalar tags keep their text.
func ParseConsoles(data []byte) ([]Console, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	list, err := unwrapList(doc.Content[0], "consoles")
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, nil
	}

	var raw []rawConsole
	if err := list.Decode(&raw); err != nil {
		return nil, err
	}

	consoles := make([]Console, 0, len(raw))
	for _, rc := range raw {
		name := strings.TrimSpace(rc.Name)
		if name == "" {
			continue
		}
		consoles = append(consoles, Console{Name: name, Tags: coerceTags(rc.Tags)})
	}
	return consoles, nil
}

func coerceTags(nodes []yaml.Node) []string {
	var tags []string
	for _, n := range nodes {
		if n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
			continue
		}
		tags = append(tags, n.Value)
	}
	return tags
}

// unwrapList returns the sequence node itself, or the sequence stored under
// key when n is a mapping. A null document yields nil.
func unwrapList(n *yaml.Node, key string) (*yaml.Node, error) {
	switch n.Kind {
	case yaml.SequenceNode:
		return n, nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Value != key {
				continue
			}
			v := n.Content[i+1]
			if v.Kind == yaml.SequenceNode {
				return v, nil
			}
			if v.Tag == "!!null" {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: %q is not a list", ErrUnknownForm, key)
		}
		return nil, fmt.Errorf("%w: no %q list", ErrUnknownForm, key)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
	}
	return nil, ErrUnknownForm
}

// LoadGames reads one file per console from the games directory.
func (l *Loader) LoadGames() map[string][]Game {
	games := make(map[string][]Game)
	if l.GamesDir == "" {
		return games
	}
	log := l.logger().With("dir", l.GamesDir)

	entries, err := os.ReadDir(l.GamesDir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn("could not read games directory", "error", err)
		}
		return games
	}

	for _, e := range entries {
		if e.IsDir() || !isCatalogFile(e.Name()) {
			continue
		}
		path := filepath.Join(l.GamesDir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("skipping unreadable game file", "file", e.Name(), "error", err)
			continue
		}

		stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		console, list, err := ParseGames(data, stem)
		if err != nil {
			log.Warn("skipping game file", "file", e.Name(), "error", err)
			continue
		}
		games[console] = append(games[console], list...)
	}
	return games
}

func isCatalogFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// ParseGames decodes a per-console game file. The file is either a bare list
// of games or an object with a "games" list and an optional "console" name;
// fallbackConsole is used when the file does not name its console.
func ParseGames(data []byte, fallbackConsole string) (string, []Game, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", nil, err
	}
	console := fallbackConsole
	if len(doc.Content) == 0 {
		return console, nil, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.MappingNode {
		var head struct {
			Console string `yaml:"console"`
		}
		if err := root.Decode(&head); err == nil && strings.TrimSpace(head.Console) != "" {
			console = strings.TrimSpace(head.Console)
		}
	}

	list, err := unwrapList(root, "games")
	if err != nil {
		return "", nil, err
	}
	if list == nil {
		return console, nil, nil
	}

	var raw []rawGame
	if err := list.Decode(&raw); err != nil {
		return "", nil, err
	}

	games := make([]Game, 0, len(raw))
	for _, rg := range raw {
		name := rg.Name
		if name == "" {
			name = rg.Title
		}
		if strings.TrimSpace(name) == "" {
			continue
		}
		games = append(games, Game{
			Name:      name,
			Developer: rg.Developer,
			Publisher: rg.Publisher,
		})
	}
	return console, games, nil
}
