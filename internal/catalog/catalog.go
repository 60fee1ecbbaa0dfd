package catalog

import (
	"errors"
	"slices"
)

var (
	ErrNotFound    = errors.New("not found in catalog")
	ErrEmptyName   = errors.New("catalog entry name cannot be empty")
	ErrUnknownForm = errors.New("unrecognized catalog file shape")
)

type Console struct {
	Name string   `yaml:"name" json:"name"`
	Tags []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

func (c Console) HasTag(tag string) bool {
	return slices.Contains(c.Tags, tag)
}

func (c Console) IsHandheld() bool {
	return c.HasTag("handheld")
}

type Game struct {
	Name      string `yaml:"name" json:"name"`
	Developer string `yaml:"developer,omitempty" json:"developer,omitempty"`
	Publisher string `yaml:"publisher,omitempty" json:"publisher,omitempty"`
}

// GameRef is a game together with the console it belongs to. Game names are
// only unique per console.
type GameRef struct {
	Console string
	Game
}

// GameKey identifies a game across the whole catalog.
func GameKey(console, game string) string {
	return console + ":" + game
}

func (g GameRef) Key() string {
	return GameKey(g.Console, g.Name)
}
