// Package settings persists user preferences that are independent of the
// collection. Preferences are stored as TOML.
package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme accepts "dark" or "light" in any case.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeDark, ThemeLight:
		return t, nil
	}
	return "", fmt.Errorf("unknown theme %q (want dark or light)", s)
}

type Settings struct {
	Theme Theme `toml:"theme"`
}

func Default() Settings {
	return Settings{Theme: ThemeDark}
}

// Toggle switches between the dark and light themes.
func (s Settings) Toggle() Settings {
	if s.Theme == ThemeLight {
		s.Theme = ThemeDark
	} else {
		s.Theme = ThemeLight
	}
	return s
}

// Load reads settings from path, falling back to defaults if the file is
// missing or unusable.
func Load(path string, log *slog.Logger) Settings {
	if log == nil {
		log = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn("could not read settings, using defaults", "path", path, "error", err)
		}
		return Default()
	}

	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		log.Warn("could not parse settings, using defaults", "path", path, "error", err)
		return Default()
	}

	theme, err := ParseTheme(string(s.Theme))
	if err != nil {
		theme = ThemeDark
	}
	s.Theme = theme
	return s
}

// Save writes settings to path, creating directories as needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
