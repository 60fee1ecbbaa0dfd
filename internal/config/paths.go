package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const appName = "memorypak"

// Paths locates every file the application reads or writes.
type Paths struct {
	Consoles string
	GamesDir string
	State    string
	Settings string
}

// Resolve builds the file layout under dataDir. Empty arguments select the
// XDG defaults.
func Resolve(dataDir, settingsPath string) (Paths, error) {
	if dataDir == "" {
		dataDir = DefaultDataDir()
	}
	dataDir, err := ExpandPath(dataDir)
	if err != nil {
		return Paths{}, err
	}

	if settingsPath == "" {
		settingsPath = DefaultSettingsPath()
	}
	settingsPath, err = ExpandPath(settingsPath)
	if err != nil {
		return Paths{}, err
	}

	return Paths{
		Consoles: filepath.Join(dataDir, "consoles.yaml"),
		GamesDir: filepath.Join(dataDir, "games"),
		State:    filepath.Join(dataDir, "state.json"),
		Settings: settingsPath,
	}, nil
}

func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appName)
}

func DefaultSettingsPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appName, "settings.toml")
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = filepath.Join(home, path[2:])
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = home
	}

	return filepath.Abs(path)
}

// ShortenPath replaces the home directory prefix with ~.
func ShortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(path, home+string(filepath.Separator)); ok {
		return "~/" + rest
	}
	return path
}
