package main

import (
	"fmt"

	"memorypak/internal/settings"
)

type ThemeCmd struct {
	Theme  string `arg:"" optional:"" help:"Theme to use (dark or light)"`
	Toggle bool   `short:"t" help:"Switch between dark and light"`
}

func (cmd *ThemeCmd) Run(g *Globals) error {
	next := g.Settings
	switch {
	case cmd.Theme != "":
		theme, err := settings.ParseTheme(cmd.Theme)
		if err != nil {
			return err
		}
		next.Theme = theme
	case cmd.Toggle:
		next = next.Toggle()
	default:
		fmt.Fprintf(g.Out, "Theme: %s\n", g.Settings.Theme)
		return nil
	}

	g.Settings = next
	if err := settings.Save(g.SettingsPath, next); err != nil {
		g.Log.Error("failed to save settings", "path", g.SettingsPath, "error", err)
	}
	fmt.Fprintf(g.Out, "Theme: %s\n", next.Theme)
	return nil
}
