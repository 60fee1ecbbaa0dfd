package main

import (
	"errors"
	"fmt"

	"memorypak/internal/collection"
	"memorypak/internal/query"
	"memorypak/internal/ui"

	"github.com/charmbracelet/huh"
)

type PickCmd struct {
	Filter string `short:"f" default:"all" help:"Category to pick from"`
	Sort   string `short:"o" default:"name" help:"Order of the console list"`
}

func (cmd *PickCmd) Run(g *Globals) error {
	consoles := query.Consoles(g.Catalog.Consoles(), g.Manager.State(), query.Query{
		Filter: query.ParseFilter(cmd.Filter),
		Sort:   query.ParseSort(cmd.Sort),
	})
	if len(consoles) == 0 {
		fmt.Fprintln(g.Out, "No consoles found.")
		return nil
	}

	var name string
	options := make([]huh.Option[string], len(consoles))
	for i, c := range consoles {
		options[i] = huh.NewOption(c.Name, c.Name)
	}
	pickConsole := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Console").
			Options(options...).
			Filtering(true).
			Value(&name),
	)).WithTheme(ui.PickerTheme())
	if err := pickConsole.Run(); err != nil {
		return handlePickError(err)
	}

	var kind collection.Kind
	actions := ui.Actions(g.Manager.Flags(collection.Consoles, name))
	actionOptions := make([]huh.Option[collection.Kind], len(actions))
	for i, a := range actions {
		actionOptions[i] = huh.NewOption(a.Label, a.Kind)
	}
	pickAction := huh.NewForm(huh.NewGroup(
		huh.NewSelect[collection.Kind]().
			Title(name).
			Options(actionOptions...).
			Value(&kind),
	)).WithTheme(ui.PickerTheme())
	if err := pickAction.Run(); err != nil {
		return handlePickError(err)
	}

	return runToggle(g, Target{Console: name}, kind)
}

func handlePickError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
