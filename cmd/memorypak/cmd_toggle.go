package main

import (
	"fmt"

	"memorypak/internal/collection"
	"memorypak/internal/ui"
)

type OwnCmd struct {
	Target
}

func (cmd *OwnCmd) Run(g *Globals) error {
	return runToggle(g, cmd.Target, collection.Owned)
}

type WishCmd struct {
	Target
}

func (cmd *WishCmd) Run(g *Globals) error {
	return runToggle(g, cmd.Target, collection.Wishlist)
}

type FavCmd struct {
	Target
}

func (cmd *FavCmd) Run(g *Globals) error {
	return runToggle(g, cmd.Target, collection.Favorite)
}

func runToggle(g *Globals, target Target, kind collection.Kind) error {
	t, err := target.resolve(g.Catalog)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	if kind == collection.Wishlist && g.Manager.Flags(t.Domain, t.ID).Owned {
		fmt.Fprintf(g.Out, "%s is already owned; wishlist unchanged.\n", t.Label)
		return nil
	}

	g.Manager.Toggle(t.Domain, kind, t.ID)
	fmt.Fprint(g.Out, ui.RenderSummary(t.Label, ui.FlagFields(g.Manager.Flags(t.Domain, t.ID))))
	return nil
}

type ShowCmd struct {
	Target
}

func (cmd *ShowCmd) Run(g *Globals) error {
	t, err := cmd.resolve(g.Catalog)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	fields := ui.FlagFields(g.Manager.Flags(t.Domain, t.ID))
	if t.Domain == collection.Consoles {
		c, _ := g.Catalog.Console(t.ID)
		fields = append(fields, ui.Field{Label: "Games", Value: fmt.Sprint(len(g.Catalog.Games(c.Name)))})
	}
	fmt.Fprint(g.Out, ui.RenderSummary(t.Label, fields))
	return nil
}
