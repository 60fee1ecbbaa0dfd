package main

import (
	"fmt"

	"memorypak/cmd/memorypak/render"
	"memorypak/internal/query"
)

type ConsolesCmd struct {
	Filter string `short:"f" default:"all" help:"Category: all, owned, wishlist, favorite, home, handheld, vr, pc-gaming-handheld, retro, modern"`
	Search string `short:"s" help:"Case-insensitive search over names and tags"`
	Sort   string `short:"o" default:"name" help:"Order: name, ownedFirst, wishlistFirst, favoriteFirst, generationOldest, generationNewest, consolesFirst, handheldsFirst"`
	Names  bool   `short:"n" help:"Output only console names (one per line)"`
}

func (cmd *ConsolesCmd) Run(g *Globals) error {
	st := g.Manager.State()
	consoles := query.Consoles(g.Catalog.Consoles(), st, query.Query{
		Filter: query.ParseFilter(cmd.Filter),
		Search: cmd.Search,
		Sort:   query.ParseSort(cmd.Sort),
	})

	if cmd.Names {
		for _, c := range consoles {
			fmt.Fprintln(g.Out, c.Name)
		}
		return nil
	}

	fmt.Fprint(g.Out, g.Render.RenderList(render.ListView{
		Items: consoleItems(consoles, st),
		Empty: "No consoles found.",
	}))
	fmt.Fprint(g.Out, g.Render.RenderStats(statsView("Consoles", query.ComputeStats(g.Catalog, st, query.AllConsoles()))))
	return nil
}

type GamesCmd struct {
	Console string `arg:"" optional:"" help:"Console whose games to list (default: every console)"`
	Filter  string `short:"f" default:"all" help:"Category: all, owned, wishlist, favorite"`
	Search  string `short:"s" help:"Case-insensitive search over names, developers and publishers"`
	Sort    string `short:"o" default:"name" help:"Order: name, ownedFirst, wishlistFirst, favoriteFirst, developerAZ, publisherAZ"`
	Names   bool   `short:"n" help:"Output only game names (one per line)"`
}

func (cmd *GamesCmd) Run(g *Globals) error {
	st := g.Manager.State()
	q := query.Query{
		Filter: query.ParseFilter(cmd.Filter),
		Search: cmd.Search,
		Sort:   query.ParseSort(cmd.Sort),
	}

	games := g.Catalog.AllGames()
	scope := query.AllGames()
	label := "All games"
	if cmd.Console != "" {
		console, err := findGameConsole(g.Catalog, cmd.Console)
		if err != nil {
			if handleFindError(g.Out, err) {
				return nil
			}
			return err
		}
		games = g.Catalog.Games(console)
		scope = query.ConsoleGames(console)
		label = console
	}

	games = query.Games(games, st, q)

	if cmd.Names {
		for _, game := range games {
			fmt.Fprintln(g.Out, game.Name)
		}
		return nil
	}

	fmt.Fprint(g.Out, g.Render.RenderList(render.ListView{
		Items: gameItems(games, st, cmd.Console == ""),
		Empty: "No games found.",
	}))
	fmt.Fprint(g.Out, g.Render.RenderStats(statsView(label, query.ComputeStats(g.Catalog, st, scope))))
	return nil
}
