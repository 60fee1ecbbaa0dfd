package main

import (
	"fmt"

	"memorypak/internal/query"
)

type StatsCmd struct {
	Console string `arg:"" optional:"" help:"Limit game statistics to one console"`
	Games   bool   `short:"g" help:"Show statistics over every game instead of consoles"`
}

func (cmd *StatsCmd) Run(g *Globals) error {
	st := g.Manager.State()

	switch {
	case cmd.Console != "":
		console, err := findGameConsole(g.Catalog, cmd.Console)
		if err != nil {
			if handleFindError(g.Out, err) {
				return nil
			}
			return err
		}
		s := query.ComputeStats(g.Catalog, st, query.ConsoleGames(console))
		fmt.Fprint(g.Out, g.Render.RenderStats(statsView(console, s)))
	case cmd.Games:
		s := query.ComputeStats(g.Catalog, st, query.AllGames())
		fmt.Fprint(g.Out, g.Render.RenderStats(statsView("All games", s)))
	default:
		s := query.ComputeStats(g.Catalog, st, query.AllConsoles())
		fmt.Fprint(g.Out, g.Render.RenderStats(statsView("Consoles", s)))
	}
	return nil
}
