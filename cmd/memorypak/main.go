package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"memorypak/cmd/memorypak/render"
	"memorypak/internal/catalog"
	"memorypak/internal/collection"
	"memorypak/internal/config"
	"memorypak/internal/settings"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Consoles ConsolesCmd `cmd:"" aliases:"ls" help:"List consoles"`
	Games    GamesCmd    `cmd:"" aliases:"g" help:"List games of one console, or of every console"`
	Own      OwnCmd      `cmd:"" help:"Toggle owned status of a console or game"`
	Wish     WishCmd     `cmd:"" help:"Toggle wishlist status of a console or game"`
	Fav      FavCmd      `cmd:"" help:"Toggle favorite status of a console or game"`
	Show     ShowCmd     `cmd:"" help:"Show collection status of a console or game"`
	Stats    StatsCmd    `cmd:"" help:"Show collection statistics"`
	Pick     PickCmd     `cmd:"" help:"Interactively pick a console and toggle its status"`
	Theme    ThemeCmd    `cmd:"" help:"Show, set or toggle the color theme"`
	Export   ExportCmd   `cmd:"" help:"Export the collection as JSON"`
	Import   ImportCmd   `cmd:"" help:"Merge a JSON export into the collection"`

	DataDir      string `name:"data-dir" short:"d" help:"Directory holding consoles.yaml, games/ and state.json"`
	SettingsPath string `name:"settings" help:"Path to settings file"`
	Verbose      bool   `short:"v" help:"Log debug output to stderr"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	log := newLogger(c.Verbose)

	paths, err := config.Resolve(c.DataDir, c.SettingsPath)
	if err != nil {
		return fmt.Errorf("failed to resolve paths: %w", err)
	}

	store, err := collection.NewFileStore(paths.State, log)
	if err != nil {
		return fmt.Errorf("failed to open collection: %w", err)
	}

	loader := &catalog.Loader{ConsolesPath: paths.Consoles, GamesDir: paths.GamesDir, Log: log}
	prefs := settings.Load(paths.Settings, log)

	globals := &Globals{
		Catalog:      loader.Load(),
		Manager:      collection.NewManager(store.Load(), store, log),
		Settings:     prefs,
		SettingsPath: paths.Settings,
		Out:          os.Stdout,
		Render:       render.NewLipglossRendererAuto(os.Stdout, prefs.Theme),
		Log:          log,
		Now:          time.Now,
	}
	ctx.Bind(globals)
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	return log
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("memorypak"),
		kong.Description("Console and game collection tracker"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
