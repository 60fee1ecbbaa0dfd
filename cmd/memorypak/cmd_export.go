package main

import (
	"fmt"
	"io"
	"os"

	"memorypak/internal/collection"
	"memorypak/internal/config"
)

type ExportCmd struct {
	Path string `arg:"" default:"-" help:"Output file, or - for stdout"`
}

func (cmd *ExportCmd) Run(g *Globals) error {
	doc := collection.NewExport(g.Manager.State(), g.Now())

	if cmd.Path == "-" {
		return collection.WriteExport(g.Out, doc)
	}

	path, err := config.ExpandPath(cmd.Path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export: %w", err)
	}
	if err := collection.WriteExport(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Fprintf(g.Out, "Exported: %s\n", config.ShortenPath(path))
	return nil
}

type ImportCmd struct {
	Path string `arg:"" help:"Export file to merge, or - for stdin"`

	In io.Reader `kong:"-"`
}

func (cmd *ImportCmd) Run(g *Globals) error {
	r := cmd.In
	if cmd.Path != "-" {
		path, err := config.ExpandPath(cmd.Path)
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open export: %w", err)
		}
		defer f.Close()
		r = f
	} else if r == nil {
		r = os.Stdin
	}

	doc, err := collection.ReadExport(r)
	if err != nil {
		return err
	}
	g.Manager.Import(doc)

	st := g.Manager.State()
	fmt.Fprintf(g.Out, "Imported: %d consoles and %d games owned\n",
		st.Consoles.Owned.Len(), st.Games.Owned.Len())
	return nil
}
