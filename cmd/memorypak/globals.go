package main

import (
	"io"
	"log/slog"
	"time"

	"memorypak/cmd/memorypak/render"
	"memorypak/internal/catalog"
	"memorypak/internal/collection"
	"memorypak/internal/settings"
)

type Globals struct {
	Catalog      *catalog.Store
	Manager      *collection.Manager
	Settings     settings.Settings
	SettingsPath string
	Out          io.Writer
	Render       render.Renderer
	Log          *slog.Logger
	Now          func() time.Time
}
