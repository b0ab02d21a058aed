// Package commands implements the docsite CLI subcommands.
package commands

import (
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/content"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/nav"
	"git.home.luguber.info/inful/docsite/internal/search"
	"github.com/alecthomas/kong"
)

// stdout receives command output; tests replace it.
var stdout io.Writer = os.Stdout

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docsite.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Serve  ServeCmd  `cmd:"" help:"Serve the docs JSON API"`
	Tree   TreeCmd   `cmd:"" help:"Print the navigation tree"`
	Search SearchCmd `cmd:"" help:"Search page titles, descriptions and bodies"`
	Toc    TocCmd    `cmd:"" help:"Print the table of contents of one page"`
	Check  CheckCmd  `cmd:"" help:"Lint content headers, anchors, links and ordering"`
	Init   InitCmd   `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig reads the configured file, or the defaults when it does not exist.
func loadConfig(root *CLI) (*config.Config, error) {
	cfg, found, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return nil, err
	}
	if !found {
		slog.Debug("No configuration file, using defaults", logfields.Path(root.Config))
	}
	return cfg, nil
}

// pipeline bundles the content store with the builders that read it.
type pipeline struct {
	cfg     *config.Config
	store   *content.FSStore
	builder *nav.Builder
	search  *search.Service
}

func newPipeline(cfg *config.Config, logger *slog.Logger, recorder metrics.Recorder) *pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	store := content.NewOSStore(cfg.Content.Root,
		content.WithExtension(cfg.Content.Extension),
		content.WithLogger(logger))
	builder := nav.NewBuilder(store,
		nav.WithSectionOrder(cfg.SectionOrder()),
		nav.WithLabels(cfg.SectionLabels()),
		nav.WithBasePath(cfg.Content.BasePath),
		nav.WithLogger(logger),
		nav.WithRecorder(recorder))
	svc := search.NewService(builder, store,
		search.WithLimit(cfg.Search.Limit),
		search.WithMinQueryLength(cfg.Search.MinQueryLength),
		search.WithLogger(logger),
		search.WithRecorder(recorder))
	return &pipeline{cfg: cfg, store: store, builder: builder, search: svc}
}

func (g *Global) logger() *slog.Logger {
	if g == nil || g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}
