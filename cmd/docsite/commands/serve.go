package commands

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/docsite/internal/history"
	"git.home.luguber.info/inful/docsite/internal/lint"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/markdown"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/server/httpserver"
	"git.home.luguber.info/inful/docsite/internal/watch"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Addr  string `help:"Listen address (overrides server.addr)"`
	Watch bool   `short:"w" help:"Watch the content root and re-check on change"`
}

func (s *ServeCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if s.Addr != "" {
		cfg.Server.Addr = s.Addr
	}
	logger := g.logger().With(slog.String("instance", uuid.NewString()))

	var (
		recorder metrics.Recorder = metrics.NoopRecorder{}
		promH    http.Handler
	)
	if cfg.Monitoring.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		recorder = metrics.NewPrometheusRecorder(reg)
		promH = metrics.HTTPHandler(reg)
	}

	p := newPipeline(cfg, logger, recorder)

	var hist history.Source
	if cfg.History.Enabled {
		repo, err := history.Open(cfg.Content.Root)
		if err != nil {
			logger.Warn("Last-updated information disabled", logfields.Path(cfg.Content.Root), logfields.Error(err))
		} else {
			hist = repo
		}
	}

	srv := httpserver.New(cfg, httpserver.Deps{
		Store:             p.store,
		Builder:           p.builder,
		Searcher:          p.search,
		Renderer:          markdown.NewRenderer(markdown.Options{Unsafe: true}),
		History:           hist,
		Recorder:          recorder,
		PrometheusHandler: promH,
		Logger:            logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		return err
	}
	logger.Info("Serving docs", logfields.Path(cfg.Content.Root))

	if s.Watch {
		w := watch.New(cfg.Content.Root, func(_ context.Context, changed []string) {
			recheck(logger, p, changed)
		}, watch.WithLogger(logger), watch.WithRecorder(recorder))
		go func() {
			if err := w.Run(ctx); err != nil {
				logger.Error("Content watcher stopped", logfields.Error(err))
			}
		}()
	}

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

// recheck lints the tree after a batch of changes and logs the summary.
// Pages are re-read per request, so nothing needs to be reloaded.
func recheck(logger *slog.Logger, p *pipeline, changed []string) {
	logger.Info("Content changed", logfields.Count(len(changed)))
	result, err := lint.NewLinter(p.store, &lint.Config{
		Labels:   p.cfg.SectionLabels(),
		BasePath: p.cfg.Content.BasePath,
	}).Lint()
	if err != nil {
		logger.Warn("Content check failed", logfields.Error(err))
		return
	}
	level := slog.LevelInfo
	if result.HasErrors() {
		level = slog.LevelWarn
	}
	logger.Log(context.Background(), level, "Content checked",
		slog.Int("errors", result.ErrorCount()),
		slog.Int("warnings", result.WarningCount()),
		slog.Int("files", result.FilesTotal))
}
