package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/akita-homepage/internal/application/settings"
	"github.com/tesso57/akita-homepage/internal/application/usecase"
	"github.com/tesso57/akita-homepage/internal/domain/homepage"
	"github.com/tesso57/akita-homepage/internal/infrastructure/config"
	"github.com/tesso57/akita-homepage/internal/infrastructure/content"
	"github.com/tesso57/akita-homepage/internal/infrastructure/feed"
	"github.com/tesso57/akita-homepage/internal/presentation/tui"
	"github.com/tesso57/akita-homepage/internal/presentation/web"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const shutdownTimeout = 5 * time.Second

// App carries what every command needs.
type App struct {
	Settings settings.Settings
	Logger   *zap.Logger
	Content  *content.Repository
}

func newApp(configPath string, toFile bool) (*App, error) {
	store, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var outputs []string
	if toFile {
		// The preview owns the terminal, so logs go next to the settings file.
		outputs = []string{filepath.Join(filepath.Dir(store.Path()), "preview.log")}
	}
	logger, err := newLogger(store.Settings.Log, outputs...)
	if err != nil {
		return nil, err
	}

	return &App{
		Settings: store.Settings,
		Logger:   logger,
		Content:  content.NewRepository(store.Settings.Content.Path),
	}, nil
}

// Close flushes the logger.
func (a *App) Close() {
	_ = a.Logger.Sync()
}

func newLogger(cfg settings.LogConfig, outputs ...string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if len(outputs) > 0 {
		zc.OutputPaths = outputs
		zc.ErrorOutputPaths = outputs
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func (a *App) service() usecase.HomepageService {
	site := homepage.Site{
		Title:     a.Settings.Site.Title,
		Tagline:   a.Settings.Site.Tagline,
		AkitaLink: a.Settings.Site.AkitaLink,
		LogoPath:  a.Settings.Site.LogoPath,
		BaseURL:   a.Settings.Site.BaseURL,
	}
	return usecase.NewHomepageService(
		a.Content,
		feed.NewFetcher(a.Settings.Events.Timeout()),
		site,
		a.Settings.Events.FeedURL,
		a.Settings.Content.Threshold,
	)
}

// BuildCmd renders the static site.
type BuildCmd struct {
	Out string `help:"Output directory (default build.out_dir)." type:"path" placeholder:"DIR"`
}

// Run executes the build.
func (c *BuildCmd) Run(app *App) error {
	out := c.Out
	if out == "" {
		out = app.Settings.Build.OutDir
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := web.Build(ctx, app.service(), out, app.Logger)
	if err != nil {
		return err
	}
	for _, f := range res.Files {
		fmt.Println(filepath.Join(out, f))
	}
	return nil
}

// ServeCmd serves the site until interrupted.
type ServeCmd struct {
	Addr  string `help:"Listen address (default server.addr)." placeholder:"ADDR"`
	Watch bool   `help:"Reload content when the content file changes."`
}

// Run starts the HTTP server.
func (c *ServeCmd) Run(app *App) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler, err := web.NewServer(ctx, app.service(), app.Logger)
	if err != nil {
		return err
	}

	if c.Watch || app.Settings.Server.Watch {
		stopWatch, err := watchContent(ctx, app, handler)
		if err != nil {
			return err
		}
		defer stopWatch()
	}

	addr := c.Addr
	if addr == "" {
		addr = app.Settings.Server.Addr
	}
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  app.Settings.Server.ReadTimeout(),
		WriteTimeout: app.Settings.Server.WriteTimeout(),
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.Logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.Logger.Warn("graceful shutdown failed", zap.Error(err))
		return err
	}
	app.Logger.Info("server stopped")
	return nil
}

func watchContent(ctx context.Context, app *App, handler *web.Server) (func(), error) {
	path := app.Content.Path()
	if path == "" {
		app.Logger.Warn("--watch ignored: content is embedded")
		return func() {}, nil
	}
	w, err := content.NewWatcher(path, app.Logger, func() {
		_ = handler.Reload(ctx)
	})
	if err != nil {
		return nil, err
	}
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return w.Stop, nil
}

// PreviewCmd opens the terminal preview.
type PreviewCmd struct{}

// Run starts the TUI.
func (c *PreviewCmd) Run(app *App) error {
	svc := app.service()
	ctx, cancel := context.WithTimeout(context.Background(), app.Settings.Events.Timeout()+time.Second)
	defer cancel()

	loaded, report, err := svc.Load(ctx)
	if err != nil {
		return err
	}
	if report.EventsErr != nil {
		app.Logger.Warn("upcoming events unavailable", zap.Error(report.EventsErr))
	}
	page, err := svc.Mount(loaded)
	if err != nil {
		return err
	}

	model := tui.NewModel(app.Settings, page)
	defer model.Close()

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
