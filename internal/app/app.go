package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rook-computer/pascalviz/internal/app/screens"
	"github.com/rook-computer/pascalviz/internal/config"
	"github.com/rook-computer/pascalviz/internal/history"
	"github.com/rook-computer/pascalviz/internal/render"
	"github.com/rook-computer/pascalviz/internal/state"
	"github.com/rook-computer/pascalviz/internal/system"
	"github.com/rook-computer/pascalviz/internal/web"
)

// HistoryRecorder is the part of history.Store the app writes to.
type HistoryRecorder interface {
	Record(run history.Run) (int64, error)
}

type App struct {
	Config  *config.Config
	Store   *state.Store
	Render  render.Renderer
	Web     web.Server
	History HistoryRecorder
	Logger  Logger

	// Console switches the Linux console to graphics mode and exits on
	// F4, Escape or Q while the drawing is shown.
	Console bool

	currentScreen render.Screen

	exitOnce atomic.Bool
	exitCh   chan error
}

// New wires an app; a nil webServer means no HTTP API runs alongside.
func New(cfg *config.Config, store *state.Store, renderer render.Renderer, webServer web.Server) *App {
	if webServer == nil {
		webServer = &web.NoopServer{}
	}
	return &App{Config: cfg, Store: store, Render: renderer, Web: webServer, Logger: NoopLogger{}, exitCh: make(chan error, 1)}
}

// Exit requests the app to stop showing the drawing.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Run renders the configured triangle once and then hands over to the
// renderer's display loop until it finishes, ctx ends or Exit is called.
func (app *App) Run(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Store == nil {
		app.Store = state.NewStore()
	}
	if app.Config == nil {
		return errors.New("no config")
	}
	if err := app.Config.Validate(); err != nil {
		return err
	}
	if app.Render == nil {
		return errors.New("no renderer configured")
	}

	if app.Web == nil {
		app.Web = &web.NoopServer{}
	}

	switch r := app.Render.(type) {
	case *render.FBRenderer:
		r.Logger = app.Logger
	case *render.FileRenderer:
		r.Logger = app.Logger
	case *render.DiscardRenderer:
		r.Logger = app.Logger
	}
	if srv, ok := app.Web.(*web.HTTPServer); ok && srv.Logger == nil {
		srv.Logger = app.Logger
	}
	if err := app.Render.Start(ctx); err != nil {
		app.Store.SetPhase(state.ERROR)
		app.Logger.Errorf("app", "renderer start error: %v", err)
		return err
	}
	defer app.Render.Stop()

	if err := app.Web.Start(ctx); err != nil {
		app.Store.SetPhase(state.ERROR)
		app.Logger.Errorf("web", "server start error: %v", err)
		return err
	}
	defer func() {
		if err := app.Web.Stop(); err != nil {
			app.Logger.Errorf("web", "server stop error: %v", err)
		}
	}()

	if app.Console {
		restore := system.AcquireConsole(app.Logger)
		defer restore()
		system.WatchExitKeys(ctx, app.Logger, func() { app.Exit(nil) })
	}

	screen, err := screens.NewTriangleScreen(app.Config)
	if err != nil {
		return err
	}
	if err := app.setScreen(ctx, screen); err != nil {
		return err
	}

	if err := app.renderOnce(screen); err != nil {
		return err
	}

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		app.Render.RunLoop(loopCtx, app.Store)
	}()

	select {
	case <-done:
		return ctx.Err()
	case <-ctx.Done():
		err = ctx.Err()
	case err = <-app.exitCh:
	}
	cancel()
	<-done
	return err
}

func (app *App) renderOnce(screen *screens.TriangleScreen) error {
	cfg := app.Config
	app.Store.BeginRender(string(cfg.Mode), cfg.Rows, cfg.CanvasSize, cfg.Output)
	app.Logger.Infof("app", "rendering %d rows (%s) on %dpx, step %.0f", cfg.Rows, cfg.Mode, cfg.CanvasSize, cfg.Step())

	err := app.Render.Redraw(app.Store.Snapshot())
	app.Store.FinishRender(screen.Rendered(), err)
	snap := app.Store.Snapshot()
	app.record(snap.Render)
	if err != nil {
		app.Logger.Errorf("app", "render failed: %v", err)
		return fmt.Errorf("render: %w", err)
	}
	app.Logger.Infof("app", "rendered %d rows in %s", snap.Render.RowsRendered, snap.Render.Duration().Round(time.Millisecond))
	return nil
}

func (app *App) record(info state.RenderInfo) {
	if app.History == nil {
		return
	}
	_, err := app.History.Record(history.Run{
		Mode:       info.Mode,
		Rows:       info.Rows,
		CanvasSize: info.CanvasSize,
		Output:     info.Output,
		Duration:   info.Duration(),
		Err:        info.Err,
		CreatedAt:  info.Started,
	})
	if err != nil {
		app.Logger.Errorf("history", "%v", err)
	}
}

func (app *App) setScreen(ctx context.Context, screen render.Screen) error {
	if app.currentScreen != nil {
		_ = app.currentScreen.Stop()
	}
	app.currentScreen = screen
	app.Render.SetScreen(screen)
	return screen.Start(ctx)
}
