package app

import (
	"errors"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dshills/gridedit/internal/collision"
	"github.com/dshills/gridedit/internal/config"
	"github.com/dshills/gridedit/internal/editor"
	"github.com/dshills/gridedit/internal/grid"
	"github.com/dshills/gridedit/internal/history"
	"github.com/dshills/gridedit/internal/layout"
	"github.com/dshills/gridedit/internal/logging"
	"github.com/dshills/gridedit/internal/terminal"
	"github.com/gdamore/tcell/v2"
)

// Size of the grid created when no layout file is given.
const (
	DefaultCols = 12
	DefaultRows = 8
)

// Application is the central coordinator for all gridedit components.
// Every editor mutation happens on the goroutine running Run; timers and
// the file watcher post interrupts to the screen instead of touching
// state directly.
type Application struct {
	cfg    config.Config
	logger *logging.Logger

	// Front end
	screen   *terminal.Screen
	pointer  *terminal.PointerTranslator
	cells    *collision.Dispatcher[int]
	panel    *collision.Dispatcher[string]
	renderer *terminal.Renderer

	// Editing
	editor     *editor.Editor
	layoutPath string
	layoutName string
	watcher    *layout.Watcher

	// saved marks the history state last loaded or saved.
	saved history.Checkpoint

	// activateErr is the result of the last panel activation.
	activateErr error

	// State
	running atomic.Bool
	done    chan struct{}
}

// Options configures the application.
type Options struct {
	// Config holds the resolved settings.
	Config config.Config

	// Logger receives application logs. Defaults to logging.Null.
	Logger *logging.Logger

	// Screen overrides the terminal, e.g. with a simulation screen.
	Screen tcell.Screen
}

// tickEvent and friends are delivered through tcell interrupts.
type (
	tickEvent   struct{}
	quitEvent   struct{}
	reloadEvent struct{ path string }
	watchError  struct{ err error }
)

// New creates an application and loads the configured layout.
func New(opts Options) (*Application, error) {
	app := &Application{
		cfg:    opts.Config,
		logger: opts.Logger,
	}
	if app.logger == nil {
		app.logger = logging.Null
	}
	app.logger = app.logger.WithComponent("app")

	if err := app.cfg.Validate(); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	if opts.Screen != nil {
		app.screen = terminal.NewScreenFrom(opts.Screen)
	} else {
		s, err := terminal.NewScreen()
		if err != nil {
			return nil, &InitError{Component: "screen", Err: err}
		}
		app.screen = s
	}

	g, err := grid.New(DefaultCols, DefaultRows)
	if err != nil {
		return nil, &InitError{Component: "grid", Err: err}
	}
	h := history.New(g,
		history.WithMaxEntries(app.cfg.History.MaxEntries),
		history.WithLogger(opts.loggerOrNull()),
	)
	app.editor = editor.New(h, editor.WithLogger(opts.loggerOrNull()))
	app.layoutName = "untitled"
	app.saved = h.CreateCheckpoint()

	app.pointer = terminal.NewPointerTranslator()
	app.cells = collision.NewDispatcher[int]()
	app.panel = collision.NewDispatcher[string]()
	app.cells.Attach(app.pointer)
	app.panel.Attach(app.pointer)
	app.renderer = terminal.NewRenderer(app.screen.Raw(), app.cells, app.panel,
		app.cfg.View.CellWidth, app.cfg.View.PanelWidth)
	app.subscribe()

	if path := app.cfg.Layout.Path; path != "" {
		if err := app.LoadLayout(path); err != nil {
			return nil, &InitError{Component: "layout", Err: err}
		}
	}
	app.renderer.SetTitle(app.layoutName)

	return app, nil
}

func (o Options) loggerOrNull() *logging.Logger {
	if o.Logger == nil {
		return logging.Null
	}
	return o.Logger
}

// Editor returns the editor.
func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// Modified returns true if the grid differs from the last load or save.
func (app *Application) Modified() bool {
	return !app.editor.History().AtCheckpoint(app.saved)
}

// LayoutPath returns the path of the open layout file, empty if none.
func (app *Application) LayoutPath() string {
	return app.layoutPath
}

// IsRunning returns true while Run is executing.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Run initializes the terminal and processes events until quit.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	defer app.screen.Fini()

	if app.cfg.Layout.Watch && app.layoutPath != "" {
		if err := app.startWatcher(); err != nil {
			app.logger.Warn("watch %s: %v", app.layoutPath, err)
		}
	}
	app.done = make(chan struct{})
	go app.blink(app.done, app.cfg.BlinkInterval())
	defer app.stop()

	app.logger.Info("started")
	app.draw()

	for {
		ev := app.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := app.handleEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				app.logger.Info("quit")
				return nil
			}
			return err
		}
		app.draw()
	}
}

// Quit asks a running application to exit. It is safe to call from any
// goroutine, e.g. a signal handler.
func (app *Application) Quit() {
	if app.running.Load() {
		_ = app.screen.Interrupt(quitEvent{})
	}
}

// stop ends the background goroutines.
func (app *Application) stop() {
	close(app.done)
	if app.watcher != nil {
		if err := app.watcher.Close(); err != nil {
			app.logger.Warn("closing watcher: %v", err)
		}
		app.watcher = nil
	}
}

// blink posts a caret tick every interval until stop.
func (app *Application) blink(done <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			_ = app.screen.Interrupt(tickEvent{}) // best-effort; queue may be full
		}
	}
}

func (app *Application) startWatcher() error {
	w, err := layout.NewWatcher(app.layoutPath, 0)
	if err != nil {
		return err
	}
	app.watcher = w

	go func() {
		for {
			select {
			case path, ok := <-w.Changes():
				if !ok {
					return
				}
				_ = app.screen.Interrupt(reloadEvent{path: path})
			case err, ok := <-w.Errors():
				if !ok {
					return
				}
				_ = app.screen.Interrupt(watchError{err: err})
			}
		}
	}()
	return nil
}

// draw renders one frame.
func (app *Application) draw() {
	app.renderer.SetModified(app.Modified())
	app.renderer.Draw(app.editor)
}

// setStatus shows a message, or the error when err is non-nil.
func (app *Application) setStatus(msg string, err error) {
	if err != nil {
		app.renderer.SetStatus(err.Error(), true)
		return
	}
	app.renderer.SetStatus(msg, false)
}

func layoutTitle(name, path string) string {
	if name != "" {
		return name
	}
	if path == "" {
		return "untitled"
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
