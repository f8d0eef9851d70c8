package app

import (
	"fmt"

	"github.com/dshills/gridedit/internal/layout"
)

// LoadLayout opens a layout file, replacing the grid and clearing history.
func (app *Application) LoadLayout(path string) error {
	g, def, err := layout.Load(path)
	if err != nil {
		return NewOperationError("load", path, err)
	}

	app.editor.Load(g)
	app.saved = app.editor.History().CreateCheckpoint()
	app.layoutPath = path
	app.layoutName = layoutTitle(def.Name, path)
	app.renderer.SetTitle(app.layoutName)
	app.logger.Info("loaded layout %s", path)
	return nil
}

// Save writes the grid to the open layout file.
func (app *Application) Save() error {
	if app.layoutPath == "" {
		return NewOperationError("save", "", ErrNoLayoutPath)
	}
	if err := layout.Save(app.layoutPath, app.layoutName, app.editor.Grid()); err != nil {
		return NewOperationError("save", app.layoutPath, err)
	}
	app.saved = app.editor.History().CreateCheckpoint()
	app.logger.Info("saved layout %s", app.layoutPath)
	return nil
}

// Revert undoes or redoes back to the last loaded or saved state.
func (app *Application) Revert() error {
	if err := app.editor.Restore(app.saved); err != nil {
		return NewOperationError("revert", app.layoutPath, err)
	}
	return nil
}

// reload re-reads the layout after an external change. A file whose grid
// equals the current one, such as our own save, is ignored so history is
// kept.
func (app *Application) reload(path string) {
	g, def, err := layout.Load(path)
	if err != nil {
		app.logger.Warn("reload %s: %v", path, err)
		app.setStatus("", NewOperationError("reload", path, err))
		return
	}
	if g.Equal(app.editor.Grid().Clone()) {
		app.logger.Debug("reload %s: unchanged", path)
		return
	}

	app.editor.Load(g)
	app.saved = app.editor.History().CreateCheckpoint()
	app.layoutName = layoutTitle(def.Name, path)
	app.renderer.SetTitle(app.layoutName)
	app.setStatus(fmt.Sprintf("reloaded %s", path), nil)
	app.logger.Info("reloaded layout %s", path)
}
