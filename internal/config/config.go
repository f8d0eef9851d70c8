package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dshills/gridedit/internal/logging"
	"github.com/pelletier/go-toml/v2"
)

// Config holds every gridedit setting.
type Config struct {
	// LogLevel is the minimum level written to the log.
	LogLevel string `toml:"log_level"`

	History HistoryConfig `toml:"history"`
	View    ViewConfig    `toml:"view"`
	Caret   CaretConfig   `toml:"caret"`
	Layout  LayoutConfig  `toml:"layout"`
}

// HistoryConfig configures the undo history.
type HistoryConfig struct {
	// MaxEntries bounds the number of undo steps kept.
	MaxEntries int `toml:"max_entries"`
}

// ViewConfig configures the terminal view.
type ViewConfig struct {
	// CellWidth is the number of terminal columns per grid cell.
	CellWidth int `toml:"cell_width"`

	// PanelWidth is the width of the attribute panel in columns.
	PanelWidth int `toml:"panel_width"`
}

// CaretConfig configures the draft caret.
type CaretConfig struct {
	// BlinkMS is the blink half-period in milliseconds.
	BlinkMS int `toml:"blink_ms"`
}

// LayoutConfig selects the layout file opened at startup.
type LayoutConfig struct {
	// Path is the layout file. A relative path is resolved against the
	// directory of the config file it appears in.
	Path string `toml:"path"`

	// Watch reloads the layout when the file changes.
	Watch bool `toml:"watch"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		History:  HistoryConfig{MaxEntries: 1000},
		View:     ViewConfig{CellWidth: 3, PanelWidth: 32},
		Caret:    CaretConfig{BlinkMS: 500},
		Layout:   LayoutConfig{Watch: true},
	}
}

// BlinkInterval returns the caret blink half-period.
func (c Config) BlinkInterval() time.Duration {
	return time.Duration(c.Caret.BlinkMS) * time.Millisecond
}

// Level returns the parsed log level.
func (c Config) Level() logging.Level {
	return logging.ParseLevel(c.LogLevel)
}

// Validate checks every setting and reports all problems found.
func (c Config) Validate() error {
	var errs []error
	positive := func(key string, v int) {
		if v <= 0 {
			errs = append(errs, &ValidationError{Key: key, Value: v, Message: "must be positive"})
		}
	}

	if _, ok := logging.LookupLevel(c.LogLevel); !ok {
		errs = append(errs, &ValidationError{
			Key:     "log_level",
			Value:   c.LogLevel,
			Message: "must be one of debug, info, warn, error",
		})
	}
	positive("history.max_entries", c.History.MaxEntries)
	positive("view.cell_width", c.View.CellWidth)
	positive("view.panel_width", c.View.PanelWidth)
	positive("caret.blink_ms", c.Caret.BlinkMS)

	return errors.Join(errs...)
}

// FileSystem is an abstraction for reading config files.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultPath returns the per-user config file location, or "" if the
// user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gridedit", "config.toml")
}

// Load reads the config file at path over the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	return LoadFS(OSFS{}, path)
}

// LoadFS reads the config file at path from fsys over the defaults.
func LoadFS(fsys FileSystem, path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg, err := Parse(path, data)
	if err != nil {
		return Config{}, err
	}
	if cfg.Layout.Path != "" && !filepath.IsAbs(cfg.Layout.Path) {
		cfg.Layout.Path = filepath.Join(filepath.Dir(path), cfg.Layout.Path)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults. source names the data in errors.
func Parse(source string, data []byte) (Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, parseError(source, err)
	}
	return cfg, nil
}

// parseError converts a go-toml error into a ParseError with position.
func parseError(source string, err error) error {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}

	var strict *toml.StrictMissingError
	var decode *toml.DecodeError
	switch {
	case errors.As(err, &strict) && len(strict.Errors) > 0:
		first := strict.Errors[0]
		keys := make([]string, len(strict.Errors))
		for i, e := range strict.Errors {
			keys[i] = strings.Join(e.Key(), ".")
		}
		pe.Line, pe.Column = first.Position()
		pe.Message = "unknown key " + strings.Join(keys, ", ")
		pe.Err = fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	case errors.As(err, &decode):
		pe.Line, pe.Column = decode.Position()
	}
	return pe
}
