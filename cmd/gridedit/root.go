package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/gridedit/internal/app"
	"github.com/dshills/gridedit/internal/config"
	"github.com/dshills/gridedit/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gridedit [layout]",
	Short: "gridedit is a terminal editor for seating grid layouts",
	Long: `gridedit edits grid layouts (seats, aisles, walls, doors) stored as YAML.

Click a cell to select it, right-click to add it to the selection, or drag
to select a rectangle. Edit attributes in the side panel; Tab moves between
inputs, Enter commits, Escape cancels. Ctrl-Z and Ctrl-Y undo and redo,
Ctrl-S saves and Ctrl-Q quits.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEditor,
}

func init() {
	addFlags(rootCmd)
}

func addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("config", "c", config.DefaultPath(), "Path to configuration file")
	flags.StringP("layout", "l", "", "Layout file to open")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("log-file", "", "Write logs to this file")
}

// loadConfig resolves settings from the config file, the environment and
// the command line, in increasing priority.
func loadConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("layout") {
		cfg.Layout.Path, _ = cmd.Flags().GetString("layout")
	}
	if len(args) == 1 {
		cfg.Layout.Path = args[0]
	}
	return cfg, cfg.Validate()
}

// openLog returns the log destination. The terminal is owned by the editor,
// so without a log file nothing is written.
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	logPath, _ := cmd.Flags().GetString("log-file")
	out, closeLog, err := openLog(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	logger := logging.New(logging.Config{
		Level:  cfg.Level(),
		Output: out,
		Prefix: "gridedit",
	})
	logger.Info("gridedit %s (%s) starting", version, commit)

	application, err := app.New(app.Options{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		<-signals
		application.Quit()
	}()

	return application.Run()
}
