package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "gridedit", Args: cobra.MaximumNArgs(1)}
	addFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	return cmd
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte("log_level = \"warn\"\n[layout]\npath = \"from-file.yaml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GRIDEDIT_LOG_LEVEL", "error")

	cmd := newTestCmd(t, "--config", cfgPath, "--log-level", "debug")
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug from flag", cfg.LogLevel)
	}
	if want := filepath.Join(dir, "from-file.yaml"); cfg.Layout.Path != want {
		t.Errorf("Layout.Path = %q, want %q", cfg.Layout.Path, want)
	}

	cfg, err = loadConfig(cmd, []string{"arg.yaml"})
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Layout.Path != "arg.yaml" {
		t.Errorf("Layout.Path = %q, want arg.yaml", cfg.Layout.Path)
	}
}

func TestLoadConfigRejectsBadLevel(t *testing.T) {
	cmd := newTestCmd(t, "--config", filepath.Join(t.TempDir(), "none.toml"), "--log-level", "loud")
	if _, err := loadConfig(cmd, nil); err == nil {
		t.Error("expected validation error")
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	if !strings.HasPrefix(buf.String(), "gridedit dev") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestOpenLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridedit.log")
	w, closeLog, err := openLog(path)
	if err != nil {
		t.Fatalf("openLog failed: %v", err)
	}
	if _, err := w.Write([]byte("line\n")); err != nil {
		t.Fatal(err)
	}
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil || string(data) != "line\n" {
		t.Errorf("log file = %q, %v", data, err)
	}
}
