package layout

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hall.yaml")
	if err := os.WriteFile(path, []byte(hall), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte(hall), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case got := <-w.Changes():
		if got != w.Path() {
			t.Errorf("change path = %q, want %q", got, w.Path())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hall.yaml")
	if err := os.WriteFile(path, []byte(hall), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Changes():
		t.Errorf("unexpected change %q", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hall.yaml")
	if err := os.WriteFile(path, []byte(hall), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, 0)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
	if _, ok := <-w.Changes(); ok {
		t.Error("Changes channel still open")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "hall.yaml"), 0)
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
