package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen wraps a tcell screen with mouse reporting enabled.
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewScreen creates a screen for the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{screen: s}, nil
}

// NewScreenFrom wraps an existing tcell screen, such as a simulation screen.
func NewScreenFrom(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Init initializes the terminal and enables mouse and paste reporting.
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnableMouse()
	s.screen.EnablePaste()
	s.screen.HideCursor()
	return nil
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Fini()
}

// Raw returns the wrapped tcell screen.
func (s *Screen) Raw() tcell.Screen {
	return s.screen
}

// Size returns the terminal size in cells.
func (s *Screen) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.screen.Size()
}

// PollEvent blocks until the next terminal event. It returns nil once the
// screen is finalized.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Interrupt wakes PollEvent with an *tcell.EventInterrupt carrying data.
// It is safe to call from any goroutine.
func (s *Screen) Interrupt(data any) error {
	return s.screen.PostEvent(tcell.NewEventInterrupt(data))
}

// Sync redraws the whole terminal, e.g. after a resize.
func (s *Screen) Sync() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Sync()
}

// Beep rings the terminal bell.
func (s *Screen) Beep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.screen.Beep() // best-effort; terminal may not support beep
}
