package terminal

import (
	"fmt"
	"time"

	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const eventBuffer = 64

// Screen is a full-screen terminal session.
//
// Drawing methods must only be called from one goroutine. PollEvent may be
// called from another.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
}

// New opens the user's terminal.
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrTerminal, err)
	}
	return Open(s)
}

// Open initializes s, which switches to the alternate screen, then enables
// mouse capture and hides the cursor.
func Open(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrTerminal, err)
	}
	s.EnableMouse()
	s.HideCursor()
	s.Clear()

	scr := &Screen{
		screen: s,
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}),
	}
	go scr.pump()
	return scr, nil
}

func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// Close leaves the alternate screen and restores the terminal.
func (s *Screen) Close() {
	select {
	case <-s.quit:
		return
	default:
		close(s.quit)
	}
	s.screen.Fini()
}

// PollEvent waits up to timeout for the next input event and returns nil if none arrived.
func (s *Screen) PollEvent(timeout time.Duration) tcell.Event {
	select {
	case <-s.quit:
		return nil
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-s.events:
		return ev
	case <-timer.C:
		return nil
	case <-s.quit:
		return nil
	}
}

// Size returns the current number of columns and rows.
func (s *Screen) Size() (int, int, error) {
	cols, rows := s.screen.Size()
	if cols < 0 || rows < 0 {
		return 0, 0, fmt.Errorf("%w: invalid size %dx%d", shared.ErrTerminal, cols, rows)
	}
	return cols, rows, nil
}

// Clear blanks the whole screen.
func (s *Screen) Clear() error {
	s.screen.Clear()
	return nil
}

// DrawText writes text starting at (col, row). Text past the right edge is clipped.
func (s *Screen) DrawText(col, row int, text string, attr Attr) error {
	style := attr.Style()
	cols, rows := s.screen.Size()
	if row < 0 || row >= rows {
		return nil
	}

	x, lastX := col, -1
	var last rune
	var comb []rune
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			if lastX >= 0 {
				comb = append(comb, r)
				s.screen.SetContent(lastX, row, last, comb, style)
			}
			continue
		}
		if x+w > cols {
			break
		}
		s.screen.SetContent(x, row, r, nil, style)
		last, lastX, comb = r, x, nil
		x += w
	}
	return nil
}

// Show flushes pending drawing to the terminal.
func (s *Screen) Show() error {
	s.screen.Show()
	return nil
}
