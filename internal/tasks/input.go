package tasks

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/lyrx/internal/display"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/gdamore/tcell/v2"
)

// DefaultPollInterval bounds how long one input poll waits.
const DefaultPollInterval = 100 * time.Millisecond

// EventSource yields terminal input (implemented by terminal.Screen).
type EventSource interface {
	// PollEvent waits up to timeout and returns nil if nothing arrived.
	PollEvent(timeout time.Duration) tcell.Event
}

// InputProducer turns terminal input into scroll and terminate deltas.
type InputProducer struct {
	source   EventSource
	interval time.Duration
	logger   *log.Logger
}

// NewInputProducer creates a new [InputProducer]. A non-positive interval uses [DefaultPollInterval].
func NewInputProducer(source EventSource, interval time.Duration, logger *log.Logger) *InputProducer {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &InputProducer{
		source:   source,
		interval: interval,
		logger:   shared.WithLogger(logger, "producer", "input"),
	}
}

// Run polls until ctx is done. It keeps polling after sending a terminate delta.
func (p *InputProducer) Run(ctx context.Context, out chan<- display.StateDelta) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev := p.source.PollEvent(p.interval)
		if ev == nil {
			continue
		}

		d, ok := Classify(ev)
		if !ok {
			continue
		}
		if d.Terminate {
			p.logger.Debug("exit requested")
		}

		select {
		case out <- d:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Classify maps one input event to a delta.
//
// Wheel down moves forward through the lyrics and wheel up moves back.
// The second return value is false for events that change nothing.
func Classify(ev tcell.Event) (display.StateDelta, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isExitChord(ev) {
			return display.TerminateDelta(), true
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		switch {
		case buttons&tcell.WheelDown != 0:
			return display.ScrollDelta(display.ScrollUp), true
		case buttons&tcell.WheelUp != 0:
			return display.ScrollDelta(display.ScrollDown), true
		}
	}
	return display.StateDelta{}, false
}

func isExitChord(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 &&
		(ev.Rune() == 'c' || ev.Rune() == 'C')
}
