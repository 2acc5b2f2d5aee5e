package display

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/lyrx/internal/shared"
)

// Aggregator folds deltas into the [State] and redraws after each one.
type Aggregator struct {
	surface Surface
	logger  *log.Logger
	state   State
}

// NewAggregator creates an Aggregator drawing on surface, starting from an empty state.
func NewAggregator(surface Surface, logger *log.Logger) *Aggregator {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Aggregator{surface: surface, logger: logger}
}

// State returns a copy of the current state.
func (a *Aggregator) State() State {
	return a.state
}

// Run receives deltas until one asks to terminate, the channel closes or ctx
// is done. Any terminal failure ends the loop with an error wrapping
// [shared.ErrTerminal].
func (a *Aggregator) Run(ctx context.Context, deltas <-chan StateDelta) error {
	for {
		var d StateDelta
		var ok bool

		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok = <-deltas:
		}

		if !ok {
			a.logger.Debug("delta channel closed")
			return nil
		}

		done, err := a.Handle(d)
		if err != nil {
			return err
		}
		if done {
			a.logger.Debug("terminate requested")
			return nil
		}
	}
}

// Handle applies one delta and redraws. It reports whether the delta asked to terminate.
func (a *Aggregator) Handle(d StateDelta) (bool, error) {
	if d.Terminate {
		return true, nil
	}

	_, rows, err := a.surface.Size()
	if err != nil {
		return false, fmt.Errorf("%w: failed to query size: %w", shared.ErrTerminal, err)
	}

	a.state.Apply(d, rows)

	if err := Render(a.surface, a.state, rows); err != nil {
		return false, fmt.Errorf("%w: failed to draw frame: %w", shared.ErrTerminal, err)
	}
	return false, nil
}
