package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/lyrx/internal/display"
	"github.com/desertthunder/lyrx/internal/lyrics"
	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/player"
	"github.com/desertthunder/lyrx/internal/shared"
)

// LyricsSource fetches and extracts lyrics for a track.
type LyricsSource interface {
	Lyrics(ctx context.Context, artist, title string) ([]string, error)
}

// PlayRecorder stores play history (implemented by repositories.PlayRepository).
type PlayRecorder interface {
	Create(play *models.Play) error
}

// TrackProducer turns player events into track deltas.
type TrackProducer struct {
	player  player.Player
	lyrics  LyricsSource
	history PlayRecorder
	logger  *log.Logger
	now     func() time.Time
}

// TrackProducerOpts configures a [TrackProducer]. History is optional.
type TrackProducerOpts struct {
	Player  player.Player
	Lyrics  LyricsSource
	History PlayRecorder
	Logger  *log.Logger
}

// NewTrackProducer creates a new [TrackProducer]
func NewTrackProducer(opts TrackProducerOpts) *TrackProducer {
	logger := opts.Logger
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &TrackProducer{
		player:  opts.Player,
		lyrics:  opts.Lyrics,
		history: opts.History,
		logger:  shared.WithLogger(logger, "producer", "track"),
		now:     time.Now,
	}
}

// Run subscribes to the player, sends the current track, then sends one delta per track change.
//
// It returns the transport error that ended the event stream, or ctx.Err().
func (p *TrackProducer) Run(ctx context.Context, out chan<- display.StateDelta) error {
	events, err := p.player.Events(ctx)
	if err != nil {
		p.logger.Error("failed to subscribe to player", "player", p.player.Name(), "error", err)
		return fmt.Errorf("%w: %w", shared.ErrTransport, err)
	}

	current, err := p.player.Metadata(ctx)
	if err != nil {
		p.logger.Warn("failed to read current track", "error", err)
		current = player.Metadata{}
	}
	if err := p.send(ctx, out, p.trackDelta(ctx, current)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return ctx.Err()
			}

			switch ev.Kind {
			case player.EventTrackChanged:
				p.logger.Info("track changed", "artist", ev.Metadata.Artist(), "title", ev.Metadata.Title)
				if err := p.send(ctx, out, p.trackDelta(ctx, ev.Metadata)); err != nil {
					return err
				}
			case player.EventTransportError:
				p.logger.Error("player event stream failed", "player", p.player.Name(), "error", ev.Err)
				return fmt.Errorf("%w: %w", shared.ErrTransport, ev.Err)
			default:
				p.logger.Debug("ignoring player event", "kind", ev.Kind)
			}
		}
	}
}

func (p *TrackProducer) trackDelta(ctx context.Context, m player.Metadata) display.StateDelta {
	artist, title := m.Artist(), m.Title

	lines, err := p.lyrics.Lyrics(ctx, artist, title)
	if err != nil {
		p.logger.Debug("no lyrics", "artist", artist, "title", title, "error", err)
	}
	p.record(artist, title, lines, err)

	return display.TrackDelta(artist, title, lyrics.OrNotFound(lines, err))
}

func (p *TrackProducer) record(artist, title string, lines []string, err error) {
	if p.history == nil {
		return
	}

	found := err == nil && len(lines) > 0
	count := 0
	if found {
		count = len(lines)
	}

	play := models.NewPlay(artist, title, found, count, p.now())
	if err := p.history.Create(play); err != nil {
		p.logger.Warn("failed to record play", "artist", artist, "title", title, "error", err)
	}
}

func (p *TrackProducer) send(ctx context.Context, out chan<- display.StateDelta, d display.StateDelta) error {
	select {
	case out <- d:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
