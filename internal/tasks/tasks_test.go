package tasks

import (
	"context"
	"errors"
	"io"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/desertthunder/lyrx/internal/display"
	"github.com/desertthunder/lyrx/internal/lyrics"
	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/player"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/gdamore/tcell/v2"
)

type fakePlayer struct {
	current  player.Metadata
	metaErr  error
	events   chan player.Event
	subErr   error
	subCalls int
}

func (f *fakePlayer) Name() string { return "org.mpris.MediaPlayer2.cmus" }

func (f *fakePlayer) Metadata(context.Context) (player.Metadata, error) {
	return f.current, f.metaErr
}

func (f *fakePlayer) Events(context.Context) (<-chan player.Event, error) {
	f.subCalls++
	return f.events, f.subErr
}

type fakeLyrics struct {
	byTitle map[string][]string
	calls   []string
}

func (f *fakeLyrics) Lyrics(_ context.Context, artist, title string) ([]string, error) {
	f.calls = append(f.calls, artist+"/"+title)
	lines, ok := f.byTitle[title]
	if !ok {
		return nil, shared.ErrLyricsNotFound
	}
	return lines, nil
}

type fakeRecorder struct {
	mu    sync.Mutex
	plays []*models.Play
	err   error
}

func (f *fakeRecorder) Create(p *models.Play) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.plays = append(f.plays, p)
	return nil
}

func quietProducer(opts TrackProducerOpts) *TrackProducer {
	opts.Logger = shared.NewLogger(io.Discard)
	p := NewTrackProducer(opts)
	p.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	return p
}

func TestTrackProducer(t *testing.T) {
	t.Run("sends current track first", func(t *testing.T) {
		events := make(chan player.Event)
		close(events)
		pl := &fakePlayer{
			current: player.Metadata{Artists: []string{"Björk", "Thom Yorke"}, Title: "Joga"},
			events:  events,
		}
		src := &fakeLyrics{byTitle: map[string][]string{"Joga": {"All these accidents"}}}
		out := make(chan display.StateDelta, 4)

		if err := quietProducer(TrackProducerOpts{Player: pl, Lyrics: src}).Run(context.Background(), out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out) != 1 {
			t.Fatalf("got %d deltas, want 1", len(out))
		}
		d := <-out
		if *d.Artist != "Björk" || *d.Title != "Joga" {
			t.Errorf("got %q - %q, want first artist", *d.Artist, *d.Title)
		}
		if d.Scroll != display.ScrollReset {
			t.Errorf("got scroll %v, want reset", d.Scroll)
		}
		if !slices.Equal(d.Lyrics, []string{"All these accidents"}) {
			t.Errorf("got lyrics %q", d.Lyrics)
		}
	})

	t.Run("missing metadata becomes empty strings", func(t *testing.T) {
		events := make(chan player.Event)
		close(events)
		pl := &fakePlayer{metaErr: errors.New("no such property"), events: events}
		src := &fakeLyrics{}
		out := make(chan display.StateDelta, 1)

		_ = quietProducer(TrackProducerOpts{Player: pl, Lyrics: src}).Run(context.Background(), out)

		d := <-out
		if *d.Artist != "" || *d.Title != "" {
			t.Errorf("got %q - %q, want empty", *d.Artist, *d.Title)
		}
		if !slices.Equal(d.Lyrics, []string{lyrics.NotFoundText}) {
			t.Errorf("got lyrics %q, want sentinel", d.Lyrics)
		}
	})

	t.Run("track changes", func(t *testing.T) {
		events := make(chan player.Event, 3)
		events <- player.Event{Kind: player.EventOther}
		events <- player.Event{Kind: player.EventTrackChanged, Metadata: player.Metadata{Artists: []string{"JPEGMAFIA"}, Title: "Baby I'm Bleeding"}}
		events <- player.Event{Kind: player.EventTrackChanged, Metadata: player.Metadata{Title: "Untitled"}}
		close(events)

		pl := &fakePlayer{events: events}
		src := &fakeLyrics{byTitle: map[string][]string{"Baby I'm Bleeding": {"line one", "\n", "line two"}}}
		rec := &fakeRecorder{}
		out := make(chan display.StateDelta, 8)

		if err := quietProducer(TrackProducerOpts{Player: pl, Lyrics: src, History: rec}).Run(context.Background(), out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out) != 3 {
			t.Fatalf("got %d deltas, want 3 (initial plus two changes)", len(out))
		}
		<-out

		first := <-out
		if *first.Artist != "JPEGMAFIA" || len(first.Lyrics) != 3 {
			t.Errorf("got %q with %d lines", *first.Artist, len(first.Lyrics))
		}

		second := <-out
		if *second.Artist != "" || !slices.Equal(second.Lyrics, []string{lyrics.NotFoundText}) {
			t.Errorf("got %q %q, want empty artist and sentinel", *second.Artist, second.Lyrics)
		}

		if len(rec.plays) != 3 {
			t.Fatalf("got %d recorded plays, want 3", len(rec.plays))
		}
		if !rec.plays[1].LyricsFound() || rec.plays[1].LineCount() != 3 {
			t.Errorf("play 1: found=%v lines=%d", rec.plays[1].LyricsFound(), rec.plays[1].LineCount())
		}
		if rec.plays[2].LyricsFound() {
			t.Error("play 2 should record missing lyrics")
		}
	})

	t.Run("transport error stops the producer", func(t *testing.T) {
		cause := errors.New("connection reset")
		events := make(chan player.Event, 2)
		events <- player.Event{Kind: player.EventTransportError, Err: cause}
		events <- player.Event{Kind: player.EventTrackChanged, Metadata: player.Metadata{Title: "never"}}

		pl := &fakePlayer{events: events}
		src := &fakeLyrics{}
		out := make(chan display.StateDelta, 4)

		err := quietProducer(TrackProducerOpts{Player: pl, Lyrics: src}).Run(context.Background(), out)
		if !errors.Is(err, shared.ErrTransport) || !errors.Is(err, cause) {
			t.Errorf("got %v, want transport error wrapping cause", err)
		}
		if len(out) != 1 {
			t.Errorf("got %d deltas, want only the initial one", len(out))
		}
	})

	t.Run("subscription failure", func(t *testing.T) {
		pl := &fakePlayer{subErr: errors.New("bus closed")}
		out := make(chan display.StateDelta, 1)

		err := quietProducer(TrackProducerOpts{Player: pl, Lyrics: &fakeLyrics{}}).Run(context.Background(), out)
		if !errors.Is(err, shared.ErrTransport) {
			t.Errorf("got %v, want ErrTransport", err)
		}
		if len(out) != 0 {
			t.Error("no delta should be sent without a subscription")
		}
	})

	t.Run("recorder failure is not fatal", func(t *testing.T) {
		events := make(chan player.Event)
		close(events)
		pl := &fakePlayer{current: player.Metadata{Title: "Joga"}, events: events}
		rec := &fakeRecorder{err: errors.New("disk full")}
		out := make(chan display.StateDelta, 1)

		if err := quietProducer(TrackProducerOpts{Player: pl, Lyrics: &fakeLyrics{}, History: rec}).Run(context.Background(), out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 {
			t.Error("delta should still be sent")
		}
	})

	t.Run("cancelled while blocked on send", func(t *testing.T) {
		pl := &fakePlayer{events: make(chan player.Event)}
		out := make(chan display.StateDelta)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := quietProducer(TrackProducerOpts{Player: pl, Lyrics: &fakeLyrics{}}).Run(ctx, out)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("got %v, want context.Canceled", err)
		}
	})
}

type fakeSource struct {
	events chan tcell.Event
}

func (f *fakeSource) PollEvent(timeout time.Duration) tcell.Event {
	select {
	case ev := <-f.events:
		return ev
	case <-time.After(timeout):
		return nil
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		event tcell.Event
		want  display.StateDelta
		ok    bool
	}{
		{"ctrl+c key", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), display.TerminateDelta(), true},
		{"ctrl modifier with c", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModCtrl), display.TerminateDelta(), true},
		{"plain c", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), display.StateDelta{}, false},
		{"q is not an exit", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), display.StateDelta{}, false},
		{"wheel down scrolls forward", tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone), display.ScrollDelta(display.ScrollUp), true},
		{"wheel up scrolls back", tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone), display.ScrollDelta(display.ScrollDown), true},
		{"click", tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone), display.StateDelta{}, false},
		{"resize", tcell.NewEventResize(80, 24), display.StateDelta{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.event)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got.Terminate != tt.want.Terminate || got.Scroll != tt.want.Scroll {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInputProducer(t *testing.T) {
	t.Run("forwards classified events in order", func(t *testing.T) {
		src := &fakeSource{events: make(chan tcell.Event, 4)}
		src.events <- tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone)
		src.events <- tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
		src.events <- tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone)
		src.events <- tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

		out := make(chan display.StateDelta, 4)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		done := make(chan error, 1)
		p := NewInputProducer(src, 5*time.Millisecond, shared.NewLogger(io.Discard))
		go func() { done <- p.Run(ctx, out) }()

		want := []display.StateDelta{
			display.ScrollDelta(display.ScrollUp),
			display.ScrollDelta(display.ScrollDown),
			display.TerminateDelta(),
		}
		for i, w := range want {
			select {
			case got := <-out:
				if got.Scroll != w.Scroll || got.Terminate != w.Terminate {
					t.Errorf("delta %d = %+v, want %+v", i, got, w)
				}
			case <-time.After(time.Second):
				t.Fatalf("timed out waiting for delta %d", i)
			}
		}

		select {
		case err := <-done:
			t.Fatalf("producer stopped on its own: %v", err)
		case <-time.After(20 * time.Millisecond):
		}

		cancel()
		select {
		case err := <-done:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("got %v, want context.Canceled", err)
			}
		case <-time.After(time.Second):
			t.Fatal("producer did not stop after cancel")
		}
	})

	t.Run("default interval", func(t *testing.T) {
		p := NewInputProducer(&fakeSource{}, 0, nil)
		if p.interval != DefaultPollInterval {
			t.Errorf("got %v, want %v", p.interval, DefaultPollInterval)
		}
	})
}
