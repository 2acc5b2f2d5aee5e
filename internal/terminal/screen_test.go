package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, cols, rows int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	scr, err := Open(sim)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	sim.SetSize(cols, rows)
	t.Cleanup(scr.Close)
	return scr, sim
}

func rowText(sim tcell.SimulationScreen, row, cols int) string {
	var out []rune
	for x := 0; x < cols; x++ {
		r, _, _, _ := sim.GetContent(x, row)
		out = append(out, r)
	}
	return string(out)
}

func TestAttrStyle(t *testing.T) {
	tc := []struct {
		name      string
		attr      Attr
		bold      bool
		underline bool
	}{
		{name: "none", attr: AttrNone},
		{name: "bold", attr: AttrBold, bold: true},
		{name: "header", attr: AttrBold | AttrUnderline, bold: true, underline: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			_, _, mask := tt.attr.Style().Decompose()
			if got := mask&tcell.AttrBold != 0; got != tt.bold {
				t.Errorf("bold = %v, want %v", got, tt.bold)
			}
			if got := mask&tcell.AttrUnderline != 0; got != tt.underline {
				t.Errorf("underline = %v, want %v", got, tt.underline)
			}
		})
	}
}

func TestScreen(t *testing.T) {
	t.Run("Size", func(t *testing.T) {
		scr, _ := newSimScreen(t, 40, 12)
		cols, rows, err := scr.Size()
		if err != nil {
			t.Fatalf("Size() error = %v", err)
		}
		if cols != 40 || rows != 12 {
			t.Errorf("Size() = %dx%d, want 40x12", cols, rows)
		}
	})

	t.Run("DrawText", func(t *testing.T) {
		scr, sim := newSimScreen(t, 10, 3)

		if err := scr.DrawText(0, 0, "Artist - Title", AttrBold|AttrUnderline); err != nil {
			t.Fatalf("DrawText() error = %v", err)
		}
		if got := rowText(sim, 0, 10); got != "Artist - T" {
			t.Errorf("row 0 = %q, want clipped header", got)
		}

		_, _, style, _ := sim.GetContent(0, 0)
		if _, _, mask := style.Decompose(); mask&tcell.AttrBold == 0 || mask&tcell.AttrUnderline == 0 {
			t.Error("expected bold underlined header")
		}

		if err := scr.DrawText(2, 1, "hi", AttrNone); err != nil {
			t.Fatalf("DrawText() error = %v", err)
		}
		if got := rowText(sim, 1, 4); got != "  hi" {
			t.Errorf("row 1 = %q, want %q", got, "  hi")
		}

		if err := scr.DrawText(0, 5, "off screen", AttrNone); err != nil {
			t.Errorf("expected rows past the bottom to be ignored, got %v", err)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		scr, sim := newSimScreen(t, 5, 2)
		scr.DrawText(0, 0, "abc", AttrNone)
		if err := scr.Clear(); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}
		if got := rowText(sim, 0, 3); got != "   " {
			t.Errorf("row 0 = %q after clear", got)
		}
		if err := scr.Show(); err != nil {
			t.Errorf("Show() error = %v", err)
		}
	})

	t.Run("PollEvent", func(t *testing.T) {
		scr, sim := newSimScreen(t, 5, 2)

		if err := sim.PostEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)); err != nil {
			t.Fatalf("PostEvent() error = %v", err)
		}

		deadline := time.Now().Add(time.Second)
		for time.Now().Before(deadline) {
			ev := scr.PollEvent(50 * time.Millisecond)
			if key, ok := ev.(*tcell.EventKey); ok {
				if key.Key() != tcell.KeyCtrlC {
					t.Errorf("expected Ctrl+C, got %v", key.Key())
				}
				return
			}
		}
		t.Fatal("expected posted key event")
	})

	t.Run("PollEvent times out", func(t *testing.T) {
		scr, _ := newSimScreen(t, 5, 2)
		for {
			ev := scr.PollEvent(20 * time.Millisecond)
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); !ok {
				t.Fatalf("unexpected event %T", ev)
			}
		}
	})

	t.Run("Close is idempotent", func(t *testing.T) {
		sim := tcell.NewSimulationScreen("UTF-8")
		scr, err := Open(sim)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		scr.Close()
		scr.Close()
		if ev := scr.PollEvent(time.Second); ev != nil {
			t.Errorf("expected nil event after close, got %T", ev)
		}
	})
}
