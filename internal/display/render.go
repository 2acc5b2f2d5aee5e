package display

import (
	"strings"

	"github.com/desertthunder/lyrx/internal/terminal"
)

// Surface is the part of the terminal the aggregator draws on.
type Surface interface {
	Size() (cols, rows int, err error)
	Clear() error
	DrawText(col, row int, text string, attr terminal.Attr) error
	Show() error
}

// Render draws a full frame of s onto a surface that is height rows tall.
func Render(surface Surface, s State, height int) error {
	if err := surface.Clear(); err != nil {
		return err
	}

	if err := surface.DrawText(0, 0, s.Header(), terminal.AttrBold|terminal.AttrUnderline); err != nil {
		return err
	}

	visible := VisibleRows(height)
	for i := 0; i < visible && s.Offset+i < len(s.Lyrics); i++ {
		line := strings.TrimRight(s.Lyrics[s.Offset+i], "\n")
		if line == "" {
			continue
		}
		if err := surface.DrawText(0, ReservedRows+i, line, terminal.AttrNone); err != nil {
			return err
		}
	}

	return surface.Show()
}
