package terminal

import "github.com/gdamore/tcell/v2"

// Attr is a set of text attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrUnderline
	AttrNone Attr = 0
)

// Style converts a to a tcell style on the default colors.
func (a Attr) Style() tcell.Style {
	style := tcell.StyleDefault
	if a&AttrBold != 0 {
		style = style.Bold(true)
	}
	if a&AttrUnderline != 0 {
		style = style.Underline(true)
	}
	return style
}
