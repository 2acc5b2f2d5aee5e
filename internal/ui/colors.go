package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var styles = NewPalette("#7D56F4", "#04B575", "#FF0000", "#FFA500", "#626262")

// Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
}

func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title: NewBold(t).Underline(true),
		ok:    NewBold(s),
		err:   NewBold(e),
		warn:  NewStyle(w),
		help:  NewEm(h),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

func (p *Palette) Title(s string) string { return p.title.Render(s) }
func (p *Palette) OK(s string) string    { return p.ok.Render(s) }
func (p *Palette) Err(s string) string   { return p.err.Render(s) }
func (p *Palette) Warn(s string) string  { return p.warn.Render(s) }
func (p *Palette) Help(s string) string  { return p.help.Render(s) }

// Header renders the "<artist> - <title>" line used above lyrics.
func Header(artist, title string) string {
	return styles.Title(fmt.Sprintf("%s - %s", artist, title))
}

// Success renders a confirmation line.
func Success(format string, args ...any) string {
	return styles.OK("✓ " + fmt.Sprintf(format, args...))
}

// Warning renders a non-fatal problem.
func Warning(format string, args ...any) string {
	return styles.Warn(fmt.Sprintf(format, args...))
}

// Failure renders an error line.
func Failure(err error) string {
	return styles.Err(fmt.Sprintf("Error: %v", err))
}

// Hint renders secondary help text.
func Hint(format string, args ...any) string {
	return styles.Help(fmt.Sprintf(format, args...))
}
