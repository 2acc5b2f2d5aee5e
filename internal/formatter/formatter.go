// package formatter renders lyrics and play history as plain text or Markdown
package formatter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
)

// Format names an output format.
type Format string

const (
	FormatPlain    Format = "plain"
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts "plain", "text", "markdown" or "md". Empty means plain.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "plain", "text", "txt":
		return FormatPlain, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, name)
}

// ExportLyrics renders lyrics in the given format.
func ExportLyrics(format Format, artist, title string, lines []string) ([]byte, error) {
	switch format {
	case FormatPlain:
		return ExportToText(artist, title, lines), nil
	case FormatMarkdown:
		return ExportToMarkdown(artist, title, lines), nil
	}
	return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
}

// ExportToText renders a "<artist> - <title>" header, a blank line, then one lyric per line.
func ExportToText(artist, title string, lines []string) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s - %s\n\n", artist, title))
	for _, line := range lines {
		buf.WriteString(lineText(line) + "\n")
	}

	return buf.Bytes()
}

// ExportToMarkdown renders lyrics as a Markdown document. Stanzas become paragraphs
// and lines within a stanza end in a hard break.
func ExportToMarkdown(artist, title string, lines []string) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Artist**: %s\n\n", artist))

	for _, stanza := range stanzas(lines) {
		buf.WriteString(strings.Join(stanza, "  \n"))
		buf.WriteString("\n\n")
	}

	return bytes.TrimRight(buf.Bytes(), "\n")
}

// WriteLyricsExport writes rendered lyrics to path, creating parent directories.
func WriteLyricsExport(path string, data []byte) (string, error) {
	path, err := shared.ExpandPath(path)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write lyrics file: %w", err)
	}
	return path, nil
}

// ExportHistory renders plays as an aligned table, newest first as given.
func ExportHistory(plays []*models.Play) ([]byte, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "PLAYED\tARTIST\tTITLE\tLYRICS")
	for _, p := range plays {
		lyrics := "-"
		if p.LyricsFound() {
			lyrics = fmt.Sprintf("%d lines", p.LineCount())
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.PlayedAt().Local().Format(time.DateTime),
			orDash(p.Artist()),
			orDash(p.Title()),
			lyrics,
		)
	}

	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write history: %w", err)
	}
	return buf.Bytes(), nil
}

func stanzas(lines []string) [][]string {
	var out [][]string
	var cur []string
	for _, line := range lines {
		if lineText(line) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// lineText maps the "\n" blank-line marker to an empty line.
func lineText(line string) string {
	return strings.TrimRight(line, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
