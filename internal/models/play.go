package models

import (
	"fmt"
	"time"
)

// Play records one track change. Lyrics text is never stored.
type Play struct {
	id          string
	artist      string
	title       string
	lyricsFound bool
	lineCount   int
	playedAt    time.Time
}

var _ Model = (*Play)(nil)

// NewPlay creates a Play for a track seen at playedAt. The ID is assigned when it is stored.
func NewPlay(artist, title string, lyricsFound bool, lineCount int, playedAt time.Time) *Play {
	return &Play{
		artist:      artist,
		title:       title,
		lyricsFound: lyricsFound,
		lineCount:   lineCount,
		playedAt:    playedAt,
	}
}

// RestorePlay rebuilds a stored Play.
func RestorePlay(id, artist, title string, lyricsFound bool, lineCount int, playedAt time.Time) *Play {
	p := NewPlay(artist, title, lyricsFound, lineCount, playedAt)
	p.id = id
	return p
}

func (p *Play) ID() string           { return p.id }
func (p *Play) SetID(id string)      { p.id = id }
func (p *Play) Artist() string       { return p.artist }
func (p *Play) Title() string        { return p.title }
func (p *Play) LyricsFound() bool    { return p.lyricsFound }
func (p *Play) LineCount() int       { return p.lineCount }
func (p *Play) PlayedAt() time.Time  { return p.playedAt }
func (p *Play) CreatedAt() time.Time { return p.playedAt }
func (p *Play) UpdatedAt() time.Time { return p.playedAt }

// Validate checks that the play can be stored.
func (p *Play) Validate() error {
	switch {
	case p.id == "":
		return fmt.Errorf("play id is required")
	case p.playedAt.IsZero():
		return fmt.Errorf("played_at is required")
	case p.lineCount < 0:
		return fmt.Errorf("line count cannot be negative")
	case !p.lyricsFound && p.lineCount != 0:
		return fmt.Errorf("line count must be zero when lyrics were not found")
	}
	return nil
}
