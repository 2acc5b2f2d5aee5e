package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/lyrx/internal/formatter"
	"github.com/desertthunder/lyrx/internal/lyrics"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/desertthunder/lyrx/internal/ui"
	"github.com/urfave/cli/v3"
)

// Fetch prints or saves lyrics for the track given by --artist and --title.
func (r *Runner) Fetch(ctx context.Context, cmd *cli.Command) error {
	artist := cmd.String("artist")
	title := cmd.String("title")
	if artist == "" || title == "" {
		return fmt.Errorf("%w: --artist and --title are required", shared.ErrMissingArgument)
	}

	url := lyrics.URL(r.config.Lyrics.BaseURL, artist, title)
	switch {
	case cmd.Bool("url"):
		return r.writePlainln("%s", url)
	case cmd.Bool("open"):
		return shared.OpenURL(url)
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	lines, err := r.lyricsClient(r.logger).Lyrics(ctx, artist, title)
	if err != nil {
		return fmt.Errorf("%s - %s: %w", artist, title, err)
	}
	if len(lines) == 0 {
		return fmt.Errorf("%s - %s: %w", artist, title, shared.ErrLyricsNotFound)
	}

	data, err := formatter.ExportLyrics(format, artist, title, lines)
	if err != nil {
		return err
	}

	if path := cmd.String("output"); path != "" {
		written, err := formatter.WriteLyricsExport(path, data)
		if err != nil {
			return err
		}
		return r.writePlainln("%s", ui.Success("saved %d lines to %s", len(lines), written))
	}

	return r.writePlain("%s", data)
}
