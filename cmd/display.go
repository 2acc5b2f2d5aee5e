package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/lyrx/internal/display"
	"github.com/desertthunder/lyrx/internal/lyrics"
	"github.com/desertthunder/lyrx/internal/repositories"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/desertthunder/lyrx/internal/tasks"
	"github.com/urfave/cli/v3"
)

const deltaBuffer = 64

// Display follows the player and shows lyrics full screen until Ctrl+C.
//
// The player is resolved before the terminal is touched, so a missing player
// fails without leaving the screen in a half-drawn state.
func (r *Runner) Display(ctx context.Context, cmd *cli.Command) error {
	p, closePlayer, err := r.openPlayer(ctx, r.config.Player.Name)
	if err != nil {
		return fmt.Errorf("cannot follow %q: %w", r.config.Player.Name, err)
	}
	defer closePlayer()
	r.logger.Debug("following player", "name", p.Name())

	logger := r.displayLogger()

	var history tasks.PlayRecorder
	if r.config.History.Enabled {
		db, err := shared.OpenHistory(r.config)
		if err != nil {
			r.logger.Warn("play history disabled", "error", err)
		} else {
			defer db.Close()
			history = repositories.NewPlayRepository(db)
		}
	}

	scr, err := r.openScreen()
	if err != nil {
		return err
	}
	defer scr.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	deltas := make(chan display.StateDelta, deltaBuffer)

	track := tasks.NewTrackProducer(tasks.TrackProducerOpts{
		Player:  p,
		Lyrics:  r.lyricsClient(logger),
		History: history,
		Logger:  logger,
	})
	input := tasks.NewInputProducer(scr, r.config.Input.PollInterval(), logger)

	go func() {
		if err := track.Run(ctx, deltas); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("track updates stopped", "error", err)
		}
	}()
	go input.Run(ctx, deltas)

	return display.NewAggregator(scr, logger).Run(ctx, deltas)
}

// displayLogger writes to the configured log file, since the terminal is in use.
func (r *Runner) displayLogger() *log.Logger {
	logger, err := shared.NewFileLogger(r.config.Log.Path)
	if err != nil {
		r.logger.Warn("logging disabled while the display runs", "error", err)
		logger = shared.NewLogger(io.Discard)
	}
	shared.SetLogLevel(logger, shared.ParseLogLevel(r.config.Log.Level))
	return logger
}

func (r *Runner) lyricsClient(logger *log.Logger) *lyrics.Client {
	return lyrics.NewClient(lyrics.ClientOpts{
		BaseURL:    r.config.Lyrics.BaseURL,
		UserAgent:  r.config.Lyrics.UserAgent,
		Timeout:    r.config.Lyrics.Timeout(),
		RateLimit:  r.config.Lyrics.RateLimit,
		HTTPClient: r.httpClient,
		Logger:     logger,
	})
}
