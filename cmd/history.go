package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/lyrx/internal/formatter"
	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/repositories"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/desertthunder/lyrx/internal/ui"
	"github.com/urfave/cli/v3"
)

// History lists recorded plays, newest first.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	db, err := shared.OpenHistory(r.config)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer db.Close()

	criteria := map[string]any{"limit": cmd.Int("limit")}
	if artist := cmd.String("artist"); artist != "" {
		criteria["artist"] = artist
	}
	if cmd.Bool("missing") {
		criteria["lyrics_found"] = false
	}

	plays, err := repositories.NewPlayRepository(db).List(criteria)
	if err != nil {
		return err
	}

	if len(plays) == 0 {
		return r.writePlainln("%s", ui.Hint("no plays recorded yet"))
	}
	return r.writeHistory(plays)
}

func (r *Runner) writeHistory(plays []*models.Play) error {
	data, err := formatter.ExportHistory(plays)
	if err != nil {
		return err
	}
	return r.writePlain("%s", data)
}
