package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
)

const playColumns = "id, artist, title, lyrics_found, line_count, played_at"

// PlayRepository implements [models.Repository] for [models.Play] history.
type PlayRepository struct {
	db *sql.DB
}

var _ models.Repository[*models.Play] = (*PlayRepository)(nil)

// NewPlayRepository creates a new [PlayRepository] with the given database connection
func NewPlayRepository(db *sql.DB) *PlayRepository {
	return &PlayRepository{db: db}
}

// Create inserts a play with a generated ID
func (r *PlayRepository) Create(play *models.Play) error {
	play.SetID(shared.GenerateID())

	if err := play.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `INSERT INTO plays (` + playColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query,
		play.ID(),
		play.Artist(),
		play.Title(),
		play.LyricsFound(),
		play.LineCount(),
		play.PlayedAt().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert play: %w", err)
	}
	return nil
}

// Get retrieves a play by ID
func (r *PlayRepository) Get(id string) (*models.Play, error) {
	query := `SELECT ` + playColumns + ` FROM plays WHERE id = ?`

	play, err := scanPlay(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("play %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query play: %w", err)
	}
	return play, nil
}

// Delete removes a play by ID
func (r *PlayRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM plays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete play: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("play %s: %w", id, ErrNotFound)
	}
	return nil
}

// List retrieves plays newest first.
//
// Supported criteria: "artist" (string), "lyrics_found" (bool), "limit" (int).
func (r *PlayRepository) List(criteria map[string]any) ([]*models.Play, error) {
	query := `SELECT ` + playColumns + ` FROM plays WHERE 1 = 1`
	args := []any{}

	if artist, ok := criteria["artist"].(string); ok && artist != "" {
		query += " AND artist = ?"
		args = append(args, artist)
	}

	if found, ok := criteria["lyrics_found"].(bool); ok {
		query += " AND lyrics_found = ?"
		args = append(args, found)
	}

	query += " ORDER BY played_at DESC, rowid DESC"

	limit, hasLimit, err := intCriterion(criteria, "limit")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrInvalidArgument, err)
	}
	if hasLimit {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query plays: %w", err)
	}
	defer rows.Close()

	var plays []*models.Play
	for rows.Next() {
		play, err := scanPlay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan play: %w", err)
		}
		plays = append(plays, play)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return plays, nil
}

// Recent returns up to limit plays, newest first.
func (r *PlayRepository) Recent(limit int) ([]*models.Play, error) {
	return r.List(map[string]any{"limit": limit})
}

func scanPlay(row rowScanner) (*models.Play, error) {
	var (
		id          string
		artist      string
		title       string
		lyricsFound bool
		lineCount   int
		playedAt    time.Time
	)

	if err := row.Scan(&id, &artist, &title, &lyricsFound, &lineCount, &playedAt); err != nil {
		return nil, err
	}
	return models.RestorePlay(id, artist, title, lyricsFound, lineCount, playedAt), nil
}
