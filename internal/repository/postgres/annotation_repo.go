// Package postgres implements persistent annotation storage.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/internal/repository"
)

// AnnotationRepository implements repository.AnnotationRepository for PostgreSQL
type AnnotationRepository struct {
	db *sqlx.DB
}

// NewAnnotationRepository creates a new PostgreSQL annotation repository and
// ensures its tables exist.
func NewAnnotationRepository(db *sqlx.DB) (repository.AnnotationRepository, error) {
	r := &AnnotationRepository{db: db}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *AnnotationRepository) ensureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS verse_notes (
			id         TEXT PRIMARY KEY,
			verse_ref  TEXT NOT NULL,
			body       TEXT NOT NULL,
			attachment TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_verse_notes_ref ON verse_notes (verse_ref);
		CREATE TABLE IF NOT EXISTS verse_highlights (
			verse_ref TEXT PRIMARY KEY,
			color     TEXT NOT NULL
		);
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure annotation schema: %w", err)
	}
	return nil
}

// Notes returns the notes of a verse in creation order.
func (r *AnnotationRepository) Notes(ctx context.Context, verseRef string) ([]models.Note, error) {
	rows, err := r.db.QueryxContext(ctx, `
		SELECT id, body, attachment, created_at
		FROM verse_notes
		WHERE verse_ref = $1
		ORDER BY created_at
	`, verseRef)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var row struct {
			ID         string `db:"id"`
			Body       string `db:"body"`
			Attachment string `db:"attachment"`
			CreatedAt  string `db:"created_at"`
		}
		if err := rows.StructScan(&row); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, models.Note{
			ID:         row.ID,
			Text:       row.Body,
			Attachment: row.Attachment,
			CreatedAt:  row.CreatedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}

// AddNote inserts a note for a verse.
func (r *AnnotationRepository) AddNote(ctx context.Context, verseRef string, note models.Note) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO verse_notes (id, verse_ref, body, attachment, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, note.ID, verseRef, note.Text, note.Attachment, note.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// DeleteNote removes a note by id.
func (r *AnnotationRepository) DeleteNote(ctx context.Context, verseRef, noteID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM verse_notes WHERE verse_ref = $1 AND id = $2
	`, verseRef, noteID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("note %s not found on %s", noteID, verseRef)
	}
	return nil
}

// Highlight returns the highlight color of a verse, if set.
func (r *AnnotationRepository) Highlight(ctx context.Context, verseRef string) (string, bool, error) {
	var color string
	err := r.db.GetContext(ctx, &color, `
		SELECT color FROM verse_highlights WHERE verse_ref = $1
	`, verseRef)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query highlight: %w", err)
	}
	return color, true, nil
}

// SetHighlight upserts the highlight color of a verse.
func (r *AnnotationRepository) SetHighlight(ctx context.Context, verseRef, color string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO verse_highlights (verse_ref, color)
		VALUES ($1, $2)
		ON CONFLICT (verse_ref) DO UPDATE SET color = EXCLUDED.color
	`, verseRef, color)
	if err != nil {
		return fmt.Errorf("set highlight: %w", err)
	}
	return nil
}

// ClearHighlight removes the highlight of a verse.
func (r *AnnotationRepository) ClearHighlight(ctx context.Context, verseRef string) error {
	if _, err := r.db.ExecContext(ctx, `
		DELETE FROM verse_highlights WHERE verse_ref = $1
	`, verseRef); err != nil {
		return fmt.Errorf("clear highlight: %w", err)
	}
	return nil
}
