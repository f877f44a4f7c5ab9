package repository

import (
	"context"

	"github.com/video-study-bible-api/internal/models"
)

// ContentRepository defines read access to the static study database.
// All methods are total: missing keys yield empty collections, never errors.
type ContentRepository interface {
	// VideosForVerse returns the videos mentioning a verse, merged across
	// both key variants of the reference (primary first, then alternate).
	VideosForVerse(ref string) []models.Video

	// VideosForVerseExact returns the videos stored under exactly this key
	// in the full-corpus index, without key-variant merging.
	VideosForVerseExact(ref string) []models.Video

	// Commentary returns the raw commentary stored under exactly this key.
	Commentary(ref string) (models.VerseCommentary, bool)

	// Topics returns the topic-to-videos map.
	Topics() map[string][]models.TopicVideo

	// CrossRefs returns the stored cross-reference table entries for a verse.
	CrossRefs(ref string) []string

	// ChapterVerses returns the verse-to-video map of the active chapter.
	ChapterVerses() map[string][]models.Video

	// Commentaries returns the full per-verse commentary map.
	Commentaries() map[string]models.VerseCommentary

	// AllVerseRefs returns every verse key of the full-corpus index.
	AllVerseRefs() []string

	// Videos returns the full video list.
	Videos() []models.Video

	// FindVideoByID returns the video with the given id.
	FindVideoByID(id string) (models.Video, bool)
}

// AnnotationRepository defines storage for user notes and highlights.
// The default backend is in-memory and session-scoped; a Postgres backend
// persists annotations across restarts.
type AnnotationRepository interface {
	Notes(ctx context.Context, verseRef string) ([]models.Note, error)
	AddNote(ctx context.Context, verseRef string, note models.Note) error
	DeleteNote(ctx context.Context, verseRef, noteID string) error

	Highlight(ctx context.Context, verseRef string) (string, bool, error)
	SetHighlight(ctx context.Context, verseRef, color string) error
	ClearHighlight(ctx context.Context, verseRef string) error
}
