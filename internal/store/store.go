// Package store loads and holds the static study-database JSON asset.
// The database is read once at startup and never mutated afterwards.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/video-study-bible-api/internal/models"
)

// Store wraps the loaded study database. All accessors are read-only and
// total: a missing key yields an empty collection, never an error.
type Store struct {
	db models.StudyDatabase
}

// Open reads and validates the study database from path. Callers are expected
// to fall back to Empty() when loading fails so every lookup degrades to an
// empty result instead of crashing.
func Open(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read study database: %w", err)
	}
	var db models.StudyDatabase
	if err := json.Unmarshal(raw, &db); err != nil {
		return nil, fmt.Errorf("parse study database: %w", err)
	}
	normalize(&db)
	return &Store{db: db}, nil
}

// New wraps an already-built database, normalizing nil collections.
func New(db models.StudyDatabase) *Store {
	normalize(&db)
	return &Store{db: db}
}

// Empty returns a store with no content.
func Empty() *Store {
	return New(models.StudyDatabase{})
}

// normalize replaces nil maps with empty ones so downstream code never
// needs to null-check beyond "is this empty".
func normalize(db *models.StudyDatabase) {
	if db.Verses.Genesis1 == nil {
		db.Verses.Genesis1 = map[string][]models.Video{}
	}
	if db.Verses.All == nil {
		db.Verses.All = map[string][]models.Video{}
	}
	if db.VerseCommentaries == nil {
		db.VerseCommentaries = map[string]models.VerseCommentary{}
	}
	if db.Topics == nil {
		db.Topics = map[string][]models.TopicVideo{}
	}
	if db.CrossReferences == nil {
		db.CrossReferences = map[string][]string{}
	}
}

// ChapterVerses returns the verse-to-video map of the active chapter.
func (s *Store) ChapterVerses() map[string][]models.Video {
	return s.db.Verses.Genesis1
}

// AllVerses returns the full-corpus verse-to-video map.
func (s *Store) AllVerses() map[string][]models.Video {
	return s.db.Verses.All
}

// Commentaries returns the per-verse synthesized commentary map.
func (s *Store) Commentaries() map[string]models.VerseCommentary {
	return s.db.VerseCommentaries
}

// Topics returns the topic-to-videos map.
func (s *Store) Topics() map[string][]models.TopicVideo {
	return s.db.Topics
}

// CrossReferences returns the stored cross-reference table.
func (s *Store) CrossReferences() map[string][]string {
	return s.db.CrossReferences
}

// Videos returns the full video list.
func (s *Store) Videos() []models.Video {
	return s.db.Videos
}

// Stats summarizes the loaded corpus for health reporting.
func (s *Store) Stats() (verses, videos, commentaries int) {
	return len(s.db.Verses.All), len(s.db.Videos), len(s.db.VerseCommentaries)
}
