// Package memory implements session-scoped annotation storage.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/internal/repository"
)

// AnnotationRepository keeps notes and highlights in process memory.
// This matches the MVP behavior where annotations live only for the session.
type AnnotationRepository struct {
	mu         sync.RWMutex
	notes      map[string][]models.Note
	highlights map[string]string
}

// NewAnnotationRepository creates an empty in-memory annotation store.
func NewAnnotationRepository() repository.AnnotationRepository {
	return &AnnotationRepository{
		notes:      map[string][]models.Note{},
		highlights: map[string]string{},
	}
}

// Notes returns the notes of a verse in insertion order.
func (r *AnnotationRepository) Notes(_ context.Context, verseRef string) ([]models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Note{}, r.notes[verseRef]...), nil
}

// AddNote appends a note to a verse.
func (r *AnnotationRepository) AddNote(_ context.Context, verseRef string, note models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes[verseRef] = append(r.notes[verseRef], note)
	return nil
}

// DeleteNote removes a note by id.
func (r *AnnotationRepository) DeleteNote(_ context.Context, verseRef, noteID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	notes := r.notes[verseRef]
	for i, n := range notes {
		if n.ID == noteID {
			r.notes[verseRef] = append(notes[:i:i], notes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("note %s not found on %s", noteID, verseRef)
}

// Highlight returns the highlight color of a verse, if set.
func (r *AnnotationRepository) Highlight(_ context.Context, verseRef string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	color, ok := r.highlights[verseRef]
	return color, ok, nil
}

// SetHighlight sets the highlight color of a verse.
func (r *AnnotationRepository) SetHighlight(_ context.Context, verseRef, color string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.highlights[verseRef] = color
	return nil
}

// ClearHighlight removes the highlight of a verse.
func (r *AnnotationRepository) ClearHighlight(_ context.Context, verseRef string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.highlights, verseRef)
	return nil
}
