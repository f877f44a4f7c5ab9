package services

import (
	"context"
	"fmt"
	"log"

	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/pkg/bibletv"
)

// BibleTextService fetches chapter text from the Bibel TV API, degrading to
// the bundled fallback text when the upstream is unavailable. Failures are
// never propagated as errors; the worst case is an empty verse map.
type BibleTextService struct {
	client      *bibletv.Client
	translation string
}

// NewBibleTextService creates a new Bible text service. The translation is
// the default abbreviation sent upstream (e.g. "LUT").
func NewBibleTextService(client *bibletv.Client, translation string) *BibleTextService {
	return &BibleTextService{client: client, translation: translation}
}

// Chapter fetches the verse texts of one chapter. On upstream failure it
// serves the bundled fallback text where available, otherwise an empty map.
func (s *BibleTextService) Chapter(ctx context.Context, book string, chapter int, translation string) models.ChapterTextResponse {
	if translation == "" {
		translation = s.translation
	}
	resp := models.ChapterTextResponse{
		Book:        book,
		Chapter:     chapter,
		Translation: translation,
		Verses:      map[int]string{},
	}

	query := fmt.Sprintf("%s %d", book, chapter)
	searchResp, err := s.client.FetchPassage(ctx, query, translation)
	if err != nil {
		log.Printf("Bible text fetch failed for %q: %v", query, err)
		resp.Verses = fallbackChapterText(book, chapter)
		resp.Fallback = true
		return resp
	}

	verses := searchResp.Verses(translation)
	if len(verses) == 0 {
		resp.Verses = fallbackChapterText(book, chapter)
		resp.Fallback = true
		return resp
	}
	resp.Verses = verses
	return resp
}
