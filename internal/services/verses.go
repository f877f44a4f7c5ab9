package services

import (
	"fmt"

	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/internal/repository"
)

// genesis1VerseCount is the number of verses in the active chapter.
const genesis1VerseCount = 31

// VerseService lists the chapter's verses with their video availability.
type VerseService struct {
	content repository.ContentRepository
}

// NewVerseService creates a new verse service.
func NewVerseService(content repository.ContentRepository) *VerseService {
	return &VerseService{content: content}
}

// ChapterVerses returns every verse of Genesis 1 with the number of videos
// mentioning it under either key variant.
func (s *VerseService) ChapterVerses() models.ChapterVersesResponse {
	verses := make([]models.VerseSummary, 0, genesis1VerseCount)
	for n := 1; n <= genesis1VerseCount; n++ {
		ref := fmt.Sprintf("Genesis 1:%d", n)
		verses = append(verses, models.VerseSummary{
			Ref:        ref,
			Number:     n,
			VideoCount: len(s.content.VideosForVerse(ref)),
		})
	}
	return models.ChapterVersesResponse{Chapter: "Genesis 1", Verses: verses}
}
