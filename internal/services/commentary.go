package services

import (
	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/internal/repository"
	"github.com/video-study-bible-api/internal/verseref"
)

// CommentaryService reconciles the commentary entries that may independently
// exist under the English-key and German-key variants of a verse.
type CommentaryService struct {
	content repository.ContentRepository
}

// NewCommentaryService creates a new commentary service.
func NewCommentaryService(content repository.ContentRepository) *CommentaryService {
	return &CommentaryService{content: content}
}

// MergeCommentaries merges two commentary objects into one synthesized view.
// Nil operands are identities. The first non-empty summary wins; the second
// summary is dropped by design. Category arrays are concatenated key-wise
// without intra-category deduplication: repeated identical text may come
// from distinct videos and is preserved. Source videos and cross-references
// are set-unioned keeping a's distinct elements first.
func MergeCommentaries(a, b *models.VerseCommentary) *models.VerseCommentary {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	categories := make(map[models.Category][]models.CommentaryItem, len(a.Categories)+len(b.Categories))
	for key, items := range a.Categories {
		categories[key] = append(categories[key], items...)
	}
	for key, items := range b.Categories {
		categories[key] = append(categories[key], items...)
	}

	summary := a.Summary
	if summary == "" {
		summary = b.Summary
	}

	return &models.VerseCommentary{
		Summary:         summary,
		Categories:      categories,
		SourceCount:     a.SourceCount + b.SourceCount,
		SourceVideos:    unionStrings(a.SourceVideos, b.SourceVideos),
		CrossReferences: unionStrings(a.CrossReferences, b.CrossReferences),
	}
}

// unionStrings returns a's distinct elements followed by b's new elements,
// deduplicated by exact string equality.
func unionStrings(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, lists := range [][]string{a, b} {
		for _, s := range lists {
			if seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// ForVerse returns the merged commentary for a verse, looking up both key
// variants. Returns nil when neither variant has an entry.
func (s *CommentaryService) ForVerse(ref string) *models.VerseCommentary {
	var primary, alt *models.VerseCommentary
	if c, ok := s.content.Commentary(ref); ok {
		primary = &c
	}
	if altRef := verseref.AlternateForm(ref); altRef != ref {
		if c, ok := s.content.Commentary(altRef); ok {
			alt = &c
		}
	}
	return MergeCommentaries(primary, alt)
}
