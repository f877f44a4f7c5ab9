package services

import (
	"strings"

	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/internal/repository"
	"github.com/video-study-bible-api/internal/verseref"
)

// CrossRefService resolves the cross-references of a verse from two
// provenances: commentary-embedded references (already in display language)
// and the stored cross-reference table (translated on the way out).
type CrossRefService struct {
	content repository.ContentRepository
}

// NewCrossRefService creates a new cross-reference service.
func NewCrossRefService(content repository.ContentRepository) *CrossRefService {
	return &CrossRefService{content: content}
}

// Resolve gathers, translates, deduplicates, and groups the cross-references
// of a verse. Commentary entries win case-insensitive collisions against
// stored-table entries. Groups preserve first-seen order. Each reference
// reports whether its target verse has videos, for click-through affordance.
// An empty result with VerseKnown=true means "no cross-references", distinct
// from a verse absent from the corpus.
func (s *CrossRefService) Resolve(ref string) models.CrossRefsResponse {
	altRef := verseref.AlternateForm(ref)

	// Commentary-provided refs from both key variants, commentary priority
	// preserved; the alternate variant only contributes new entries.
	var refs []string
	seen := map[string]bool{}
	appendRefs := func(list []string) {
		for _, r := range list {
			key := strings.ToLower(r)
			if seen[key] {
				continue
			}
			seen[key] = true
			refs = append(refs, r)
		}
	}
	if c, ok := s.content.Commentary(ref); ok {
		appendRefs(c.CrossReferences)
	}
	if altRef != ref {
		if c, ok := s.content.Commentary(altRef); ok {
			appendRefs(c.CrossReferences)
		}
	}

	// Stored-table refs, translated into display language. Entries that
	// case-insensitively duplicate a commentary entry are dropped.
	stored := make([]string, 0)
	for _, r := range s.content.CrossRefs(ref) {
		stored = append(stored, verseref.Translate(r))
	}
	appendRefs(stored)

	// Group by book label in first-seen order.
	var groups []models.CrossRefGroup
	groupIdx := map[string]int{}
	for _, r := range refs {
		book := verseref.BookLabel(r)
		idx, ok := groupIdx[book]
		if !ok {
			idx = len(groups)
			groupIdx[book] = idx
			groups = append(groups, models.CrossRefGroup{Book: book})
		}
		targetVideos := s.content.VideosForVerseExact(r)
		groups[idx].Refs = append(groups[idx].Refs, models.CrossRef{
			Ref:        r,
			HasVideos:  len(targetVideos) > 0,
			VideoCount: len(targetVideos),
		})
	}
	if groups == nil {
		groups = []models.CrossRefGroup{}
	}

	return models.CrossRefsResponse{
		Verse:      ref,
		VerseKnown: s.verseKnown(ref, altRef),
		Total:      len(refs),
		Groups:     groups,
	}
}

// verseKnown reports whether the verse exists in the corpus under either key
// variant, via videos or commentary.
func (s *CrossRefService) verseKnown(ref, altRef string) bool {
	if len(s.content.VideosForVerse(ref)) > 0 {
		return true
	}
	if _, ok := s.content.Commentary(ref); ok {
		return true
	}
	if altRef != ref {
		if _, ok := s.content.Commentary(altRef); ok {
			return true
		}
	}
	return false
}
