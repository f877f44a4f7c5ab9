// Package studyjson implements the content repository over the static
// JSON study database.
package studyjson

import (
	"sort"

	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/internal/repository"
	"github.com/video-study-bible-api/internal/store"
	"github.com/video-study-bible-api/internal/verseref"
)

// ContentRepository reads the loaded study database. It never mutates it.
type ContentRepository struct {
	store *store.Store
}

// NewContentRepository creates a content repository over a loaded store.
func NewContentRepository(s *store.Store) repository.ContentRepository {
	return &ContentRepository{store: s}
}

// VideosForVerse merges the chapter index entries of both key variants:
// the primary key's videos first, then the alternate key's. Videos are not
// deduplicated across variants; a video listed under both keys appears once
// per key, matching the source data's ownership.
func (r *ContentRepository) VideosForVerse(ref string) []models.Video {
	chapter := r.store.ChapterVerses()
	videos := append([]models.Video{}, chapter[ref]...)
	if alt := verseref.AlternateForm(ref); alt != ref {
		videos = append(videos, chapter[alt]...)
	}
	return videos
}

// VideosForVerseExact looks up the full-corpus index under exactly this key.
func (r *ContentRepository) VideosForVerseExact(ref string) []models.Video {
	return r.store.AllVerses()[ref]
}

// Commentary returns the commentary stored under exactly this key. Merging
// of the two key variants is the commentary service's concern.
func (r *ContentRepository) Commentary(ref string) (models.VerseCommentary, bool) {
	c, ok := r.store.Commentaries()[ref]
	return c, ok
}

// Topics returns the topic-to-videos map.
func (r *ContentRepository) Topics() map[string][]models.TopicVideo {
	return r.store.Topics()
}

// CrossRefs returns the stored cross-reference entries for a verse.
func (r *ContentRepository) CrossRefs(ref string) []string {
	return r.store.CrossReferences()[ref]
}

// ChapterVerses returns the active chapter's verse-to-video map.
func (r *ContentRepository) ChapterVerses() map[string][]models.Video {
	return r.store.ChapterVerses()
}

// Commentaries returns the full per-verse commentary map.
func (r *ContentRepository) Commentaries() map[string]models.VerseCommentary {
	return r.store.Commentaries()
}

// AllVerseRefs returns the sorted verse keys of the full-corpus index.
func (r *ContentRepository) AllVerseRefs() []string {
	all := r.store.AllVerses()
	refs := make([]string, 0, len(all))
	for ref := range all {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}

// Videos returns the full video list.
func (r *ContentRepository) Videos() []models.Video {
	return r.store.Videos()
}

// FindVideoByID returns the video with the given id.
func (r *ContentRepository) FindVideoByID(id string) (models.Video, bool) {
	for _, v := range r.store.Videos() {
		if v.VideoID == id {
			return v, true
		}
	}
	return models.Video{}, false
}
