package services

import (
	"sort"
	"strings"

	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/internal/repository"
)

// maxSearchResults caps the corpus search result list.
const maxSearchResults = 10

// SearchService performs case-insensitive substring search across verse
// references, video titles, and topic keys.
type SearchService struct {
	content repository.ContentRepository
}

// NewSearchService creates a new search service.
func NewSearchService(content repository.ContentRepository) *SearchService {
	return &SearchService{content: content}
}

// Search returns up to ten matches: verses first, then videos, then topics.
func (s *SearchService) Search(query string) models.SearchResponse {
	results := []models.SearchResult{}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return models.SearchResponse{Query: query, Results: results}
	}

	for _, ref := range s.content.AllVerseRefs() {
		if !strings.Contains(strings.ToLower(ref), q) {
			continue
		}
		results = append(results, models.SearchResult{
			Type:  "verse",
			Ref:   ref,
			Label: ref,
			Count: len(s.content.VideosForVerseExact(ref)),
		})
	}

	for _, video := range s.content.Videos() {
		if !strings.Contains(strings.ToLower(video.Title), q) {
			continue
		}
		v := video
		results = append(results, models.SearchResult{
			Type:  "video",
			Ref:   video.VideoID,
			Label: video.Title,
			Video: &v,
		})
	}

	topics := s.content.Topics()
	topicKeys := make([]string, 0, len(topics))
	for key := range topics {
		topicKeys = append(topicKeys, key)
	}
	sort.Strings(topicKeys)
	for _, key := range topicKeys {
		if !strings.Contains(strings.ToLower(key), q) {
			continue
		}
		results = append(results, models.SearchResult{
			Type:  "topic",
			Ref:   key,
			Label: strings.ReplaceAll(key, "_", " "),
			Count: len(topics[key]),
		})
	}

	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return models.SearchResponse{Query: query, Results: results}
}
