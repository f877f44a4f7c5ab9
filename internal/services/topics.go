package services

import (
	"sort"
	"strings"

	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/internal/repository"
	"github.com/video-study-bible-api/internal/verseref"
)

// topicDE maps topic keys to their German display labels.
var topicDE = map[string]string{
	"humanity": "Menschheit", "marriage": "Ehe", "time": "Zeit", "animals": "Tiere",
	"creation": "Schöpfung", "water": "Wasser", "redemption": "Erlösung", "light": "Licht",
	"sin": "Sünde", "space": "Kosmos", "sabbath": "Sabbat", "plants": "Pflanzen",
	"atmosphere": "Atmosphäre", "god": "Gott", "spirit": "Heiliger Geist", "word": "Wort Gottes",
	"faith": "Glaube", "prayer": "Gebet", "salvation": "Erlösung", "love": "Liebe",
	"grace": "Gnade", "heaven": "Himmel", "earth": "Erde", "darkness": "Finsternis",
	"day": "Tag", "rest": "Ruhe", "image": "Ebenbild", "work": "Arbeit", "blessing": "Segen",
	"covenant": "Bund", "prophecy": "Prophetie", "worship": "Anbetung", "truth": "Wahrheit",
	"eternity": "Ewigkeit", "kingdom": "Königreich", "life": "Leben", "death": "Tod",
	"man": "Mann", "woman": "Frau", "family": "Familie", "nature": "Natur",
}

// TranslateTopic returns the German label for a topic key. Unknown keys fall
// back to underscore-to-space with each word title-cased.
func TranslateTopic(key string) string {
	if label, ok := topicDE[strings.ToLower(key)]; ok {
		return label
	}
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// TopicService computes which chapter verses each topic's videos cover.
type TopicService struct {
	content repository.ContentRepository
}

// NewTopicService creates a new topic service.
func NewTopicService(content repository.ContentRepository) *TopicService {
	return &TopicService{content: content}
}

// Coverage builds the topic-verse association: for each topic, the chapter
// verses whose own videos intersect the topic's video-id set, with per-verse
// intersection counts. Only single-verse references qualify; a verse is
// included only with count > 0 and a topic only with at least one qualifying
// verse. Topics sort by descending verse coverage (ties by key), verses
// numerically by trailing verse number.
func (s *TopicService) Coverage() models.TopicsResponse {
	topics := s.content.Topics()
	chapter := s.content.ChapterVerses()

	coverages := make([]models.TopicCoverage, 0, len(topics))
	for topicKey, topicVideos := range topics {
		topicVideoIDs := make(map[string]bool, len(topicVideos))
		for _, tv := range topicVideos {
			topicVideoIDs[tv.VideoID] = true
		}

		var verses []models.TopicVerse
		totalVideos := 0
		for verseRef, verseVideos := range chapter {
			if !verseref.IsSingleVerse(verseRef) {
				continue
			}
			matching := 0
			for _, v := range verseVideos {
				if topicVideoIDs[v.VideoID] {
					matching++
				}
			}
			if matching > 0 {
				verses = append(verses, models.TopicVerse{Ref: verseRef, VideoCount: matching})
				totalVideos += matching
			}
		}
		if len(verses) == 0 {
			continue
		}

		sort.Slice(verses, func(i, j int) bool {
			return verseref.VerseNumber(verses[i].Ref) < verseref.VerseNumber(verses[j].Ref)
		})

		coverages = append(coverages, models.TopicCoverage{
			Key:        topicKey,
			Label:      TranslateTopic(topicKey),
			VerseCount: len(verses),
			VideoCount: totalVideos,
			Verses:     verses,
		})
	}

	sort.SliceStable(coverages, func(i, j int) bool {
		if coverages[i].VerseCount != coverages[j].VerseCount {
			return coverages[i].VerseCount > coverages[j].VerseCount
		}
		return coverages[i].Key < coverages[j].Key
	})

	return models.TopicsResponse{Topics: coverages}
}
