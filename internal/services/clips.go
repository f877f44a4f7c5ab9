package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/internal/repository"
)

const maxTitleLen = 60

var (
	mp4Suffix    = regexp.MustCompile(`(?i)\.mp4$`)
	idSuffix     = regexp.MustCompile(`_\d{5,}$`)
	trailingWord = regexp.MustCompile(`\s+\S*$`)
)

// CleanTitle converts a raw filename-derived video title into a short
// readable label: drops the .mp4 extension and trailing numeric id, replaces
// underscores with spaces, and truncates to 60 chars at a word boundary.
func CleanTitle(raw string) string {
	t := mp4Suffix.ReplaceAllString(raw, "")
	t = idSuffix.ReplaceAllString(t, "")
	t = strings.ReplaceAll(t, "_", " ")
	if runes := []rune(t); len(runes) > maxTitleLen {
		t = trailingWord.ReplaceAllString(string(runes[:maxTitleLen]), "")
	}
	return strings.TrimSpace(t)
}

// dedupeByTimestamp drops mentions whose timestamp string was already seen,
// preserving first-occurrence order. Two distinct mentions timestamped
// identically within one video collapse to one; videos themselves are never
// deduplicated.
func dedupeByTimestamp(mentions []models.Mention) []models.Mention {
	seen := make(map[string]bool, len(mentions))
	out := make([]models.Mention, 0, len(mentions))
	for _, m := range mentions {
		if seen[m.Timestamp] {
			continue
		}
		seen[m.Timestamp] = true
		out = append(out, m)
	}
	return out
}

// formatClipDuration renders a clip length as m:ss.
func formatClipDuration(startMS, endMS int64) string {
	s := (endMS - startMS + 500) / 1000
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// ClipService turns the videos matching a verse into a display-ready clip feed.
type ClipService struct {
	content repository.ContentRepository
}

// NewClipService creates a new clip service.
func NewClipService(content repository.ContentRepository) *ClipService {
	return &ClipService{content: content}
}

// BuildClips flattens a video list into clip records: mentions are
// deduplicated per video by timestamp, each surviving mention becomes one
// clip, and the list is stably sorted so bounded clips precede unbounded
// ones while ties keep insertion order.
func BuildClips(videos []models.Video) []models.Clip {
	var clips []models.Clip
	for _, video := range videos {
		displayTitle := video.DisplayTitle
		if displayTitle == "" {
			displayTitle = CleanTitle(video.Title)
		}
		for _, mention := range dedupeByTimestamp(video.Mentions) {
			clips = append(clips, buildClip(video, mention, displayTitle))
		}
	}
	sort.SliceStable(clips, func(i, j int) bool {
		return clips[i].HasClipData && !clips[j].HasClipData
	})
	return clips
}

func buildClip(video models.Video, mention models.Mention, displayTitle string) models.Clip {
	hasClipData := mention.ClipStartMS != nil

	title := mention.ClipTitle
	if title == "" {
		title = displayTitle
	}
	description := mention.ClipDescription
	if description == "" {
		description = mention.Context
	}
	var duration string
	if hasClipData && mention.ClipEndMS != nil {
		duration = formatClipDuration(*mention.ClipStartMS, *mention.ClipEndMS)
	}

	startMS := mention.TimestampMS
	if mention.ClipStartMS != nil {
		startMS = *mention.ClipStartMS
	}

	return models.Clip{
		Mention:       mention,
		VideoID:       video.VideoID,
		Title:         title,
		Description:   description,
		Duration:      duration,
		DisplayTitle:  displayTitle,
		Speaker:       video.Speaker,
		SpeakerAvatar: video.SpeakerAvatar,
		Thumb:         video.Thumb,
		Series:        video.Series,
		Organization:  video.Organization,
		HasClipData:   hasClipData,
		Playback: models.PlaybackWindow{
			VideoID: video.VideoID,
			StartMS: startMS,
			EndMS:   mention.ClipEndMS,
		},
	}
}

// FilterByCategory keeps clips whose mention category matches exactly.
func FilterByCategory(clips []models.Clip, category models.Category) []models.Clip {
	if category == "" {
		return clips
	}
	out := make([]models.Clip, 0, len(clips))
	for _, c := range clips {
		if c.Mention.Category == category {
			out = append(out, c)
		}
	}
	return out
}

// FilterByQuery keeps clips matching a case-insensitive substring search
// across title, clip title, clip description, context, and speaker.
func FilterByQuery(clips []models.Clip, query string) []models.Clip {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return clips
	}
	out := make([]models.Clip, 0, len(clips))
	for _, c := range clips {
		fields := []string{c.DisplayTitle, c.Mention.ClipTitle, c.Mention.ClipDescription, c.Mention.Context, c.Speaker}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// ClipsForVerse builds the filtered clip feed for a verse. Total and the
// present-category list always describe the unfiltered feed so the caller
// can render filter chips and a "shown/total" badge.
func (s *ClipService) ClipsForVerse(ref string, category models.Category, query string) models.ClipsResponse {
	all := BuildClips(s.content.VideosForVerse(ref))

	clips := FilterByQuery(FilterByCategory(all, category), query)

	present := map[models.Category]bool{}
	for _, c := range all {
		if c.Mention.Category != "" {
			present[c.Mention.Category] = true
		}
	}
	categories := make([]models.Category, 0, len(present))
	for _, cat := range models.Categories {
		if present[cat] {
			categories = append(categories, cat)
		}
	}

	if clips == nil {
		clips = []models.Clip{}
	}
	return models.ClipsResponse{
		Verse:      ref,
		Total:      len(all),
		Filtered:   len(clips),
		Categories: categories,
		Clips:      clips,
	}
}
