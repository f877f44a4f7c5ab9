package models

// Category classifies a teaching excerpt or commentary section.
type Category string

const (
	CategoryTextanalyse    Category = "textanalyse"
	CategoryHistorisch     Category = "historisch_kulturell"
	CategoryTheologisch    Category = "theologisch"
	CategoryChristologisch Category = "christologisch"
	CategoryAnwendung      Category = "anwendung"
	CategoryIllustrationen Category = "illustrationen"
)

// Categories lists all known categories in display order.
// historisch_kulturell appears only in synthesized commentary, never on raw mentions.
var Categories = []Category{
	CategoryTextanalyse,
	CategoryHistorisch,
	CategoryTheologisch,
	CategoryChristologisch,
	CategoryAnwendung,
	CategoryIllustrationen,
}

// CategoryInfo carries the display metadata for a category.
type CategoryInfo struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// Info returns display metadata for a category. The second return value is
// false for unknown category keys.
func (c Category) Info() (CategoryInfo, bool) {
	switch c {
	case CategoryTextanalyse:
		return CategoryInfo{Label: "Textanalyse", Description: "Wortbedeutungen, Sprache, Struktur", Color: "#3b82f6"}, true
	case CategoryHistorisch:
		return CategoryInfo{Label: "Historisch & Kulturell", Description: "Hintergrund, Zeitkontext", Color: "#8b5cf6"}, true
	case CategoryTheologisch:
		return CategoryInfo{Label: "Theologische Einsichten", Description: "Lehraussagen & Glaubensinhalte", Color: "#f59e0b"}, true
	case CategoryChristologisch:
		return CategoryInfo{Label: "Christologische Perspektive", Description: "Verbindung zu Jesus & NT", Color: "#10b981"}, true
	case CategoryAnwendung:
		return CategoryInfo{Label: "Lebensanwendung", Description: "Praktisch & persönlich", Color: "#ef4444"}, true
	case CategoryIllustrationen:
		return CategoryInfo{Label: "Illustrationen & Geschichten", Description: "Bilder, Analogien, Erlebnisse", Color: "#6366f1"}, true
	}
	return CategoryInfo{}, false
}

// Mention is one timestamped reference to a verse inside a video.
type Mention struct {
	Timestamp       string   `json:"timestamp"`
	TimestampMS     int64    `json:"timestamp_ms"`
	ClipStartMS     *int64   `json:"clip_start_ms,omitempty"`
	ClipEndMS       *int64   `json:"clip_end_ms,omitempty"`
	ClipTitle       string   `json:"clip_title,omitempty"`
	ClipDescription string   `json:"clip_description,omitempty"`
	Category        Category `json:"category,omitempty"`
	Context         string   `json:"context,omitempty"`
	Quality         string   `json:"quality,omitempty"`
	Type            string   `json:"type,omitempty"`
}

// Video is one source video with its verse mentions. Immutable after load.
type Video struct {
	VideoID       string    `json:"video_id"`
	Title         string    `json:"title"`
	DisplayTitle  string    `json:"display_title,omitempty"`
	Speaker       string    `json:"speaker,omitempty"`
	SpeakerAvatar string    `json:"speaker_avatar,omitempty"`
	Organization  string    `json:"organization,omitempty"`
	Series        string    `json:"series,omitempty"`
	Thumb         string    `json:"thumb,omitempty"`
	VideoFile     string    `json:"video_file,omitempty"`
	Mentions      []Mention `json:"mentions"`
}

// CommentaryItem is one synthesized commentary entry with its attribution.
type CommentaryItem struct {
	Text          string `json:"text"`
	Source        string `json:"source,omitempty"`
	Speaker       string `json:"speaker,omitempty"`
	SpeakerAvatar string `json:"speaker_avatar,omitempty"`
	VideoID       string `json:"video_id,omitempty"`
	TimestampMS   int64  `json:"timestamp_ms,omitempty"`
	Thumb         string `json:"thumb,omitempty"`
}

// VerseCommentary is the synthesized per-verse commentary. Two entries may
// exist for the same logical verse under the English and German key variants;
// they are merged before display.
type VerseCommentary struct {
	Summary         string                        `json:"summary,omitempty"`
	Categories      map[Category][]CommentaryItem `json:"categories"`
	SourceCount     int                           `json:"source_count"`
	SourceVideos    []string                      `json:"source_videos"`
	CrossReferences []string                      `json:"cross_references"`
}

// TopicVideo associates a topic with one video.
type TopicVideo struct {
	VideoID string `json:"video_id"`
}

// VerseIndex holds the verse-to-video maps of the study database.
type VerseIndex struct {
	Genesis1 map[string][]Video `json:"genesis1"`
	All      map[string][]Video `json:"all"`
}

// StudyDatabase is the root static content object, loaded once at startup
// from the bundled JSON asset and read-only for the lifetime of the process.
type StudyDatabase struct {
	Verses            VerseIndex                 `json:"verses"`
	VerseCommentaries map[string]VerseCommentary `json:"verse_commentaries"`
	Topics            map[string][]TopicVideo    `json:"topics"`
	CrossReferences   map[string][]string        `json:"cross_references"`
	Videos            []Video                    `json:"videos"`
}

// PlaybackWindow is the playback contract emitted when a clip is selected:
// seek to StartMS/1000 seconds and, if EndMS is set, pause at EndMS.
type PlaybackWindow struct {
	VideoID string `json:"video_id"`
	StartMS int64  `json:"start_ms"`
	EndMS   *int64 `json:"end_ms,omitempty"`
}

// Clip is a mention enriched with display and playback metadata.
type Clip struct {
	Mention       Mention        `json:"mention"`
	VideoID       string         `json:"video_id"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	Duration      string         `json:"duration,omitempty"`
	DisplayTitle  string         `json:"display_title"`
	Speaker       string         `json:"speaker,omitempty"`
	SpeakerAvatar string         `json:"speaker_avatar,omitempty"`
	Thumb         string         `json:"thumb,omitempty"`
	Series        string         `json:"series,omitempty"`
	Organization  string         `json:"organization,omitempty"`
	HasClipData   bool           `json:"has_clip_data"`
	Playback      PlaybackWindow `json:"playback"`
}

// Note is a user annotation attached to a verse.
type Note struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Attachment string `json:"attachment,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// Highlight is a user highlight color on a verse.
type Highlight struct {
	VerseRef string `json:"verse_ref"`
	Color    string `json:"color"`
}
