package models

// VerseSummary is one chapter verse with its video availability indicator.
type VerseSummary struct {
	Ref        string `json:"ref"`
	Number     int    `json:"number"`
	VideoCount int    `json:"video_count"`
}

// ChapterVersesResponse lists the verses of the active chapter.
type ChapterVersesResponse struct {
	Chapter string         `json:"chapter"`
	Verses  []VerseSummary `json:"verses"`
}

// ClipsResponse is the clip feed for one verse.
type ClipsResponse struct {
	Verse      string     `json:"verse"`
	Total      int        `json:"total"`
	Filtered   int        `json:"filtered"`
	Categories []Category `json:"categories"`
	Clips      []Clip     `json:"clips"`
}

// CommentaryResponse is the merged commentary for one verse. Commentary is
// nil when neither key variant has an entry.
type CommentaryResponse struct {
	Verse      string           `json:"verse"`
	Commentary *VerseCommentary `json:"commentary"`
}

// CrossRef is one resolved cross-reference target.
type CrossRef struct {
	Ref        string `json:"ref"`
	HasVideos  bool   `json:"has_videos"`
	VideoCount int    `json:"video_count,omitempty"`
}

// CrossRefGroup groups cross-references under one book label.
type CrossRefGroup struct {
	Book string     `json:"book"`
	Refs []CrossRef `json:"refs"`
}

// CrossRefsResponse is the grouped cross-reference resolution for one verse.
// VerseKnown distinguishes "no cross-references" from "verse not in corpus".
type CrossRefsResponse struct {
	Verse      string          `json:"verse"`
	VerseKnown bool            `json:"verse_known"`
	Total      int             `json:"total"`
	Groups     []CrossRefGroup `json:"groups"`
}

// TopicVerse is one covered verse inside a topic with its video count.
type TopicVerse struct {
	Ref        string `json:"ref"`
	VideoCount int    `json:"video_count"`
}

// TopicCoverage is one topic with the chapter verses its videos cover.
type TopicCoverage struct {
	Key        string       `json:"key"`
	Label      string       `json:"label"`
	VerseCount int          `json:"verse_count"`
	VideoCount int          `json:"video_count"`
	Verses     []TopicVerse `json:"verses"`
}

// TopicsResponse lists topics sorted by coverage.
type TopicsResponse struct {
	Topics []TopicCoverage `json:"topics"`
}

// SearchResult is one corpus search hit: a verse, a video, or a topic.
type SearchResult struct {
	Type  string `json:"type"`
	Ref   string `json:"ref"`
	Label string `json:"label"`
	Count int    `json:"count,omitempty"`
	Video *Video `json:"video,omitempty"`
}

// SearchResponse is the corpus search response.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

// ChatMessage is one turn of the running chat conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest asks the study assistant a question about the active verse.
type ChatRequest struct {
	Verse    string        `json:"verse"`
	Speaker  string        `json:"speaker,omitempty"`
	Messages []ChatMessage `json:"messages"`
}

// ChatResponse is the single assistant reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Speaker is one distinct teacher found in the corpus.
type Speaker struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// SpeakersResponse lists the distinct speakers for the chat filter.
type SpeakersResponse struct {
	Speakers []Speaker `json:"speakers"`
}

// ChapterTextResponse is the Bible text of one chapter. Fallback is true when
// the upstream Bible-text service failed and bundled text was served instead.
type ChapterTextResponse struct {
	Book        string         `json:"book"`
	Chapter     int            `json:"chapter"`
	Translation string         `json:"translation"`
	Verses      map[int]string `json:"verses"`
	Fallback    bool           `json:"fallback"`
}

// AddNoteRequest creates a note on a verse.
type AddNoteRequest struct {
	Text       string `json:"text"`
	Attachment string `json:"attachment,omitempty"`
}

// NotesResponse lists the notes of one verse.
type NotesResponse struct {
	Verse string `json:"verse"`
	Notes []Note `json:"notes"`
}

// SetHighlightRequest sets the highlight color of a verse.
type SetHighlightRequest struct {
	Color string `json:"color"`
}
