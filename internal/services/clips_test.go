package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/internal/repository/studyjson"
	"github.com/video-study-bible-api/internal/store"
)

func ms(v int64) *int64 { return &v }

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"strips extension and id", "Schoepfung_Teil_1_1234567.mp4", "Schoepfung Teil 1"},
		{"extension case insensitive", "Predigt.MP4", "Predigt"},
		{"short id suffix kept", "Teil_1234", "Teil 1234"},
		{"plain title untouched", "Im Anfang", "Im Anfang"},
		{
			"truncates at word boundary",
			"Die_Schoepfungsgeschichte_und_ihre_Bedeutung_fuer_die_Gemeinde_heute",
			"Die Schoepfungsgeschichte und ihre Bedeutung fuer die",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanTitle(tt.input))
		})
	}
}

func TestBuildClipsDeduplicatesByTimestamp(t *testing.T) {
	videos := []models.Video{{
		VideoID: "vid-1",
		Title:   "Schoepfung_1234567.mp4",
		Mentions: []models.Mention{
			{Timestamp: "1:15", TimestampMS: 75000, Context: "erste Erwähnung"},
			{Timestamp: "1:15", TimestampMS: 75000, Context: "Duplikat"},
			{Timestamp: "2:30", TimestampMS: 150000, Context: "zweite Erwähnung"},
		},
	}}

	clips := BuildClips(videos)
	require.Len(t, clips, 2)
	assert.Equal(t, "1:15", clips[0].Mention.Timestamp)
	assert.Equal(t, "erste Erwähnung", clips[0].Description)
	assert.Equal(t, "2:30", clips[1].Mention.Timestamp)
}

func TestBuildClipsKeepsDuplicateTimestampsAcrossVideos(t *testing.T) {
	videos := []models.Video{
		{VideoID: "vid-1", Title: "a.mp4", Mentions: []models.Mention{{Timestamp: "1:15"}}},
		{VideoID: "vid-2", Title: "b.mp4", Mentions: []models.Mention{{Timestamp: "1:15"}}},
	}
	assert.Len(t, BuildClips(videos), 2)
}

func TestBuildClipsSortsBoundedFirstStable(t *testing.T) {
	videos := []models.Video{{
		VideoID: "vid-1",
		Title:   "a.mp4",
		Mentions: []models.Mention{
			{Timestamp: "0:10", TimestampMS: 10000},
			{Timestamp: "0:20", TimestampMS: 20000, ClipStartMS: ms(20000), ClipEndMS: ms(50000)},
			{Timestamp: "0:30", TimestampMS: 30000},
			{Timestamp: "0:40", TimestampMS: 40000, ClipStartMS: ms(40000), ClipEndMS: ms(95000)},
		},
	}}

	clips := BuildClips(videos)
	require.Len(t, clips, 4)
	// bounded clips first, each group in original order
	assert.Equal(t, "0:20", clips[0].Mention.Timestamp)
	assert.Equal(t, "0:40", clips[1].Mention.Timestamp)
	assert.Equal(t, "0:10", clips[2].Mention.Timestamp)
	assert.Equal(t, "0:30", clips[3].Mention.Timestamp)
}

func TestBuildClipPlaybackAndDuration(t *testing.T) {
	videos := []models.Video{{
		VideoID: "vid-1",
		Title:   "a.mp4",
		Mentions: []models.Mention{
			{Timestamp: "0:20", TimestampMS: 20000, ClipStartMS: ms(18000), ClipEndMS: ms(95000)},
			{Timestamp: "5:00", TimestampMS: 300000},
		},
	}}

	clips := BuildClips(videos)
	require.Len(t, clips, 2)

	bounded := clips[0]
	assert.True(t, bounded.HasClipData)
	assert.Equal(t, "1:17", bounded.Duration)
	assert.Equal(t, int64(18000), bounded.Playback.StartMS)
	require.NotNil(t, bounded.Playback.EndMS)
	assert.Equal(t, int64(95000), *bounded.Playback.EndMS)

	unbounded := clips[1]
	assert.False(t, unbounded.HasClipData)
	assert.Empty(t, unbounded.Duration)
	assert.Equal(t, int64(300000), unbounded.Playback.StartMS)
	assert.Nil(t, unbounded.Playback.EndMS)
}

func TestBuildClipTitleFallbacks(t *testing.T) {
	videos := []models.Video{{
		VideoID: "vid-1",
		Title:   "Schoepfung_Teil_1_1234567.mp4",
		Mentions: []models.Mention{
			{Timestamp: "0:10", ClipTitle: "Der Anfang", ClipDescription: "Einleitung"},
			{Timestamp: "0:20", Context: "nur Kontext"},
		},
	}}

	clips := BuildClips(videos)
	require.Len(t, clips, 2)
	assert.Equal(t, "Der Anfang", clips[0].Title)
	assert.Equal(t, "Einleitung", clips[0].Description)
	assert.Equal(t, "Schoepfung Teil 1", clips[1].Title)
	assert.Equal(t, "nur Kontext", clips[1].Description)
	assert.Equal(t, "Schoepfung Teil 1", clips[1].DisplayTitle)
}

func TestFilterByCategory(t *testing.T) {
	clips := []models.Clip{
		{Mention: models.Mention{Category: models.CategoryTheologisch}},
		{Mention: models.Mention{Category: models.CategoryAnwendung}},
		{Mention: models.Mention{}},
	}

	assert.Len(t, FilterByCategory(clips, ""), 3)
	assert.Len(t, FilterByCategory(clips, models.CategoryTheologisch), 1)
	assert.Empty(t, FilterByCategory(clips, models.CategoryChristologisch))
}

func TestFilterByQuery(t *testing.T) {
	clips := []models.Clip{
		{DisplayTitle: "Die Schöpfung", Speaker: "Roger Liebi"},
		{Mention: models.Mention{Context: "Gott schuf Himmel und Erde"}},
		{Mention: models.Mention{ClipDescription: "Exegese von Vers 1"}},
	}

	assert.Len(t, FilterByQuery(clips, ""), 3)
	assert.Len(t, FilterByQuery(clips, "  "), 3)
	assert.Len(t, FilterByQuery(clips, "liebi"), 1)
	assert.Len(t, FilterByQuery(clips, "SCHUF"), 1)
	assert.Len(t, FilterByQuery(clips, "exegese"), 1)
	assert.Empty(t, FilterByQuery(clips, "unbekannt"))
}

func TestClipsForVerseMergesVariantsAndReportsTotals(t *testing.T) {
	db := models.StudyDatabase{
		Verses: models.VerseIndex{
			Genesis1: map[string][]models.Video{
				"Genesis 1:1": {{
					VideoID: "vid-1",
					Title:   "a.mp4",
					Mentions: []models.Mention{
						{Timestamp: "0:10", Category: models.CategoryTheologisch, Context: "Licht"},
					},
				}},
				"1. Mose 1:1": {{
					VideoID: "vid-2",
					Title:   "b.mp4",
					Mentions: []models.Mention{
						{Timestamp: "0:20", Category: models.CategoryAnwendung, Context: "Alltag"},
					},
				}},
			},
		},
	}
	svc := NewClipService(studyjson.NewContentRepository(store.New(db)))

	resp := svc.ClipsForVerse("Genesis 1:1", "", "")
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 2, resp.Filtered)
	assert.Equal(t, []models.Category{models.CategoryTheologisch, models.CategoryAnwendung}, resp.Categories)

	filtered := svc.ClipsForVerse("Genesis 1:1", models.CategoryAnwendung, "")
	assert.Equal(t, 2, filtered.Total)
	assert.Equal(t, 1, filtered.Filtered)
	// category chips still describe the unfiltered feed
	assert.Len(t, filtered.Categories, 2)

	empty := svc.ClipsForVerse("Genesis 99:99", "", "")
	assert.Zero(t, empty.Total)
	assert.NotNil(t, empty.Clips)
}
