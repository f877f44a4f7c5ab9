package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/internal/repository/studyjson"
	"github.com/video-study-bible-api/internal/store"
)

func TestMergeCommentariesNilIdentities(t *testing.T) {
	c := &models.VerseCommentary{Summary: "nur einer"}
	assert.Nil(t, MergeCommentaries(nil, nil))
	assert.Same(t, c, MergeCommentaries(c, nil))
	assert.Same(t, c, MergeCommentaries(nil, c))
}

func TestMergeCommentaries(t *testing.T) {
	a := &models.VerseCommentary{
		Summary: "",
		Categories: map[models.Category][]models.CommentaryItem{
			models.CategoryTheologisch: {{Text: "a1"}, {Text: "a2"}},
		},
		SourceCount:     2,
		SourceVideos:    []string{"vid-1", "vid-2"},
		CrossReferences: []string{"Johannes 1:1", "Hebräer 1:3"},
	}
	b := &models.VerseCommentary{
		Summary: "deutsche Zusammenfassung",
		Categories: map[models.Category][]models.CommentaryItem{
			models.CategoryTheologisch: {{Text: "b1"}},
			models.CategoryAnwendung:   {{Text: "b2"}},
		},
		SourceCount:     3,
		SourceVideos:    []string{"vid-2", "vid-3"},
		CrossReferences: []string{"Hebräer 1:3", "Kolosser 1:16"},
	}

	merged := MergeCommentaries(a, b)
	require.NotNil(t, merged)

	// empty first summary falls through to the second
	assert.Equal(t, "deutsche Zusammenfassung", merged.Summary)
	assert.Equal(t, 5, merged.SourceCount)

	// key-wise concatenation, a's items first, no intra-category dedup
	require.Len(t, merged.Categories[models.CategoryTheologisch], 3)
	assert.Equal(t, "a1", merged.Categories[models.CategoryTheologisch][0].Text)
	assert.Equal(t, "b1", merged.Categories[models.CategoryTheologisch][2].Text)
	assert.Len(t, merged.Categories[models.CategoryAnwendung], 1)

	// ordered set union
	assert.Equal(t, []string{"vid-1", "vid-2", "vid-3"}, merged.SourceVideos)
	assert.Equal(t, []string{"Johannes 1:1", "Hebräer 1:3", "Kolosser 1:16"}, merged.CrossReferences)
}

func TestMergeCommentariesFirstSummaryWins(t *testing.T) {
	a := &models.VerseCommentary{Summary: "englische Zusammenfassung", SourceCount: 1}
	b := &models.VerseCommentary{Summary: "deutsche Zusammenfassung", SourceCount: 1}
	assert.Equal(t, "englische Zusammenfassung", MergeCommentaries(a, b).Summary)
}

func TestCommentaryForVerseMergesKeyVariants(t *testing.T) {
	db := models.StudyDatabase{
		VerseCommentaries: map[string]models.VerseCommentary{
			"Genesis 1:27": {Summary: "imago dei", SourceCount: 1, SourceVideos: []string{"vid-1"}},
			"1. Mose 1:27": {Summary: "Ebenbild Gottes", SourceCount: 2, SourceVideos: []string{"vid-2"}},
		},
	}
	svc := NewCommentaryService(studyjson.NewContentRepository(store.New(db)))

	merged := svc.ForVerse("Genesis 1:27")
	require.NotNil(t, merged)
	assert.Equal(t, "imago dei", merged.Summary)
	assert.Equal(t, 3, merged.SourceCount)
	assert.Equal(t, []string{"vid-1", "vid-2"}, merged.SourceVideos)

	// same result regardless of which variant is asked for, modulo ordering
	fromGerman := svc.ForVerse("1. Mose 1:27")
	require.NotNil(t, fromGerman)
	assert.Equal(t, "Ebenbild Gottes", fromGerman.Summary)
	assert.Equal(t, 3, fromGerman.SourceCount)
}

func TestCommentaryForVerseAlternateKeyOnly(t *testing.T) {
	db := models.StudyDatabase{
		VerseCommentaries: map[string]models.VerseCommentary{
			"1. Mose 1:3": {Summary: "es werde Licht", SourceCount: 1},
		},
	}
	svc := NewCommentaryService(studyjson.NewContentRepository(store.New(db)))

	c := svc.ForVerse("Genesis 1:3")
	require.NotNil(t, c)
	assert.Equal(t, "es werde Licht", c.Summary)

	assert.Nil(t, svc.ForVerse("Genesis 1:4"))
}
