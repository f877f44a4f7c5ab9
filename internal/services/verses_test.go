package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/internal/repository/studyjson"
	"github.com/video-study-bible-api/internal/store"
)

func TestChapterVerses(t *testing.T) {
	s := store.New(models.StudyDatabase{
		Verses: models.VerseIndex{
			Genesis1: map[string][]models.Video{
				"Genesis 1:1": {{VideoID: "vid-1"}},
				"1. Mose 1:1": {{VideoID: "vid-2"}},
				"Genesis 1:3": {{VideoID: "vid-3"}, {VideoID: "vid-4"}},
			},
		},
	})
	svc := NewVerseService(studyjson.NewContentRepository(s))

	resp := svc.ChapterVerses()
	assert.Equal(t, "Genesis 1", resp.Chapter)
	require.Len(t, resp.Verses, 31)

	assert.Equal(t, "Genesis 1:1", resp.Verses[0].Ref)
	assert.Equal(t, 1, resp.Verses[0].Number)
	assert.Equal(t, 2, resp.Verses[0].VideoCount, "both key variants count")
	assert.Equal(t, 2, resp.Verses[2].VideoCount)
	assert.Zero(t, resp.Verses[1].VideoCount)
	assert.Equal(t, 31, resp.Verses[30].Number)
}
