package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDatabase(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "study_bible_database.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOpen(t *testing.T) {
	path := writeDatabase(t, `{
		"verses": {
			"genesis1": {
				"Genesis 1:1": [
					{"video_id": "vid-1", "title": "a.mp4", "mentions": [{"timestamp": "1:15", "timestamp_ms": 75000}]}
				]
			},
			"all": {
				"Genesis 1:1": [{"video_id": "vid-1", "title": "a.mp4", "mentions": []}],
				"Johannes 1:1": [{"video_id": "vid-2", "title": "b.mp4", "mentions": []}]
			}
		},
		"verse_commentaries": {
			"Genesis 1:1": {"summary": "im Anfang", "source_count": 1}
		},
		"topics": {"creation": [{"video_id": "vid-1"}]},
		"cross_references": {"Genesis 1:1": ["John 1:1"]},
		"videos": [{"video_id": "vid-1", "title": "a.mp4", "mentions": []}]
	}`)

	s, err := Open(path)
	require.NoError(t, err)

	videos := s.ChapterVerses()["Genesis 1:1"]
	require.Len(t, videos, 1)
	assert.Equal(t, "vid-1", videos[0].VideoID)
	assert.Equal(t, int64(75000), videos[0].Mentions[0].TimestampMS)

	c, ok := s.Commentaries()["Genesis 1:1"]
	require.True(t, ok)
	assert.Equal(t, "im Anfang", c.Summary)

	verses, vids, commentaries := s.Stats()
	assert.Equal(t, 2, verses)
	assert.Equal(t, 1, vids)
	assert.Equal(t, 1, commentaries)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestOpenInvalidJSON(t *testing.T) {
	_, err := Open(writeDatabase(t, "not json"))
	assert.Error(t, err)
}

func TestOpenNormalizesMissingCollections(t *testing.T) {
	s, err := Open(writeDatabase(t, `{}`))
	require.NoError(t, err)

	assert.NotNil(t, s.ChapterVerses())
	assert.NotNil(t, s.AllVerses())
	assert.NotNil(t, s.Commentaries())
	assert.NotNil(t, s.Topics())
	assert.NotNil(t, s.CrossReferences())
}

func TestEmpty(t *testing.T) {
	s := Empty()
	assert.Empty(t, s.ChapterVerses())
	assert.Empty(t, s.Videos())
	verses, videos, commentaries := s.Stats()
	assert.Zero(t, verses+videos+commentaries)
}
