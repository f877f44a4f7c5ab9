package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/video-study-bible-api/pkg/bibletv"
)

func TestChapterFromUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Genesis 1", r.URL.Query().Get("query"))
		assert.Equal(t, "LUT", r.URL.Query().Get("translation"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"content": {
				"LUT": [
					{"type": "heading", "content": "Die Schöpfung"},
					{"type": "verse", "verse_number": 1, "content": "Am Anfang schuf Gott Himmel und Erde."},
					{"type": "verse", "verse_number": 2, "content": "Und die Erde war wüst und leer."}
				]
			}
		}`))
	}))
	defer srv.Close()

	svc := NewBibleTextService(bibletv.New(srv.URL, "test-key"), "LUT")
	resp := svc.Chapter(context.Background(), "Genesis", 1, "")

	assert.False(t, resp.Fallback)
	assert.Equal(t, "LUT", resp.Translation)
	require.Len(t, resp.Verses, 2)
	assert.Equal(t, "Am Anfang schuf Gott Himmel und Erde.", resp.Verses[1])
}

func TestChapterFallsBackOnUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewBibleTextService(bibletv.New(srv.URL, "test-key"), "LUT")
	resp := svc.Chapter(context.Background(), "Genesis", 1, "")

	assert.True(t, resp.Fallback)
	require.Len(t, resp.Verses, 31)
	assert.Equal(t, "Am Anfang schuf Gott Himmel und Erde.", resp.Verses[1])
	assert.Contains(t, resp.Verses[27], "zum Bilde Gottes")
}

func TestChapterFallsBackOnEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content": {}}`))
	}))
	defer srv.Close()

	svc := NewBibleTextService(bibletv.New(srv.URL, "test-key"), "LUT")
	resp := svc.Chapter(context.Background(), "1. Mose", 1, "")

	assert.True(t, resp.Fallback, "German book name resolves the bundled fallback too")
	assert.Len(t, resp.Verses, 31)
}

func TestChapterNoFallbackOutsideGenesisOne(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewBibleTextService(bibletv.New(srv.URL, "test-key"), "LUT")
	resp := svc.Chapter(context.Background(), "Exodus", 3, "")

	assert.True(t, resp.Fallback)
	assert.Empty(t, resp.Verses)
	assert.NotNil(t, resp.Verses)
}

func TestFallbackChapterText(t *testing.T) {
	assert.Len(t, fallbackChapterText("Genesis", 1), 31)
	assert.Len(t, fallbackChapterText("1. Mose", 1), 31)
	assert.Empty(t, fallbackChapterText("Genesis", 2))
	assert.Empty(t, fallbackChapterText("Johannes", 1))

	// callers get a copy, mutating it must not corrupt the bundled text
	verses := fallbackChapterText("Genesis", 1)
	verses[1] = "geändert"
	assert.Equal(t, "Am Anfang schuf Gott Himmel und Erde.", fallbackChapterText("Genesis", 1)[1])
}
