package bibletv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchPassage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "Genesis 1", r.URL.Query().Get("query"))
		assert.Equal(t, "LUT", r.URL.Query().Get("translation"))
		assert.Equal(t, "test-key", r.Header.Get("X-API-KEY"))
		w.Write([]byte(`{
			"session": "sess-1",
			"content": {
				"LUT": [
					{"type": "heading", "content": "Die Schöpfung"},
					{"type": "verse", "verse_number": 1, "content": "Am Anfang"},
					{"type": "verse", "verse_number": 2, "content": "wüst und leer"}
				]
			}
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key")
	resp, err := c.FetchPassage(context.Background(), "Genesis 1", "LUT")
	require.NoError(t, err)

	verses := resp.Verses("LUT")
	require.Len(t, verses, 2, "non-verse items are skipped")
	assert.Equal(t, "Am Anfang", verses[1])
	assert.Empty(t, resp.Verses("ELB"))
}

func TestFetchPassageEchoesSession(t *testing.T) {
	var sessions []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessions = append(sessions, r.URL.Query().Get("session"))
		w.Write([]byte(`{"session": "sess-42", "content": {}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key")
	_, err := c.FetchPassage(context.Background(), "Genesis 1", "LUT")
	require.NoError(t, err)
	_, err = c.FetchPassage(context.Background(), "Genesis 2", "LUT")
	require.NoError(t, err)

	require.Len(t, sessions, 2)
	assert.Empty(t, sessions[0], "first call carries no session")
	assert.Equal(t, "sess-42", sessions[1])
}

func TestFetchPassageServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key")
	_, err := c.FetchPassage(context.Background(), "Genesis 1", "LUT")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestFetchPassageInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key")
	_, err := c.FetchPassage(context.Background(), "Genesis 1", "LUT")
	assert.Error(t, err)
}
