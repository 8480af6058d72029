package resolver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const searchResponse = `{
	"message": {
		"header": {"status_code": 200},
		"body": {
			"track_list": [
				{
					"track": {
						"track_name": "We Will Rock You",
						"artist_name": "Queen",
						"track_rating": 87,
						"primary_genres": {
							"music_genre_list": [
								{"music_genre": {"music_genre_name": "Rock"}}
							]
						}
					}
				},
				{
					"track": {
						"track_name": "We Will Rock You (Live)",
						"artist_name": "Queen",
						"track_rating": 64,
						"primary_genres": {"music_genre_list": []}
					}
				}
			]
		}
	}
}`

func TestResolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/track.search", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "test-key", query.Get("apikey"))
		assert.Equal(t, "We Will Rock You", query.Get("q_track"))
		assert.Equal(t, "Queen", query.Get("q_artist"))
		assert.Equal(t, "desc", query.Get("s_artist_rating"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchResponse))
	}))
	defer server.Close()

	client := NewMusixmatchClient(server.URL, "test-key", time.Second, zap.NewNop())

	track, err := client.Resolve(context.Background(), "We Will Rock You", "Queen")

	require.NoError(t, err)
	assert.Equal(t, "We Will Rock You", track.Title)
	assert.Equal(t, "Queen", track.ArtistName)
	assert.Equal(t, "Rock", track.Genre)
	assert.Equal(t, 87, track.Rating)
}

func TestResolve_NoGenre(t *testing.T) {
	payload := `{"message":{"body":{"track_list":[{"track":{"track_name":"Obscure","artist_name":"Nobody","track_rating":12,"primary_genres":{"music_genre_list":[]}}}]}}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	client := NewMusixmatchClient(server.URL, "test-key", time.Second, zap.NewNop())

	track, err := client.Resolve(context.Background(), "Obscure", "Nobody")

	require.NoError(t, err)
	assert.Empty(t, track.Genre)
	assert.Equal(t, 12, track.Rating)
}

func TestResolve_NoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":{"body":{"track_list":[]}}}`))
	}))
	defer server.Close()

	client := NewMusixmatchClient(server.URL, "test-key", time.Second, zap.NewNop())

	track, err := client.Resolve(context.Background(), "Not a Song", "Not an Artist")

	assert.Nil(t, track)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestResolve_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewMusixmatchClient(server.URL, "test-key", time.Second, zap.NewNop())

	track, err := client.Resolve(context.Background(), "We Will Rock You", "Queen")

	assert.Nil(t, track)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoMatch)
}

func TestResolve_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewMusixmatchClient(server.URL, "test-key", time.Second, zap.NewNop())

	track, err := client.Resolve(context.Background(), "We Will Rock You", "Queen")

	assert.Nil(t, track)
	assert.Error(t, err)
}
