package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// MusixmatchClient resolves tracks through the Musixmatch track.search API.
type MusixmatchClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewMusixmatchClient creates a Musixmatch-backed resolver. The base URL is
// injected so tests can point the client at a stub server.
func NewMusixmatchClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *MusixmatchClient {
	return &MusixmatchClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// trackSearchResponse mirrors the subset of the track.search payload the
// service consumes.
type trackSearchResponse struct {
	Message struct {
		Body struct {
			TrackList []struct {
				Track struct {
					TrackName     string `json:"track_name"`
					ArtistName    string `json:"artist_name"`
					TrackRating   int    `json:"track_rating"`
					PrimaryGenres struct {
						MusicGenreList []struct {
							MusicGenre struct {
								MusicGenreName string `json:"music_genre_name"`
							} `json:"music_genre"`
						} `json:"music_genre_list"`
					} `json:"primary_genres"`
				} `json:"track"`
			} `json:"track_list"`
		} `json:"body"`
	} `json:"message"`
}

// Resolve searches for the track and returns the best match, ordered by
// artist rating. Returns ErrNoMatch when the result list is empty.
func (c *MusixmatchClient) Resolve(ctx context.Context, title, artistName string) (*Track, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("q_track", title)
	params.Set("q_artist", artistName)
	params.Set("s_artist_rating", "desc")

	endpoint := c.baseURL + "/track.search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create track search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("track search request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close response body", zap.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("track search returned status %d", resp.StatusCode)
	}

	var payload trackSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode track search response: %w", err)
	}

	list := payload.Message.Body.TrackList
	if len(list) == 0 {
		c.logger.Debug("No track match",
			zap.String("title", title),
			zap.String("artist", artistName),
		)
		return nil, ErrNoMatch
	}

	match := list[0].Track
	track := &Track{
		Title:      match.TrackName,
		ArtistName: match.ArtistName,
		Rating:     match.TrackRating,
	}
	if genres := match.PrimaryGenres.MusicGenreList; len(genres) > 0 {
		track.Genre = genres[0].MusicGenre.MusicGenreName
	}
	return track, nil
}
