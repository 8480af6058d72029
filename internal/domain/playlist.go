package domain

import "time"

// Playlist is a named, user-created collection of favorites.
type Playlist struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PlaylistDetail is a playlist annotated with aggregates over its
// associated favorites.
type PlaylistDetail struct {
	Playlist
	SongCount     int         `json:"songCount"`
	SongAvgRating float64     `json:"songAvgRating"`
	Favorites     []*Favorite `json:"favorites"`
}

// NewPlaylistDetail annotates a playlist with its favorites, song count and
// average rating. A playlist with no favorites has an average rating of 0.
func NewPlaylistDetail(p *Playlist, favorites []*Favorite) *PlaylistDetail {
	if favorites == nil {
		favorites = []*Favorite{}
	}
	detail := &PlaylistDetail{
		Playlist:  *p,
		SongCount: len(favorites),
		Favorites: favorites,
	}
	if detail.SongCount > 0 {
		var sum int
		for _, f := range favorites {
			sum += f.Rating
		}
		detail.SongAvgRating = float64(sum) / float64(detail.SongCount)
	}
	return detail
}
