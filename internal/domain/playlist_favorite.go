package domain

import "time"

// PlaylistFavorite links one favorite to one playlist. It is a pure
// relationship record referencing both parents by key.
type PlaylistFavorite struct {
	ID         int64     `json:"id"`
	PlaylistID int64     `json:"playlist_id"`
	FavoriteID int64     `json:"favorite_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
