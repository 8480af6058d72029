// Package repository persists favorites, playlists and their associations
// in PostgreSQL.
package repository

import (
	"context"

	"favorites-svc/internal/domain"
)

// FavoriteRepository persists favorite tracks.
//
// Lookup methods return (nil, nil) when no row matches; the service layer
// decides which not-found error that maps to, since the message differs per
// route.
type FavoriteRepository interface {
	// Create inserts the favorite and fills in its generated id. A unique
	// violation on (title, artist_name) returns domain.ErrFavoriteExists.
	Create(ctx context.Context, favorite *domain.Favorite) error
	GetByID(ctx context.Context, id int64) (*domain.Favorite, error)
	// List returns all favorites in ascending id order.
	List(ctx context.Context) ([]*domain.Favorite, error)
	ExistsByTitleArtist(ctx context.Context, title, artistName string) (bool, error)
	// Delete removes the favorite and all its playlist associations in one
	// transaction. Returns false when the favorite does not exist.
	Delete(ctx context.Context, id int64) (bool, error)
}

// PlaylistRepository persists playlists.
type PlaylistRepository interface {
	// Create inserts the playlist and fills in its generated id and
	// timestamps. A unique violation on title returns domain.ErrPlaylistExists.
	Create(ctx context.Context, playlist *domain.Playlist) error
	GetByID(ctx context.Context, id int64) (*domain.Playlist, error)
	// List returns all playlists in ascending id order.
	List(ctx context.Context) ([]*domain.Playlist, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	// UpdateTitle sets a new title and bumps updated_at, returning the
	// updated row or (nil, nil) when the playlist does not exist.
	UpdateTitle(ctx context.Context, id int64, title string) (*domain.Playlist, error)
	// Delete removes the playlist and all its favorite associations in one
	// transaction. Returns false when the playlist does not exist.
	Delete(ctx context.Context, id int64) (bool, error)
}

// PlaylistFavoriteRepository persists the playlist-favorite join records.
type PlaylistFavoriteRepository interface {
	// Link inserts the association and fills in its generated id and
	// timestamps. A unique violation on (playlist_id, favorite_id) returns
	// domain.ErrPlaylistFavoriteExists.
	Link(ctx context.Context, pf *domain.PlaylistFavorite) error
	Exists(ctx context.Context, playlistID, favoriteID int64) (bool, error)
	// Unlink removes the association. Returns false when no such
	// association exists.
	Unlink(ctx context.Context, playlistID, favoriteID int64) (bool, error)
	// ListFavoritesByPlaylist returns the favorites associated with the
	// playlist in ascending favorite id order.
	ListFavoritesByPlaylist(ctx context.Context, playlistID int64) ([]*domain.Favorite, error)
}
