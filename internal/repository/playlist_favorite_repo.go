package repository

import (
	"context"

	"favorites-svc/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PlaylistFavoriteRepositoryImpl is the PostgreSQL association repository.
type PlaylistFavoriteRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewPlaylistFavoriteRepository creates an association repository.
func NewPlaylistFavoriteRepository(db *pgxpool.Pool) PlaylistFavoriteRepository {
	return &PlaylistFavoriteRepositoryImpl{db: db}
}

// Link inserts an association row and fills in the generated fields.
func (r *PlaylistFavoriteRepositoryImpl) Link(ctx context.Context, pf *domain.PlaylistFavorite) error {
	query := `
		INSERT INTO playlist_favorites (playlist_id, favorite_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, pf.PlaylistID, pf.FavoriteID).Scan(
		&pf.ID,
		&pf.CreatedAt,
		&pf.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return domain.ErrPlaylistFavoriteExists
		}
		return err
	}
	return nil
}

// Exists checks whether the (playlist, favorite) pair is already linked.
func (r *PlaylistFavoriteRepositoryImpl) Exists(ctx context.Context, playlistID, favoriteID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM playlist_favorites
			WHERE playlist_id = $1 AND favorite_id = $2
		)
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, playlistID, favoriteID).Scan(&exists)
	return exists, err
}

// Unlink removes the association row for the pair.
func (r *PlaylistFavoriteRepositoryImpl) Unlink(ctx context.Context, playlistID, favoriteID int64) (bool, error) {
	query := `DELETE FROM playlist_favorites WHERE playlist_id = $1 AND favorite_id = $2`
	tag, err := r.db.Exec(ctx, query, playlistID, favoriteID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListFavoritesByPlaylist returns the favorites linked to a playlist in
// ascending favorite id order.
func (r *PlaylistFavoriteRepositoryImpl) ListFavoritesByPlaylist(ctx context.Context, playlistID int64) ([]*domain.Favorite, error) {
	query := `
		SELECT f.id, f.title, f.artist_name, f.genre, f.rating
		FROM favorites f
		JOIN playlist_favorites pf ON pf.favorite_id = f.id
		WHERE pf.playlist_id = $1
		ORDER BY f.id ASC
	`
	rows, err := r.db.Query(ctx, query, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []*domain.Favorite
	for rows.Next() {
		var favorite domain.Favorite
		err := rows.Scan(
			&favorite.ID,
			&favorite.Title,
			&favorite.ArtistName,
			&favorite.Genre,
			&favorite.Rating,
		)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, &favorite)
	}
	return favorites, rows.Err()
}
