package repository

import (
	"context"
	"errors"

	"favorites-svc/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PlaylistRepositoryImpl is the PostgreSQL playlist repository.
type PlaylistRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewPlaylistRepository creates a playlist repository.
func NewPlaylistRepository(db *pgxpool.Pool) PlaylistRepository {
	return &PlaylistRepositoryImpl{db: db}
}

// Create inserts a playlist with server-set timestamps and fills in the
// generated fields.
func (r *PlaylistRepositoryImpl) Create(ctx context.Context, playlist *domain.Playlist) error {
	query := `
		INSERT INTO playlists (title)
		VALUES ($1)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, playlist.Title).Scan(
		&playlist.ID,
		&playlist.CreatedAt,
		&playlist.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return domain.ErrPlaylistExists
		}
		return err
	}
	return nil
}

// GetByID returns a playlist by id, or (nil, nil) when absent.
func (r *PlaylistRepositoryImpl) GetByID(ctx context.Context, id int64) (*domain.Playlist, error) {
	query := `
		SELECT id, title, created_at, updated_at
		FROM playlists
		WHERE id = $1
	`
	var playlist domain.Playlist
	err := r.db.QueryRow(ctx, query, id).Scan(
		&playlist.ID,
		&playlist.Title,
		&playlist.CreatedAt,
		&playlist.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &playlist, nil
}

// List returns all playlists in ascending id order.
func (r *PlaylistRepositoryImpl) List(ctx context.Context) ([]*domain.Playlist, error) {
	query := `
		SELECT id, title, created_at, updated_at
		FROM playlists
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var playlists []*domain.Playlist
	for rows.Next() {
		var playlist domain.Playlist
		err := rows.Scan(
			&playlist.ID,
			&playlist.Title,
			&playlist.CreatedAt,
			&playlist.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, &playlist)
	}
	return playlists, rows.Err()
}

// ExistsByTitle checks whether a playlist with the given title exists.
func (r *PlaylistRepositoryImpl) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM playlists WHERE title = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, title).Scan(&exists)
	return exists, err
}

// UpdateTitle sets a new title, bumps updated_at and returns the updated
// row, or (nil, nil) when the playlist does not exist.
func (r *PlaylistRepositoryImpl) UpdateTitle(ctx context.Context, id int64, title string) (*domain.Playlist, error) {
	query := `
		UPDATE playlists
		SET title = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, title, created_at, updated_at
	`
	var playlist domain.Playlist
	err := r.db.QueryRow(ctx, query, id, title).Scan(
		&playlist.ID,
		&playlist.Title,
		&playlist.CreatedAt,
		&playlist.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if IsUniqueViolation(err) {
			return nil, domain.ErrPlaylistExists
		}
		return nil, err
	}
	return &playlist, nil
}

// Delete removes the playlist's favorite associations and then the playlist
// itself in one transaction. Referenced favorites are left intact.
func (r *PlaylistRepositoryImpl) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := execTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM playlist_favorites WHERE playlist_id = $1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
		if err != nil {
			return err
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
