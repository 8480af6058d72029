package repository

import (
	"context"
	"errors"

	"favorites-svc/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FavoriteRepositoryImpl is the PostgreSQL favorite repository.
type FavoriteRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewFavoriteRepository creates a favorite repository.
func NewFavoriteRepository(db *pgxpool.Pool) FavoriteRepository {
	return &FavoriteRepositoryImpl{db: db}
}

// Create inserts a favorite and fills in its generated id.
func (r *FavoriteRepositoryImpl) Create(ctx context.Context, favorite *domain.Favorite) error {
	query := `
		INSERT INTO favorites (title, artist_name, genre, rating)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		favorite.Title,
		favorite.ArtistName,
		favorite.Genre,
		favorite.Rating,
	).Scan(&favorite.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return domain.ErrFavoriteExists
		}
		return err
	}
	return nil
}

// GetByID returns a favorite by id, or (nil, nil) when absent.
func (r *FavoriteRepositoryImpl) GetByID(ctx context.Context, id int64) (*domain.Favorite, error) {
	query := `
		SELECT id, title, artist_name, genre, rating
		FROM favorites
		WHERE id = $1
	`
	var favorite domain.Favorite
	err := r.db.QueryRow(ctx, query, id).Scan(
		&favorite.ID,
		&favorite.Title,
		&favorite.ArtistName,
		&favorite.Genre,
		&favorite.Rating,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

// List returns all favorites in insertion order.
func (r *FavoriteRepositoryImpl) List(ctx context.Context) ([]*domain.Favorite, error) {
	query := `
		SELECT id, title, artist_name, genre, rating
		FROM favorites
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query)
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

// ExistsByTitleArtist checks whether a favorite with the given title and
// artist pair already exists.
func (r *FavoriteRepositoryImpl) ExistsByTitleArtist(ctx context.Context, title, artistName string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM favorites
			WHERE title = $1 AND artist_name = $2
		)
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, title, artistName).Scan(&exists)
	return exists, err
}

// Delete removes the favorite's playlist associations and then the favorite
// itself in one transaction.
func (r *FavoriteRepositoryImpl) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := execTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM playlist_favorites WHERE favorite_id = $1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM favorites WHERE id = $1`, id)
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
