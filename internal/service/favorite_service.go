// Package service implements the favorites, playlists and association
// managers.
package service

import (
	"context"
	"errors"

	"favorites-svc/internal/domain"
	"favorites-svc/internal/repository"
	"favorites-svc/internal/resolver"
)

// FavoriteService manages favorite tracks.
type FavoriteService struct {
	repo     repository.FavoriteRepository
	resolver resolver.TrackResolver
}

// NewFavoriteService creates a favorite service.
func NewFavoriteService(repo repository.FavoriteRepository, resolver resolver.TrackResolver) *FavoriteService {
	return &FavoriteService{
		repo:     repo,
		resolver: resolver,
	}
}

// Create resolves the track through the metadata service and persists it as
// a favorite. The (title, artistName) pair must not already be favorited;
// the pre-check catches the common case and the unique index catches
// concurrent writers.
func (s *FavoriteService) Create(ctx context.Context, title, artistName string) (*domain.Favorite, error) {
	switch {
	case title == "" && artistName == "":
		return nil, domain.ErrMissingTrackFields
	case artistName == "":
		return nil, domain.ErrMissingArtistName
	case title == "":
		return nil, domain.ErrMissingTrackTitle
	}

	track, err := s.resolver.Resolve(ctx, title, artistName)
	if err != nil {
		if errors.Is(err, resolver.ErrNoMatch) {
			return nil, domain.ErrTrackNotFound
		}
		return nil, domain.ErrTrackLookupFailed.WithError(err)
	}

	exists, err := s.repo.ExistsByTitleArtist(ctx, track.Title, track.ArtistName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrFavoriteExists
	}

	genre := track.Genre
	if genre == "" {
		genre = domain.DefaultGenre
	}

	favorite := &domain.Favorite{
		Title:      track.Title,
		ArtistName: track.ArtistName,
		Genre:      genre,
		Rating:     track.Rating,
	}
	if err := s.repo.Create(ctx, favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

// List returns all favorites in insertion order. No favorites is an empty
// list, not an error.
func (s *FavoriteService) List(ctx context.Context) ([]*domain.Favorite, error) {
	favorites, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []*domain.Favorite{}
	}
	return favorites, nil
}

// GetByID returns a single favorite.
func (s *FavoriteService) GetByID(ctx context.Context, id int64) (*domain.Favorite, error) {
	favorite, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if favorite == nil {
		return nil, domain.ErrFavoriteTrackNotFound
	}
	return favorite, nil
}

// Delete removes a favorite and all of its playlist associations.
func (s *FavoriteService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrFavoriteTrackNotFound
	}
	return nil
}
