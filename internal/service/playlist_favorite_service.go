package service

import (
	"context"
	"fmt"

	"favorites-svc/internal/domain"
	"favorites-svc/internal/repository"
)

// PlaylistFavoriteService manages the playlist-favorite associations.
type PlaylistFavoriteService struct {
	playlistRepo repository.PlaylistRepository
	favoriteRepo repository.FavoriteRepository
	pfRepo       repository.PlaylistFavoriteRepository
}

// NewPlaylistFavoriteService creates an association service.
func NewPlaylistFavoriteService(
	playlistRepo repository.PlaylistRepository,
	favoriteRepo repository.FavoriteRepository,
	pfRepo repository.PlaylistFavoriteRepository,
) *PlaylistFavoriteService {
	return &PlaylistFavoriteService{
		playlistRepo: playlistRepo,
		favoriteRepo: favoriteRepo,
		pfRepo:       pfRepo,
	}
}

// Link associates a favorite with a playlist and returns the confirmation
// message. The not-found message distinguishes whether the playlist, the
// favorite, or both are missing.
func (s *PlaylistFavoriteService) Link(ctx context.Context, playlistID, favoriteID int64) (string, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return "", err
	}
	favorite, err := s.favoriteRepo.GetByID(ctx, favoriteID)
	if err != nil {
		return "", err
	}

	switch {
	case playlist == nil && favorite == nil:
		return "", domain.ErrPlaylistOrFavoriteNotFound
	case playlist == nil:
		return "", domain.ErrPlaylistNotFound
	case favorite == nil:
		return "", domain.ErrFavoriteNotFound
	}

	linked, err := s.pfRepo.Exists(ctx, playlistID, favoriteID)
	if err != nil {
		return "", err
	}
	if linked {
		return "", domain.ErrPlaylistFavoriteExists
	}

	pf := &domain.PlaylistFavorite{
		PlaylistID: playlistID,
		FavoriteID: favoriteID,
	}
	if err := s.pfRepo.Link(ctx, pf); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s has been added to %s!", favorite.Title, playlist.Title), nil
}

// Unlink removes the association between a favorite and a playlist. Checks
// run playlist first, then favorite, then the association itself, so the
// error message reflects the first missing piece.
func (s *PlaylistFavoriteService) Unlink(ctx context.Context, playlistID, favoriteID int64) error {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist == nil {
		return domain.ErrPlaylistNotFound
	}

	favorite, err := s.favoriteRepo.GetByID(ctx, favoriteID)
	if err != nil {
		return err
	}
	if favorite == nil {
		return domain.ErrFavoriteNotFound
	}

	unlinked, err := s.pfRepo.Unlink(ctx, playlistID, favoriteID)
	if err != nil {
		return err
	}
	if !unlinked {
		return domain.ErrPlaylistFavoriteNotFound
	}
	return nil
}
