package service

import (
	"context"

	"favorites-svc/internal/domain"
	"favorites-svc/internal/repository"
)

// PlaylistService manages playlists and their aggregates.
type PlaylistService struct {
	playlistRepo repository.PlaylistRepository
	pfRepo       repository.PlaylistFavoriteRepository
}

// NewPlaylistService creates a playlist service.
func NewPlaylistService(playlistRepo repository.PlaylistRepository, pfRepo repository.PlaylistFavoriteRepository) *PlaylistService {
	return &PlaylistService{
		playlistRepo: playlistRepo,
		pfRepo:       pfRepo,
	}
}

// Create persists a new playlist. The title must be unique; the pre-check
// catches the common case and the unique index catches concurrent writers.
func (s *PlaylistService) Create(ctx context.Context, title string) (*domain.Playlist, error) {
	if title == "" {
		return nil, domain.ErrMissingPlaylistTitle
	}

	exists, err := s.playlistRepo.ExistsByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrPlaylistExists
	}

	playlist := &domain.Playlist{Title: title}
	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// List returns all playlists in ascending id order, each annotated with its
// favorites, song count and average rating.
func (s *PlaylistService) List(ctx context.Context) ([]*domain.PlaylistDetail, error) {
	playlists, err := s.playlistRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]*domain.PlaylistDetail, 0, len(playlists))
	for _, playlist := range playlists {
		favorites, err := s.pfRepo.ListFavoritesByPlaylist(ctx, playlist.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, domain.NewPlaylistDetail(playlist, favorites))
	}
	return details, nil
}

// GetByID returns a single annotated playlist.
func (s *PlaylistService) GetByID(ctx context.Context, id int64) (*domain.PlaylistDetail, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, domain.ErrPlaylistNotFound
	}

	favorites, err := s.pfRepo.ListFavoritesByPlaylist(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.NewPlaylistDetail(playlist, favorites), nil
}

// UpdateTitle renames a playlist and bumps its updated timestamp. The new
// title is not pre-checked against other playlists; a store-level collision
// still surfaces as the conflict error.
func (s *PlaylistService) UpdateTitle(ctx context.Context, id int64, title string) (*domain.Playlist, error) {
	if title == "" {
		return nil, domain.ErrMissingNewPlaylistTitle
	}

	playlist, err := s.playlistRepo.UpdateTitle(ctx, id, title)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, domain.ErrPlaylistNotFound
	}
	return playlist, nil
}

// Delete removes a playlist and all of its favorite associations. The
// favorites themselves are left intact.
func (s *PlaylistService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.playlistRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrPlaylistNotFound
	}
	return nil
}
