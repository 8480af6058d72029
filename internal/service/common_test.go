package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"favorites-svc/internal/domain"
	"favorites-svc/internal/resolver"
)

// MockFavoriteRepository mocks repository.FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) GetByID(ctx context.Context, id int64) (*domain.Favorite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) List(ctx context.Context) ([]*domain.Favorite, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) ExistsByTitleArtist(ctx context.Context, title, artistName string) (bool, error) {
	args := m.Called(ctx, title, artistName)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockPlaylistRepository mocks repository.PlaylistRepository.
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) GetByID(ctx context.Context, id int64) (*domain.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) List(ctx context.Context) ([]*domain.Playlist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	args := m.Called(ctx, title)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistRepository) UpdateTitle(ctx context.Context, id int64, title string) (*domain.Playlist, error) {
	args := m.Called(ctx, id, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockPlaylistFavoriteRepository mocks repository.PlaylistFavoriteRepository.
type MockPlaylistFavoriteRepository struct {
	mock.Mock
}

func (m *MockPlaylistFavoriteRepository) Link(ctx context.Context, pf *domain.PlaylistFavorite) error {
	args := m.Called(ctx, pf)
	return args.Error(0)
}

func (m *MockPlaylistFavoriteRepository) Exists(ctx context.Context, playlistID, favoriteID int64) (bool, error) {
	args := m.Called(ctx, playlistID, favoriteID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistFavoriteRepository) Unlink(ctx context.Context, playlistID, favoriteID int64) (bool, error) {
	args := m.Called(ctx, playlistID, favoriteID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistFavoriteRepository) ListFavoritesByPlaylist(ctx context.Context, playlistID int64) ([]*domain.Favorite, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Favorite), args.Error(1)
}

// MockTrackResolver mocks resolver.TrackResolver.
type MockTrackResolver struct {
	mock.Mock
}

func (m *MockTrackResolver) Resolve(ctx context.Context, title, artistName string) (*resolver.Track, error) {
	args := m.Called(ctx, title, artistName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resolver.Track), args.Error(1)
}
