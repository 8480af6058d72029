package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"favorites-svc/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Create(ctx context.Context, title, artistName string) (*domain.Favorite, error) {
	args := m.Called(ctx, title, artistName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Favorite), args.Error(1)
}

func (m *MockFavoriteService) List(ctx context.Context) ([]*domain.Favorite, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Favorite), args.Error(1)
}

func (m *MockFavoriteService) GetByID(ctx context.Context, id int64) (*domain.Favorite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Favorite), args.Error(1)
}

func (m *MockFavoriteService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPlaylistService struct {
	mock.Mock
}

func (m *MockPlaylistService) Create(ctx context.Context, title string) (*domain.Playlist, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistService) List(ctx context.Context) ([]*domain.PlaylistDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PlaylistDetail), args.Error(1)
}

func (m *MockPlaylistService) GetByID(ctx context.Context, id int64) (*domain.PlaylistDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlaylistDetail), args.Error(1)
}

func (m *MockPlaylistService) UpdateTitle(ctx context.Context, id int64, title string) (*domain.Playlist, error) {
	args := m.Called(ctx, id, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPlaylistFavoriteService struct {
	mock.Mock
}

func (m *MockPlaylistFavoriteService) Link(ctx context.Context, playlistID, favoriteID int64) (string, error) {
	args := m.Called(ctx, playlistID, favoriteID)
	return args.String(0), args.Error(1)
}

func (m *MockPlaylistFavoriteService) Unlink(ctx context.Context, playlistID, favoriteID int64) error {
	args := m.Called(ctx, playlistID, favoriteID)
	return args.Error(0)
}

// perform runs a request against the router and returns the recorder.
func perform(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeErrorBody asserts the uniform error shape and returns it.
func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
