package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"favorites-svc/internal/domain"
)

func playlistFavoriteRouter(svc PlaylistFavoriteService) *gin.Engine {
	h := NewPlaylistFavoriteHandler(svc)
	router := gin.New()
	router.POST("/api/v1/playlists/:playlistId/favorites/:favoriteId", h.LinkFavorite)
	router.DELETE("/api/v1/playlists/:playlistId/favorites/:favoriteId", h.UnlinkFavorite)
	return router
}

func TestLinkFavoriteRoute(t *testing.T) {
	svc := new(MockPlaylistFavoriteService)
	router := playlistFavoriteRouter(svc)

	svc.On("Link", mock.Anything, int64(1), int64(2)).
		Return("Shake It Off has been added to Jogging Jams!", nil)

	w := perform(router, http.MethodPost, "/api/v1/playlists/1/favorites/2", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"Success":"Shake It Off has been added to Jogging Jams!"}`, w.Body.String())
}

func TestLinkFavoriteRoute_AlreadyLinked(t *testing.T) {
	svc := new(MockPlaylistFavoriteService)
	router := playlistFavoriteRouter(svc)

	svc.On("Link", mock.Anything, int64(1), int64(2)).
		Return("", domain.ErrPlaylistFavoriteExists)

	w := perform(router, http.MethodPost, "/api/v1/playlists/1/favorites/2", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decodeErrorBody(t, w)
	assert.Equal(t, "That favorite has already been added to that playlist!", body.ErrorMessage)
}

func TestLinkFavoriteRoute_NonNumericIDs(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		message string
	}{
		{
			name:    "both ids bad",
			path:    "/api/v1/playlists/abc/favorites/xyz",
			message: "No playlist or favorite with given IDs were found. Please check the IDs and try again.",
		},
		{
			name:    "playlist id bad",
			path:    "/api/v1/playlists/abc/favorites/2",
			message: "No playlist with given ID was found. Please check the ID and try again.",
		},
		{
			name:    "favorite id bad",
			path:    "/api/v1/playlists/1/favorites/xyz",
			message: "No favorite with given ID was found. Please check the ID and try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockPlaylistFavoriteService)
			router := playlistFavoriteRouter(svc)

			w := perform(router, http.MethodPost, tt.path, nil)

			assert.Equal(t, http.StatusNotFound, w.Code)
			body := decodeErrorBody(t, w)
			assert.Equal(t, tt.message, body.ErrorMessage)
			svc.AssertNotCalled(t, "Link", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUnlinkFavoriteRoute(t *testing.T) {
	svc := new(MockPlaylistFavoriteService)
	router := playlistFavoriteRouter(svc)

	svc.On("Unlink", mock.Anything, int64(1), int64(2)).Return(nil)

	w := perform(router, http.MethodDelete, "/api/v1/playlists/1/favorites/2", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestUnlinkFavoriteRoute_PlaylistReportedFirst(t *testing.T) {
	svc := new(MockPlaylistFavoriteService)
	router := playlistFavoriteRouter(svc)

	w := perform(router, http.MethodDelete, "/api/v1/playlists/abc/favorites/xyz", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeErrorBody(t, w)
	assert.Equal(t, "No playlist with given ID was found. Please check the ID and try again.", body.ErrorMessage)
	svc.AssertNotCalled(t, "Unlink", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnlinkFavoriteRoute_AssociationMissing(t *testing.T) {
	svc := new(MockPlaylistFavoriteService)
	router := playlistFavoriteRouter(svc)

	svc.On("Unlink", mock.Anything, int64(1), int64(2)).
		Return(domain.ErrPlaylistFavoriteNotFound)

	w := perform(router, http.MethodDelete, "/api/v1/playlists/1/favorites/2", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeErrorBody(t, w)
	assert.Equal(t, "No playlist favorite was found. Please check the ID and try again.", body.ErrorMessage)
}
