package handler

import (
	"context"
	"net/http"
	"strconv"

	"favorites-svc/internal/domain"

	"github.com/gin-gonic/gin"
)

// PlaylistFavoriteService is the association manager surface the handler
// consumes.
type PlaylistFavoriteService interface {
	Link(ctx context.Context, playlistID, favoriteID int64) (string, error)
	Unlink(ctx context.Context, playlistID, favoriteID int64) error
}

// PlaylistFavoriteHandler serves the /playlists/:playlistId/favorites/:favoriteId routes.
type PlaylistFavoriteHandler struct {
	service PlaylistFavoriteService
}

// NewPlaylistFavoriteHandler creates an association handler.
func NewPlaylistFavoriteHandler(service PlaylistFavoriteService) *PlaylistFavoriteHandler {
	return &PlaylistFavoriteHandler{service: service}
}

// linkParams parses both path ids. Unparsable ids read as entities that do
// not exist, so the combined not-found message covers them.
func linkParams(c *gin.Context) (playlistID, favoriteID int64, err error) {
	playlistID, pErr := strconv.ParseInt(c.Param("playlistId"), 10, 64)
	favoriteID, fErr := strconv.ParseInt(c.Param("favoriteId"), 10, 64)
	switch {
	case pErr != nil && fErr != nil:
		return 0, 0, domain.ErrPlaylistOrFavoriteNotFound
	case pErr != nil:
		return 0, 0, domain.ErrPlaylistNotFound
	case fErr != nil:
		return 0, 0, domain.ErrFavoriteNotFound
	}
	return playlistID, favoriteID, nil
}

// LinkFavorite handles POST /playlists/:playlistId/favorites/:favoriteId.
func (h *PlaylistFavoriteHandler) LinkFavorite(c *gin.Context) {
	playlistID, favoriteID, err := linkParams(c)
	if err != nil {
		handleError(c, err)
		return
	}

	message, err := h.service.Link(c.Request.Context(), playlistID, favoriteID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"Success": message})
}

// UnlinkFavorite handles DELETE /playlists/:playlistId/favorites/:favoriteId.
// Unlike linking, the playlist check strictly precedes the favorite check,
// so a request with two bad ids reports the playlist first.
func (h *PlaylistFavoriteHandler) UnlinkFavorite(c *gin.Context) {
	playlistID, err := strconv.ParseInt(c.Param("playlistId"), 10, 64)
	if err != nil {
		handleError(c, domain.ErrPlaylistNotFound)
		return
	}
	favoriteID, err := strconv.ParseInt(c.Param("favoriteId"), 10, 64)
	if err != nil {
		handleError(c, domain.ErrFavoriteNotFound)
		return
	}

	if err := h.service.Unlink(c.Request.Context(), playlistID, favoriteID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
