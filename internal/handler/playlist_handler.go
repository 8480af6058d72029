package handler

import (
	"context"
	"net/http"
	"strconv"

	"favorites-svc/internal/domain"

	"github.com/gin-gonic/gin"
)

// PlaylistService is the playlists manager surface the handler consumes.
type PlaylistService interface {
	Create(ctx context.Context, title string) (*domain.Playlist, error)
	List(ctx context.Context) ([]*domain.PlaylistDetail, error)
	GetByID(ctx context.Context, id int64) (*domain.PlaylistDetail, error)
	UpdateTitle(ctx context.Context, id int64, title string) (*domain.Playlist, error)
	Delete(ctx context.Context, id int64) error
}

// PlaylistHandler serves the /playlists routes.
type PlaylistHandler struct {
	service PlaylistService
}

// NewPlaylistHandler creates a playlist handler.
func NewPlaylistHandler(service PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{service: service}
}

// CreatePlaylist handles POST /playlists.
func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, domain.ErrMissingPlaylistTitle)
		return
	}

	playlist, err := h.service.Create(c.Request.Context(), req.Title)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, playlist)
}

// ListPlaylists handles GET /playlists. Every playlist comes back annotated
// with its favorites and aggregates.
func (h *PlaylistHandler) ListPlaylists(c *gin.Context) {
	playlists, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, playlists)
}

// GetPlaylistFavorites handles GET /playlists/:playlistId/favorites,
// returning the single annotated playlist.
func (h *PlaylistHandler) GetPlaylistFavorites(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("playlistId"), 10, 64)
	if err != nil {
		handleError(c, domain.ErrPlaylistNotFound)
		return
	}

	playlist, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, playlist)
}

// UpdatePlaylist handles PUT /playlists/:playlistId.
func (h *PlaylistHandler) UpdatePlaylist(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("playlistId"), 10, 64)
	if err != nil {
		handleError(c, domain.ErrPlaylistNotFound)
		return
	}

	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, domain.ErrMissingNewPlaylistTitle)
		return
	}

	playlist, err := h.service.UpdateTitle(c.Request.Context(), id, req.Title)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, playlist)
}

// DeletePlaylist handles DELETE /playlists/:playlistId.
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("playlistId"), 10, 64)
	if err != nil {
		handleError(c, domain.ErrPlaylistNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
