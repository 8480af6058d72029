package handler

import (
	"context"
	"net/http"
	"strconv"

	"favorites-svc/internal/domain"

	"github.com/gin-gonic/gin"
)

// FavoriteService is the favorites manager surface the handler consumes.
type FavoriteService interface {
	Create(ctx context.Context, title, artistName string) (*domain.Favorite, error)
	List(ctx context.Context) ([]*domain.Favorite, error)
	GetByID(ctx context.Context, id int64) (*domain.Favorite, error)
	Delete(ctx context.Context, id int64) error
}

// FavoriteHandler serves the /favorites routes.
type FavoriteHandler struct {
	service FavoriteService
}

// NewFavoriteHandler creates a favorite handler.
func NewFavoriteHandler(service FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

// CreateFavorite handles POST /favorites.
func (h *FavoriteHandler) CreateFavorite(c *gin.Context) {
	var req struct {
		Title      string `json:"title"`
		ArtistName string `json:"artistName"`
	}
	// An unreadable body is the same as sending neither field; the service
	// produces the field-specific messages for partially filled requests.
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, domain.ErrMissingTrackFields)
		return
	}

	favorite, err := h.service.Create(c.Request.Context(), req.Title, req.ArtistName)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, favorite)
}

// ListFavorites handles GET /favorites.
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	favorites, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// GetFavorite handles GET /favorites/:id.
func (h *FavoriteHandler) GetFavorite(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		handleError(c, domain.ErrFavoriteTrackNotFound)
		return
	}

	favorite, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, favorite)
}

// DeleteFavorite handles DELETE /favorites/:id.
func (h *FavoriteHandler) DeleteFavorite(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		handleError(c, domain.ErrFavoriteTrackNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
