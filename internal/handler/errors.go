// Package handler exposes the REST surface over gin.
package handler

import (
	"errors"

	"favorites-svc/internal/domain"
	"favorites-svc/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// errorBody is the uniform error response shape.
type errorBody struct {
	Status       int    `json:"status"`
	ErrorMessage string `json:"errorMessage"`
}

// handleError translates an error into the uniform error body. Expected
// failures carry their own status and message; anything else renders as the
// generic 500 so internal store error text never reaches clients.
func handleError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		appErr = domain.ErrUnexpected
	}
	c.JSON(appErr.Status, errorBody{
		Status:       appErr.Status,
		ErrorMessage: appErr.Message,
	})
}
