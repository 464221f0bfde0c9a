package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pen-dragon-house/delivery-slot-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a JSON error response. An AppError determines the status
// code and message; anything else collapses to a bare 500 so internal
// detail never reaches the caller.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
