package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pen-dragon-house/delivery-slot-backend/internal/availability"
	"github.com/pen-dragon-house/delivery-slot-backend/internal/pkg/apperror"
	"github.com/pen-dragon-house/delivery-slot-backend/internal/pkg/response"
)

type Handler struct {
	service availability.Service
}

func NewHandler(service availability.Service) *Handler {
	return &Handler{service: service}
}

// Check returns the availability table for the requested town, or for all
// towns when no town is given. The body is always a well-formed (possibly
// empty) table; failures surface in the log, not the response.
func (h *Handler) Check(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid query parameters"))
		return
	}

	table := h.service.Check(c.Request.Context(), req.Town)
	c.JSON(http.StatusOK, NewAvailabilityResponse(table))
}

// Towns returns the sorted list of towns offering delivery.
func (h *Handler) Towns(c *gin.Context) {
	towns, err := h.service.Towns(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, TownsResponse{Towns: towns})
}
