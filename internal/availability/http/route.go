package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	// Public read-only endpoints consumed by the storefront widget.
	g.GET("/availability", h.Check)
	g.GET("/towns", h.Towns)
}
