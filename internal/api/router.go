package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pen-dragon-house/delivery-slot-backend/internal/availability"
	availabilityHttp "github.com/pen-dragon-house/delivery-slot-backend/internal/availability/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction        bool
	ProdOrigins         string
	AvailabilityService availability.Service
	Logger              *zap.Logger
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (request id, logging,
// recovery, CORS) and registering routes for the availability module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestID(), RequestLogger(cfg.Logger), gin.Recovery())

	// Configure CORS. The availability widget is embedded in storefront
	// pages, so in development every origin is allowed; production pins
	// the storefront origins from config.
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handler := availabilityHttp.NewHandler(cfg.AvailabilityService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		availabilityHttp.RegisterRoutes(v1, handler)
	}

	return r
}
