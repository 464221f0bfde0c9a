package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pen-dragon-house/delivery-slot-backend/internal/api"
	"github.com/pen-dragon-house/delivery-slot-backend/internal/availability"
	"github.com/pen-dragon-house/delivery-slot-backend/internal/calendar"
	"github.com/pen-dragon-house/delivery-slot-backend/internal/shopify"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction       bool
	ProdOrigins        string
	ShopifyAPIURL      string
	ShopifyAccessToken string
	CalendarURL        string
	OrderFetchLimit    int
	FetchTimeout       time.Duration
	Logger             *zap.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router              *gin.Engine
	AvailabilityService availability.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// One shared client bounds both outbound fetches.
	httpClient := &http.Client{Timeout: cfg.FetchTimeout}

	// Data-source clients
	orderSource := shopify.NewClient(cfg.ShopifyAPIURL, cfg.ShopifyAccessToken, cfg.OrderFetchLimit, httpClient)
	calendarSource := calendar.NewClient(cfg.CalendarURL, httpClient)

	// Availability module
	availabilityService := availability.NewService(orderSource, calendarSource, availability.FormatSlots, cfg.Logger)

	// API Router Config
	routerParams := api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		AvailabilityService: availabilityService,
		Logger:              cfg.Logger,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:              router,
		AvailabilityService: availabilityService,
	}
}
