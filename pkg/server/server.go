// Package server implements the HTTP API consumed by the dashboard UI.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/rcgarage/rcprogram-manager-go/log"
	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
	"github.com/rcgarage/rcprogram-manager-go/pkg/service"
	"github.com/rcgarage/rcprogram-manager-go/pkg/store"
	"github.com/rcgarage/rcprogram-manager-go/pkg/utils/cache"
	"github.com/rcgarage/rcprogram-manager-go/pkg/utils/cache/loadercache"

	trackrepos "github.com/rcgarage/rcprogram-manager-go/pkg/repository/track"
)

// Handlers contains the HTTP handlers for the tracker API.
type Handlers struct {
	pool       *pgxpool.Pool
	analytics  *service.AnalyticsService
	trackCache cache.Cache[string, model.Track]
	logger     *log.Logger
}

type HandlersOption func(h *Handlers)

func WithLogger(logger *log.Logger) HandlersOption {
	return func(h *Handlers) {
		h.logger = logger
	}
}

func NewHandlers(pool *pgxpool.Pool, opts ...HandlersOption) *Handlers {
	h := &Handlers{
		pool:   pool,
		logger: log.Default().Named("api"),
	}
	h.analytics = service.NewAnalyticsService(
		service.WithStore(store.NewDBStore(pool)))
	h.trackCache = loadercache.New(
		loadercache.WithExpiration[string, model.Track](time.Minute),
		loadercache.WithLoader(func(id string) (*model.Track, error) {
			return trackrepos.LoadByID(context.Background(), pool, id)
		}),
	)
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewRouter builds the gin engine with all API routes registered.
func NewRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("rcprogram-manager"))

	router.GET("/healthz", h.handleHealth)

	api := router.Group("/api")
	{
		api.GET("/tracks", h.handleListTracks)
		api.POST("/tracks", h.handleCreateTrack)
		api.GET("/tracks/:id", h.handleGetTrack)
		api.PUT("/tracks/:id", h.handleUpdateTrack)
		api.DELETE("/tracks/:id", h.handleDeleteTrack)
		api.GET("/tracks/:id/events", h.handleListTrackEvents)
		api.GET("/tracks/:id/analytics", h.handleTrackAnalytics)
		api.GET("/analytics", h.handleAllTrackAnalytics)

		api.GET("/events", h.handleListEvents)
		api.POST("/events", h.handleCreateEvent)
		api.GET("/events/:id", h.handleGetEvent)
		api.PUT("/events/:id", h.handleUpdateEvent)
		api.DELETE("/events/:id", h.handleDeleteEvent)
		api.GET("/events/:id/runlogs", h.handleListEventRunLogs)

		api.GET("/runlogs", h.handleListRunLogs)
		api.POST("/runlogs", h.handleCreateRunLog)
		api.PUT("/runlogs/:id", h.handleUpdateRunLog)
		api.DELETE("/runlogs/:id", h.handleDeleteRunLog)

		api.GET("/cars", h.handleListCars)
		api.POST("/cars", h.handleCreateCar)
		api.GET("/cars/:id", h.handleGetCar)
		api.PUT("/cars/:id", h.handleUpdateCar)
		api.DELETE("/cars/:id", h.handleDeleteCar)

		api.POST("/tools/gear-ratio", h.handleGearRatio)
		api.POST("/tools/rollout", h.handleRollout)
		api.POST("/tools/race-pace", h.handleRacePace)
	}
	return router
}

func (h *Handlers) handleHealth(c *gin.Context) {
	if err := h.pool.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// newID creates a collection-prefixed record id, e.g. track_<uuid>.
func newID(prefix string) string {
	return prefix + "_" + uuid.Must(uuid.NewV4()).String()
}
