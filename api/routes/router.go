// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"ballroomly/internal/ballrooms"
	"ballroomly/internal/bookings"
	"ballroomly/internal/shared/config"
	"ballroomly/internal/shared/database"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	blobs     ballrooms.BlobStore
	publisher bookings.EventPublisher

	ballroomService ballrooms.Service // For dependency injection
}

// NewRouter creates a new router instance. publisher may be nil when no
// event pipeline is configured.
func NewRouter(cfg *config.Config, db *database.DB, blobs ballrooms.BlobStore, publisher bookings.EventPublisher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		blobs:     blobs,
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Static front-end
	if r.config.Web.Enabled {
		r.setupWebRoutes(engine)
	}

	// API routes
	api := engine.Group(r.config.APIPrefix)
	{
		// Ballroom routes first: the booking controller needs the
		// ballroom service for its capacity check.
		r.setupBallroomRoutes(api)
		r.setupBookingRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "ballroomly-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "ballroomly-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}

// setupWebRoutes serves the static admin and booking pages
func (r *Router) setupWebRoutes(engine *gin.Engine) {
	engine.Static("/web", r.config.Web.Dir)
	engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/web/index.html")
	})
}

// setupBallroomRoutes configures ballroom management routes
func (r *Router) setupBallroomRoutes(rg *gin.RouterGroup) {
	ballroomRepo := ballrooms.NewRepository(r.db.GetPostgreSQL())
	ballroomService := ballrooms.NewService(
		ballroomRepo,
		r.blobs,
		r.db.GetRedisClient(),
		r.config.Redis.CacheTTL,
		r.config.APIPrefix+"/ballrooms/images/",
	)
	ballroomController := ballrooms.NewController(ballroomService, r.config.Upload.MaxSize)

	// Store ballroom service for dependency injection
	r.ballroomService = ballroomService

	ballrooms.RegisterRoutes(rg, ballroomController)
}

// setupBookingRoutes configures booking management routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	bookingService := bookings.NewService(bookingRepo, r.publisher)
	bookingController := bookings.NewController(bookingService, r.ballroomService)

	bookings.RegisterRoutes(rg, bookingController)
}
