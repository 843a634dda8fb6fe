package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vsinha/siteorders/pkg/application/services/session"
	"github.com/vsinha/siteorders/pkg/infrastructure/config"
)

// Server is the HTTP server for the dashboard API
type Server struct {
	cfg        config.Config
	router     *gin.Engine
	httpServer *http.Server
	sessions   *session.Manager
	logger     zerolog.Logger
	now        func() time.Time
}

// NewServer creates a new API server
func NewServer(cfg config.Config, sessions *session.Manager, logger zerolog.Logger) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	registerValidators()

	server := &Server{
		cfg:      cfg,
		router:   gin.New(),
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}

	// Setup middleware
	server.setupMiddleware()

	// Setup routes
	server.setupRoutes()

	return server
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware adds middleware to the router
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(LoggingMiddleware(s.logger))
	s.router.Use(CORSMiddleware())
}

// setupRoutes defines the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.sessions.Len()})
	})

	api := s.router.Group("/api")
	api.Use(SessionMiddleware(s.sessions))

	api.GET("/projects", s.listProjects)
	api.GET("/projects/:id/summary", s.projectSummary)
	api.GET("/materials", s.listMaterials)

	segments := api.Group("/segments")
	{
		segments.GET("", s.listSegments)
		segments.POST("", s.createSegment)
		segments.PUT("/:id", s.updateSegment)
		segments.DELETE("/:id", s.deleteSegment)
		segments.GET("/:id/summary", s.segmentSummary)
	}

	calendar := api.Group("/calendar")
	{
		calendar.GET("/day/:date", s.segmentsForDay)
		calendar.GET("/month", s.monthView)
	}
	api.GET("/timeline", s.timeline)

	order := api.Group("/order")
	{
		order.GET("", s.getOrder)
		order.POST("/select", s.selectSegment)
		order.PUT("/items", s.setQuantity)
		order.DELETE("/items", s.clearOrder)
		order.POST("/place", s.placeOrder)
	}
	api.POST("/segment-materials/:id/deliver", s.markDelivered)

	api.GET("/activity", s.activity)
	api.GET("/integrity", s.integrity)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:        s.cfg.Server.Address,
		Handler:     s.router,
		ReadTimeout: s.cfg.Server.ReadTimeout,
	}

	s.logger.Info().Msgf("HTTP server starting on %s", s.cfg.Server.Address)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
