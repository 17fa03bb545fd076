package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	metrics "github.com/stadium3d/stadium-api/pkg/adapters/metrics/prometheus"
)

// Server represents the HTTP API server
type Server struct {
	router  *gin.Engine
	server  *http.Server
	metrics *metrics.Collector
	logger  *zap.Logger
}

// Config holds HTTP server configuration
type Config struct {
	Port           int
	AllowedOrigins []string
	Metrics        *metrics.Collector
	Logger         *zap.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(cfg.Logger))
	router.Use(corsMiddleware(cfg.AllowedOrigins))

	s := &Server{
		router:  router,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}

	if s.metrics != nil {
		router.Use(s.metricsMiddleware())
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	return s
}

// setupRoutes configures API routes
func (s *Server) setupRoutes() {
	// Service info and health
	s.router.GET("/", s.handleRoot)
	s.router.GET("/health", s.handleHealth)
	s.router.HEAD("/health", s.handleHealthHead)

	// Stadium API
	api := s.router.Group("/api")
	{
		api.GET("/stadium/info", s.handleStadiumInfo)
	}

	// Metrics
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API documentation
	s.setupDocs()

	// Framework-level error conditions surface as JSON
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "Resource not found",
			},
		})
	})
	s.router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{
			Error: ErrorDetail{
				Code:    "METHOD_NOT_ALLOWED",
				Message: "Method not allowed",
			},
		})
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}

// Handler exposes the underlying router, primarily for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// metricsMiddleware records per-request Prometheus metrics
func (s *Server) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		s.metrics.RequestStarted()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		s.metrics.RequestFinished(
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start),
		)
	}
}
