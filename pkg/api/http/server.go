package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aescanero/kvitems/internal/application/items"
	"github.com/aescanero/kvitems/pkg/ports"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MetricsExporter collects request metrics and renders them for scraping
type MetricsExporter interface {
	ports.MetricsCollector
	Handler() http.Handler
}

// Server represents the HTTP API server
type Server struct {
	router  *gin.Engine
	server  *http.Server
	items   *items.Service
	metrics MetricsExporter
	version string
	logger  *zap.Logger
}

// Config holds HTTP server configuration
type Config struct {
	Port    int
	Version string
	Items   *items.Service
	Metrics MetricsExporter
	Logger  *zap.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(requestID())
	router.Use(requestMetrics(cfg.Metrics))
	router.Use(requestLogger(cfg.Logger))
	router.Use(recovery(cfg.Logger))

	s := &Server{
		router:  router,
		items:   cfg.Items,
		metrics: cfg.Metrics,
		version: cfg.Version,
		logger:  cfg.Logger,
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
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/version", s.handleVersion)

	s.router.PUT("/item/:item_id", s.handlePutItem)
	s.router.GET("/item/:item_id", s.handleGetItem)

	s.router.NoRoute(s.handleNoRoute)
	s.router.NoMethod(s.handleNoMethod)
}

// Handler returns the root handler, with all middleware applied
func (s *Server) Handler() http.Handler {
	return s.router
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
