package server

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/uxforge/agent-api/internal/api/http"
	"github.com/uxforge/agent-api/internal/api/middleware"
	"github.com/uxforge/agent-api/internal/domain/intent"
	"github.com/uxforge/agent-api/internal/domain/wireframe"
	"github.com/uxforge/agent-api/internal/infrastructure/config"
	"github.com/uxforge/agent-api/internal/infrastructure/logging"
	"github.com/uxforge/agent-api/internal/infrastructure/monitoring"
)

// shutdownTimeout bounds graceful connection draining on Close.
const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
	http    *nethttp.Server
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize logger
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
	}

	logger.Info("Initializing agent API server",
		zap.String("port", cfg.Server.Port),
		zap.String("host", cfg.Server.Host),
	)

	// Initialize metrics
	metrics := monitoring.NewMetrics()

	// Build the keyword table, with an optional override from disk
	vocab := intent.DefaultVocabulary()
	if cfg.Vocab.Path != "" {
		loaded, err := intent.LoadVocabulary(cfg.Vocab.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load vocabulary: %w", err)
		}
		vocab = loaded
		logger.Info("Loaded vocabulary override",
			zap.String("path", cfg.Vocab.Path),
			zap.Int("entries", len(vocab)),
		)
	}

	extractor := intent.NewExtractor(vocab)
	synthesizer := wireframe.NewSynthesizer()

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.CORS.Origins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.Origins
	}
	router.Use(middleware.CORS(corsCfg))

	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	// Create handlers
	handlers := http.NewHandlers(extractor, synthesizer, metrics)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Interpretation endpoints, behind the optional API key gate
	if cfg.Auth.APIKey != "" {
		logger.Info("API key gate enabled")
	}
	api := router.Group("", middleware.BearerAuth(cfg.Auth.APIKey))
	api.POST("/interpret", handlers.Interpret)
	api.POST("/specify-wireframe", handlers.SpecifyWireframe)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:  router,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}, nil
}

// Router exposes the gin engine, primarily for httptest-based suites.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))

	s.http = &nethttp.Server{
		Addr:    addr,
		Handler: s.router,
	}

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	if s.http != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error("Failed to shut down HTTP server", zap.Error(err))
			return fmt.Errorf("failed to shut down http server: %w", err)
		}
	}

	// Sync logger before exit
	s.logger.Sync()

	return nil
}
