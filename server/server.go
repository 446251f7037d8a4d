package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/scorepipe/config"
	"github.com/kbukum/scorepipe/logger"
	"github.com/kbukum/scorepipe/observability"
)

// Server hosts the HTTP ingestion surface.
type Server struct {
	engine  *gin.Engine
	cfg     config.ServerConfig
	log     *logger.Logger
	metrics *observability.PipelineMetrics
}

// Option customizes a Server.
type Option func(*Server)

// WithMetrics attaches pipeline metrics recorded per cleansing run.
func WithMetrics(m *observability.PipelineMetrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithLogger sets the logger used by middleware and handlers.
func WithLogger(l *logger.Logger) Option {
	return func(s *Server) { s.log = l }
}

// New builds a Server with routing and middleware configured.
func New(cfg config.ServerConfig, opts ...Option) *Server {
	s := &Server{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.WithComponent("server")
	}

	gin.SetMode(ginMode(cfg.Mode))
	engine := gin.New()
	engine.Use(RequestID(), RequestLogger(s.log), Recovery(s.log))

	engine.GET("/health", s.handleHealth)
	v1 := engine.Group("/v1")
	v1.POST("/cleanse", s.handleCleanse)

	s.engine = engine
	return s
}

// Handler returns the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until ctx is canceled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", logger.Fields("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.log.Info("server shutting down")
	return srv.Shutdown(shutdownCtx)
}

func ginMode(mode string) string {
	switch mode {
	case "debug":
		return gin.DebugMode
	case "test":
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}
