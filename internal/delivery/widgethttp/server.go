// Package widgethttp serves the widget word over HTTP for home screen
// widgets and other read-only consumers.
package widgethttp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
	"github.com/aliskhannn/lexicon-bot/internal/service"
)

const shutdownTimeout = 10 * time.Second

type WidgetService interface {
	Pick(ctx context.Context) entities.Entry
	Timeline(ctx context.Context, now time.Time) []service.TimelineItem
	Interval() time.Duration
}

// Config configures the widget HTTP server.
type Config struct {
	Addr           string  // listen address
	RateLimitRPS   float64 // requests per second per client IP
	RateLimitBurst int     // burst per client IP
	Production     bool    // release mode for gin
}

// Server exposes the widget word and timeline.
type Server struct {
	cfg    Config
	widget WidgetService
	logger *zap.Logger
	router *gin.Engine
	now    func() time.Time

	limiterMu sync.Mutex
	limiters  map[string]*rate.Limiter
}

// NewServer creates a new Server and registers its routes.
func NewServer(cfg Config, widget WidgetService, logger *zap.Logger) *Server {
	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:      cfg,
		widget:   widget,
		logger:   logger,
		now:      time.Now,
		limiters: make(map[string]*rate.Limiter),
	}

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogMiddleware())
	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))

	router.GET("/healthz", s.healthHandler)

	api := router.Group("/api/widget",
		s.rateLimitMiddleware(),
		cachecontrol.New(cachecontrol.Config{
			Public: true,
			MaxAge: cachecontrol.Duration(widget.Interval()),
		}),
	)
	api.GET("/word", s.wordHandler)
	api.GET("/timeline", s.timelineHandler)

	s.router = router
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("widget http server started", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen and serve: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown widget http server: %w", err)
	}
	s.logger.Info("widget http server stopped")

	return nil
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) wordHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.widget.Pick(c.Request.Context()))
}

func (s *Server) timelineHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"interval_seconds": int(s.widget.Interval().Seconds()),
		"entries":          s.widget.Timeline(c.Request.Context(), s.now()),
	})
}
