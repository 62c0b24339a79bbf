package themeconf

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Server hands one resolved configuration to an external renderer over HTTP.
// It only reads Config, so concurrent requests need no locking.
type Server struct {
	Config SiteConfig
	Echo   *echo.Echo

	baseURL string
	logger  zerolog.Logger
}

// Option configures additional Server behavior.
type Option func(*Server)

// WithBaseURL sets the canonical site URL used for sitemap entries
// (default "http://localhost:4000").
func WithBaseURL(u string) Option {
	return func(s *Server) {
		s.baseURL = u
	}
}

// WithLogger sets the request logger (default: discard).
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer wires routes and middleware around cfg.
func NewServer(cfg SiteConfig, opts ...Option) *Server {
	s := &Server{
		Config:  cfg,
		Echo:    echo.New(),
		baseURL: "http://localhost:4000",
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Echo.HideBanner = true
	s.Echo.HidePort = true
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Start serves until the server is shut down.
func (s *Server) Start(addr string) error {
	s.logger.Info().Str("addr", addr).Str("base_url", s.baseURL).Msg("serving resolved config")
	if err := s.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	e := s.Echo

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))

	e.Use(middleware.Recover())

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'none'",
	}))
}

func (s *Server) setupRoutes() {
	e := s.Echo
	e.GET("/config.json", s.handleConfig)
	e.GET("/sitemap.xml", s.handleSitemap)
	e.GET("/healthz", handleHealth)
}

func (s *Server) handleConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Config)
}

func (s *Server) handleSitemap(c echo.Context) error {
	return s.renderSitemap(c)
}

func handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
