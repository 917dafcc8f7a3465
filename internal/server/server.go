package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/danmuck/hdlcbody/internal/config"
	"github.com/danmuck/hdlcbody/internal/hdlc"
	"github.com/danmuck/hdlcbody/internal/logging"
	"github.com/danmuck/hdlcbody/internal/observability"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Server exposes the frame body decoder over HTTP.
type Server struct {
	ID       string
	Addr     string
	Appeared time.Time

	cfg         config.Config
	logger      zerolog.Logger
	interpreter *hdlc.Interpreter
	router      *gin.Engine
}

func New(cfg config.Config, logger zerolog.Logger) *Server {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestID())
	r.Use(observability.RequestLogger(logger))
	r.Use(observability.RequestMetricsMiddleware(cfg.ID))
	if len(cfg.CorsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  normalizeOrigins(cfg.CorsOrigins),
			AllowMethods:  []string{"GET", "POST"},
			AllowHeaders:  []string{"Origin", "Content-Type", observability.HeaderRequestID},
			ExposeHeaders: []string{observability.HeaderRequestID},
			MaxAge:        12 * time.Hour,
		}))
	}
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	return &Server{
		ID:          cfg.ID,
		Addr:        cfg.Addr,
		Appeared:    time.Now(),
		cfg:         cfg,
		logger:      logger,
		interpreter: hdlc.NewInterpreter(hdlc.WithLogger(logging.NewAdapter(logger))),
		router:      r,
	}
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run registers routes and blocks serving on Addr.
func (s *Server) Run() error {
	s.RegisterRoutes()
	s.logger.Info().Str("addr", s.Addr).Str("id", s.ID).Msg("hdlcd listening")
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
