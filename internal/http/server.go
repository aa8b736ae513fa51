// Package http serves the analytics views as a JSON API.
package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/rs/cors"

	"noumi/internal/log"
	"noumi/internal/middleware/ratelimit"
	"noumi/internal/middleware/security"
	"noumi/internal/middleware/trace"
	"noumi/internal/recap"
)

const (
	// requestTimeout bounds the data source reads behind one request.
	requestTimeout = 15 * time.Second
	maxBodyBytes   = 64 << 10
	defaultWeeks   = 5
)

// CacheStats is implemented by the raw-record cache.
type CacheStats interface {
	Stats() (hits, misses uint64, entries int)
}

// Options configures optional server collaborators.
type Options struct {
	// Ready reports whether the data source can serve reads. Nil means
	// always ready.
	Ready func(context.Context) error
	// Cache is reported on /metrics when set.
	Cache     CacheStats
	RateLimit ratelimit.Config
	// AllowedOrigins enables CORS for browser clients. Empty disables it.
	AllowedOrigins []string
	// Now is the clock for week and goal calculations.
	Now func() time.Time
}

type Server struct {
	http.Server

	svc    *recap.Service
	ready  func(context.Context) error
	cache  CacheStats
	now    func() time.Time
	logger *log.Logger

	securityDetector *security.Detector
	rateLimiter      *ratelimit.Limiter
	traceMiddleware  *trace.Middleware
	startedAt        time.Time

	shutdownOnce sync.Once
}

func NewServer(addr string, svc *recap.Service, logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = log.Discard()
	}
	logger = logger.WithComponent(log.ComponentHTTP)
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Server{
		svc:              svc,
		ready:            opts.Ready,
		cache:            opts.Cache,
		now:              opts.Now,
		logger:           logger,
		securityDetector: security.NewDetector(logger),
		rateLimiter:      ratelimit.NewLimiter(opts.RateLimit),
		startedAt:        time.Now(),
	}
	s.traceMiddleware = trace.NewMiddleware(s.securityDetector.ExtractClientIP, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", s.newMetricsHandler())

	limited := s.rateLimiter.Middleware(s.securityDetector.ExtractClientIP, logger)
	api := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, limited(h))
	}
	api("GET /api/trends/highest-decrease", s.handleTrend)
	api("GET /api/categories/top", s.handleTopCategories)
	api("GET /api/categories/series", s.handleSeries)
	api("GET /api/habits", s.handleHabits)
	api("POST /api/habits/complete", s.handleCompleteHabit)
	api("GET /api/weeks", s.handleWeeks)
	api("GET /api/weeks/current", s.handleCurrentWeek)
	api("GET /api/goal", s.handleGoal)
	api("GET /api/home", s.handleHome)
	api("GET /api/recap", s.handleRecap)

	// Outermost first: headers, detection, CORS, tracing, then the request
	// logger.
	var handler http.Handler = mux
	handler = log.RequestIDMiddleware(func(r *http.Request) string {
		return trace.GetRequestID(r.Context())
	})(handler)
	handler = log.Middleware(logger)(handler)
	handler = s.traceMiddleware.Middleware(handler)
	if len(opts.AllowedOrigins) > 0 {
		handler = cors.New(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", trace.HeaderRequestID},
			ExposedHeaders: []string{trace.HeaderRequestID, "Retry-After"},
			MaxAge:         600,
		}).Handler(handler)
		logger.Info("CORS enabled", "origins", opts.AllowedOrigins)
	}
	handler = s.securityDetector.Middleware(handler)
	handler = security.NewHeadersMiddleware(security.DefaultHeadersConfig()).Middleware(handler)

	s.Server = http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// ListenAndServe blocks until the server stops. A graceful shutdown is not
// reported as an error.
func (s *Server) ListenAndServe() error {
	s.logger.Info("HTTP server listening", "addr", s.Addr)
	if err := s.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the rate limiter cleanup.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.rateLimiter.Stop()
		err = s.Server.Shutdown(ctx)
	})
	return err
}
