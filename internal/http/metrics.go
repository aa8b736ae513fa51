package http

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newMetricsHandler exposes the middleware and cache counters. Each server
// owns its registry so several can coexist in one process.
func (s *Server) newMetricsHandler() http.Handler {
	reg := prometheus.NewRegistry()

	counter := func(name, help string, value func() float64) {
		reg.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{Name: name, Help: help}, value))
	}
	gauge := func(name, help string, value func() float64) {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{Name: name, Help: help}, value))
	}

	counter("http_requests_total", "Total number of HTTP requests", func() float64 {
		return float64(s.traceMiddleware.GetMetrics().TotalRequests)
	})
	counter("http_server_errors_total", "Responses with a 5xx status", func() float64 {
		return float64(s.traceMiddleware.GetMetrics().ServerErrors)
	})
	gauge("http_last_request_duration_seconds", "Duration of the most recent request", func() float64 {
		return (time.Duration(s.traceMiddleware.GetMetrics().LastDurationUs) * time.Microsecond).Seconds()
	})

	counter("rate_limit_hits_total", "Total rate limit hits", func() float64 {
		return float64(s.rateLimiter.GetMetrics().TotalHits)
	})
	gauge("active_rate_limit_clients", "Currently tracked rate limit clients", func() float64 {
		return float64(s.rateLimiter.GetMetrics().ClientCount)
	})
	counter("suspicious_requests_total", "Total suspicious requests detected", func() float64 {
		return float64(s.securityDetector.GetMetrics().SuspiciousRequests)
	})
	counter("blocked_requests_total", "Requests blocked by the detector", func() float64 {
		return float64(s.securityDetector.GetMetrics().BlockedRequests)
	})

	if s.cache != nil {
		counter("cache_hits_total", "Raw record cache hits", func() float64 {
			hits, _, _ := s.cache.Stats()
			return float64(hits)
		})
		counter("cache_misses_total", "Raw record cache misses", func() float64 {
			_, misses, _ := s.cache.Stats()
			return float64(misses)
		})
		gauge("cache_entries", "Current raw record cache entries", func() float64 {
			_, _, entries := s.cache.Stats()
			return float64(entries)
		})
	}

	gauge("uptime_seconds", "Application uptime in seconds", func() float64 {
		return time.Since(s.startedAt).Seconds()
	})
	reg.MustRegister(collectors.NewGoCollector())

	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
