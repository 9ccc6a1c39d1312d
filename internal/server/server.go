package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/RoleplayBot_Go/internal/catalog"
	"github.com/osse101/RoleplayBot_Go/internal/character"
	"github.com/osse101/RoleplayBot_Go/internal/eventlog"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
	"github.com/osse101/RoleplayBot_Go/internal/metrics"
	"github.com/osse101/RoleplayBot_Go/internal/sse"
)

// Check is a named readiness probe.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

// Reloader re-reads a plugin's documents from the store.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Options configures the operator HTTP surface. The /api/v1 routes are
// mounted only when APIKey is set.
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Checks         []Check
	Reloaders      map[string]Reloader
	Catalog        catalog.Service
	Characters     character.Service
	Events         eventlog.Service
	Stream         *sse.Hub
}

type Server struct {
	httpServer *http.Server
	opts       Options
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	s := &Server{opts: opts}

	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)
	r.Handle("/metrics", promhttp.Handler())

	if opts.APIKey != "" {
		r.Route("/api/v1", func(r chi.Router) {
			r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))

			r.Post("/admin/reload", s.handleReload)
			if opts.Stream != nil {
				r.Get("/events", sse.Handler(opts.Stream))
			}
			r.Route("/guilds/{guild}", func(r chi.Router) {
				r.Get("/items", s.handleListItems)
				r.Get("/characters", s.handleListCharacters)
				r.Get("/characters/{name}", s.handleDumpCharacter)
				if opts.Events != nil {
					r.Get("/events", s.handleListEvents)
				}
			})
		})
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           r,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush lets the event stream push partial responses through the wrapper.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, path := range PublicPaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
