package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/m-mizutani/foundry/pkg/domain/interfaces"
	"github.com/m-mizutani/foundry/pkg/utils/async"
)

// config holds internal HTTP server configuration
type config struct {
	addr       string
	secretKey  string
	dispatcher *async.Dispatcher
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithSecretKey sets the shared secret required in inbound requests.
// Empty disables the check.
func WithSecretKey(key string) Option {
	return func(c *config) {
		c.secretKey = key
	}
}

// WithDispatcher sets the background dispatcher. Useful for tests that need
// to wait for dispatched work.
func WithDispatcher(d *async.Dispatcher) Option {
	return func(c *config) {
		c.dispatcher = d
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	provisionUC interfaces.ProvisionUseCase,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr: "localhost:8080",
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.dispatcher == nil {
		cfg.dispatcher = async.New()
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Liveness probes
	router.Get("/", handleRoot)
	router.Get("/health", handleHealth)

	// Task intake endpoint
	taskHandler := NewTaskHandler(cfg.secretKey, provisionUC, cfg.dispatcher)
	router.Post("/api-endpoint", taskHandler.Handle)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
