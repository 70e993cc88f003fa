// Package server hosts the Chapterize HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jackzampolin/chapterize/internal/api"
	"github.com/jackzampolin/chapterize/internal/config"
	"github.com/jackzampolin/chapterize/internal/document"
	"github.com/jackzampolin/chapterize/internal/home"
	"github.com/jackzampolin/chapterize/internal/jobs"
	"github.com/jackzampolin/chapterize/internal/llmtoc"
	"github.com/jackzampolin/chapterize/internal/server/endpoints"
	"github.com/jackzampolin/chapterize/internal/store"
	"github.com/jackzampolin/chapterize/internal/svcctx"
	"github.com/jackzampolin/chapterize/internal/toc"
)

// Server is the main Chapterize HTTP server.
type Server struct {
	httpServer *http.Server
	home       *home.Dir
	configMgr  *config.Manager
	jobManager *jobs.Manager
	logger     *slog.Logger

	// services holds all core services for context enrichment
	services *svcctx.Services

	// endpoints registry for HTTP routes
	endpointRegistry *api.Registry

	mu      sync.RWMutex
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 127.0.0.1)
	Host string
	// Port is the port to listen on (default: 8080)
	Port string
	// Home is the chapterize home directory
	Home *home.Dir
	// ConfigManager provides configuration with hot-reload support
	ConfigManager *config.Manager
	// Logger is the structured logger to use
	Logger *slog.Logger
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Home == nil {
		h, err := home.New("")
		if err != nil {
			return nil, err
		}
		cfg.Home = h
	}

	s := &Server{
		home:      cfg.Home,
		configMgr: cfg.ConfigManager,
		logger:    cfg.Logger,
	}

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	for _, ep := range endpoints.All() {
		s.endpointRegistry.Register(ep)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux, s.requireInit)

	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      s.withServices(mux),
		ReadTimeout:  10 * time.Minute, // large uploads
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// Start starts the server. It blocks until the context is cancelled or an
// error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	if err := s.home.EnsureExists(); err != nil {
		s.setNotRunning()
		return fmt.Errorf("failed to prepare home directory: %w", err)
	}

	appCfg := s.appConfig()

	s.jobManager = jobs.NewManager(store.NewMemory[jobs.Record](), s.home, appCfg.Split.Archive, s.logger)

	// Create services struct for context enrichment
	s.services = &svcctx.Services{
		Documents:  store.NewMemory[document.Info](),
		TOCs:       store.NewMemory[*toc.Tree](),
		JobManager: s.jobManager,
		ConfigMgr:  s.configMgr,
		Home:       s.home,
		Logger:     s.logger,
		Extractor:  s.buildExtractor(appCfg),
	}

	// Rebuild the extractor when LLM config changes. The whole services
	// struct is swapped so in-flight requests keep a consistent view.
	if s.configMgr != nil {
		s.configMgr.OnChange(func(c *config.Config) {
			s.mu.Lock()
			next := *s.services
			next.Extractor = s.buildExtractor(c)
			s.services = &next
			s.mu.Unlock()
			s.logger.Info("llm extractor reloaded from config")
		})
	}

	// Start HTTP server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			s.setNotRunning()
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// appConfig returns the current configuration, falling back to defaults
// when no manager was provided.
func (s *Server) appConfig() *config.Config {
	if s.configMgr != nil {
		return s.configMgr.Get()
	}
	return config.DefaultConfig()
}

// buildExtractor creates the LLM TOC extractor, or nil when disabled.
func (s *Server) buildExtractor(cfg *config.Config) *llmtoc.Extractor {
	if !cfg.LLM.Enabled {
		return nil
	}
	llmCfg := cfg.LLM
	llmCfg.APIKey = config.ResolveEnvVars(llmCfg.APIKey)
	extractor, err := llmtoc.New(llmtoc.FromLLMCfg(llmCfg, s.logger))
	if err != nil {
		s.logger.Warn("llm toc extraction unavailable", "error", err)
		return nil
	}
	return extractor
}

// shutdown performs graceful shutdown, waiting for running jobs.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	if s.jobManager != nil {
		s.logger.Info("waiting for running jobs")
		s.jobManager.Wait()
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// JobManager returns the job manager.
// Returns nil if the server hasn't started yet.
func (s *Server) JobManager() *jobs.Manager {
	return s.jobManager
}

// Addr returns the server's listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// withServices wraps a handler to enrich the request context with services.
func (s *Server) withServices(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s.mu.RLock()
		services := s.services
		s.mu.RUnlock()
		if services != nil {
			ctx = svcctx.WithServices(ctx, services)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireInit is middleware that ensures the server is fully initialized.
// Returns 503 Service Unavailable until Start has wired up services.
func (s *Server) requireInit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.RLock()
		initialized := s.services != nil
		s.mu.RUnlock()
		if !initialized {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"server not fully initialized"}`))
			return
		}
		next(w, r)
	}
}
