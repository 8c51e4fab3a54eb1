package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"shelf/internal/config"
	"shelf/internal/items"
	"shelf/internal/middleware"
)

// Server serves the fixed item collection over HTTP.
// The collection never changes after construction, so the JSON response body
// is encoded exactly once and every GET returns the same bytes.
type Server struct {
	config     *config.Config
	collection items.Collection
	itemsBody  []byte
	requestLog *middleware.RequestLogMiddleware
	startTime  time.Time
}

// New creates a new Server instance serving the given collection
func New(cfg *config.Config, collection items.Collection) (*Server, error) {
	body, err := json.Marshal(collection.Items())
	if err != nil {
		return nil, fmt.Errorf("failed to encode item collection: %w", err)
	}

	return &Server{
		config:     cfg,
		collection: collection,
		itemsBody:  body,
		requestLog: middleware.NewRequestLogMiddleware(),
		startTime:  time.Now(),
	}, nil
}

// Handler builds the HTTP route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/items", s.requestLog.Wrap(http.HandlerFunc(s.handleItems)))
	mux.Handle("/health", s.requestLog.Wrap(http.HandlerFunc(s.handleHealth)))
	return mux
}

// Start runs the configured listeners until the context is cancelled,
// then shuts them down gracefully.
func (s *Server) Start(ctx context.Context) error {
	handler := s.Handler()

	var servers []*http.Server
	errCh := make(chan error, 2)

	if s.config.ListenAddr != "" {
		plain := &http.Server{Addr: s.config.ListenAddr, Handler: handler}
		servers = append(servers, plain)
		go func() {
			log.Printf("[Server] HTTP listening on %s", plain.Addr)
			if err := plain.ListenAndServe(); err != http.ErrServerClosed {
				errCh <- fmt.Errorf("http server: %w", err)
			}
		}()
	}

	if s.config.TLS.ListenAddr != "" {
		encrypted := &http.Server{Addr: s.config.TLS.ListenAddr, Handler: handler}
		servers = append(servers, encrypted)
		go func() {
			log.Printf("[Server] HTTPS listening on %s", encrypted.Addr)
			err := encrypted.ListenAndServeTLS(s.config.TLS.CertFile, s.config.TLS.KeyFile)
			if err != http.ErrServerClosed {
				errCh <- fmt.Errorf("https server: %w", err)
			}
		}()
	}

	log.Printf("[Server] Serving %d items", s.collection.Len())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("[Server] Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[Server] Shutdown error: %v", err)
		}
	}

	return nil
}
