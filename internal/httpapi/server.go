// Package httpapi serves game sessions to a browser over a JSON API.
package httpapi

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/verte-zerg/tuiguess/internal/model"
	"github.com/verte-zerg/tuiguess/internal/store"
)

//go:embed static
var staticFiles embed.FS

const (
	requestTimeout  = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Server routes HTTP requests to sessions held in a Store.
type Server struct {
	router chi.Router
	store  *store.Store
	tokens *tokenSigner
	levels []int
	cfg    model.ServeConfig
}

// New builds the router. levels is the set offered to the browser page.
func New(st *store.Store, levels []int, cfg model.ServeConfig) *Server {
	s := &Server{
		store:  st,
		tokens: newTokenSigner(cfg.Secret),
		levels: append([]int(nil), levels...),
		cfg:    cfg,
	}
	s.router = s.routes()
	return s
}

// Router exposes the handler for tests and embedding.
func (s *Server) Router() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors(s.cfg.ClientOrigin))

	r.Get("/", s.handleIndex)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(jsonContentType)
		r.Use(s.withSession)

		r.Get("/session", s.handleSession)
		r.Post("/player", s.handlePlayer)
		r.Post("/round", s.handlePlay)
		r.Post("/round/guess", s.handleGuess)
		r.Post("/round/giveup", s.handleGiveUp)
		r.Post("/round/hint", s.handleHint)
		r.Get("/stats", s.handleStats)
		r.Delete("/stats", s.handleReset)
	})
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := fs.ReadFile(staticFiles, "static/index.html")
	if err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
