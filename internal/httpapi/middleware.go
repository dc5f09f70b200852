package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/verte-zerg/tuiguess/internal/store"
)

type ctxEntryKey struct{}

// requestLogger logs one line per request with status and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}

// jsonContentType sets a default JSON Content-Type header on API responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin. An empty origin disables it.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if origin == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// withSession resolves the caller's session from the signed cookie,
// creating a new session when the cookie is absent, invalid or evicted.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var entry *store.Entry
		if id, err := s.tokens.sessionIDFromRequest(r); err == nil {
			entry, _ = s.store.Get(id)
		} else if !errors.Is(err, errNoToken) {
			log.Debug().Err(err).Msg("rejected session token")
		}
		if entry == nil {
			entry = s.store.Create()
			if err := s.tokens.setCookie(w, r, entry.ID()); err != nil {
				log.Error().Err(err).Msg("issue session cookie")
				writeError(w, http.StatusInternalServerError, "internal", "failed to start session")
				return
			}
			log.Debug().Str("session", entry.ID()).Msg("created session")
		}
		ctx := context.WithValue(r.Context(), ctxEntryKey{}, entry)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func entryFrom(r *http.Request) *store.Entry {
	e, _ := r.Context().Value(ctxEntryKey{}).(*store.Entry)
	return e
}
