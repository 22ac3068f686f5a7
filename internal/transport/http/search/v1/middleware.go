package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/you-humble/partexplorer/internal/model"
	"github.com/you-humble/partexplorer/platform/logger"
)

type sessionIDKey struct{}

// RequestFields attaches the chi request id to every record logged with the
// request context. It must run after middleware.RequestID.
func RequestFields(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			r = r.WithContext(logger.ContextWithFields(r.Context(), logger.String("request_id", id)))
		}
		next.ServeHTTP(w, r)
	})
}

func (h *handler) sessionContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "sessionID")
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(r.Context(), w, fmt.Errorf("%w: invalid session id %q", model.ErrValidation, raw))
			return
		}

		ctx := context.WithValue(r.Context(), sessionIDKey{}, id)
		ctx = logger.ContextWithFields(ctx, logger.String("session_id", id.String()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionID(r *http.Request) uuid.UUID {
	id, _ := r.Context().Value(sessionIDKey{}).(uuid.UUID)
	return id
}
