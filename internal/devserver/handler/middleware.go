package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/go-chi/chi/v5/middleware"
)

type contextKey string

const userIDKey contextKey = "user_id"

func userID(ctx context.Context) string {
	v, _ := ctx.Value(userIDKey).(string)
	return v
}

// requireAuth accepts "Authorization: Bearer <access token>" and answers
// 401 for anything else.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeader)
		token, found := strings.CutPrefix(header, common.BearerPrefix)
		if !found || token == "" {
			h.fail(w, r, http.StatusUnauthorized, "Missing access token")
			return
		}

		id, err := h.users.Authenticate(token)
		if err != nil {
			h.serviceError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, id)))
	})
}

// requestLog logs method, path, status and duration of each request.
func (h *Handler) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.log.Debug(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
