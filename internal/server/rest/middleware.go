package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/common"
)

type contextKey string

const emailContextKey contextKey = "email"

// EmailFromContext returns the signed-in email attached by requireAuth.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailContextKey).(string)
	return email, ok && email != ""
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get(common.AuthorizationHeader)
	token, ok := strings.CutPrefix(h, common.BearerPrefix)
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// requireAuth rejects requests without a valid bearer token with 401.
func (h *handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token", "authentication_error", h.logger)
			return
		}
		email, err := h.Auth.Identify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token", "authentication_error", h.logger)
			return
		}
		ctx := context.WithValue(r.Context(), emailContextKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin applies the same admission rule as the admin area: a
// privileged, active authorization record for the token's email.
func (h *handler) requireAdmin(next http.Handler) http.Handler {
	return h.requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, _ := EmailFromContext(r.Context())
		ok, err := h.UserEntries.Admitted(r.Context(), email)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		if !ok {
			writeError(w, http.StatusForbidden, "admin access required", "permission_error", h.logger)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}
