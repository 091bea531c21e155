package api

import (
	"net/http"
	"strconv"
	"time"

	"svg-vault/internal/auth"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RedirectResponse struct {
	Redirect string `json:"redirect" example:"/auth"`
}

type LoadingResponse struct {
	Status string `json:"status" example:"loading"`
}

// AuthMiddleware resolves the caller and lets the guard decide: anonymous
// callers are sent to sign in, unresolved ones are told to retry.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _ := auth.BearerToken(r.Header.Get("Authorization"))
		id := s.provider.Resolve(r.Context(), token)

		switch auth.Guard(id.State) {
		case auth.DecisionAllow:
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
		case auth.DecisionRedirect:
			writeJSON(w, http.StatusUnauthorized, RedirectResponse{Redirect: auth.SignInPath})
		default:
			w.Header().Set("Retry-After", "1")
			writeJSON(w, http.StatusServiceUnavailable, LoadingResponse{Status: "loading"})
		}
	})
}

func currentIdentity(r *http.Request) auth.Identity {
	return auth.IdentityFromContext(r.Context())
}

func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
