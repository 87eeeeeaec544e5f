package handlers

import (
	"net/http"
)

type MiddlewareProvider struct {
	allowedOrigins map[string]bool
}

func New() *MiddlewareProvider {
	return &MiddlewareProvider{
		allowedOrigins: map[string]bool{
			"http://localhost:3000": true,
			"http://localhost:3001": true,
			"http://localhost:5173": true,
		},
	}
}

// CORSMiddleware allows the contest frontends to call the API from the
// browser and short-circuits preflight requests
func (m *MiddlewareProvider) CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if m.allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
