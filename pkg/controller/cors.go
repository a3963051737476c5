package controller

import (
	"net/http"
	"slices"
)

const (
	corsAllowHeaders = "Content-Type, Content-Length, Accept-Encoding, Authorization, X-Api-Key, X-Request-Id, accept, origin, Cache-Control"
	corsAllowMethods = "POST, OPTIONS, GET, PATCH, DELETE"
	// Retry-After is read by the dashboard after a 429, Content-Disposition
	// names downloaded mockups.
	corsExposeHeaders = "Retry-After, X-Request-Id, X-Cache, Content-Disposition"
)

// CORS returns a middleware that allows the given origins and short-circuits
// OPTIONS preflight requests with 204 No Content. A "*" entry allows any
// origin without credentials. Listed origins are echoed back with
// credentials allowed.
func CORS(origins []string) func(http.Handler) http.Handler {
	wildcard := slices.Contains(origins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			switch {
			case origin != "" && slices.Contains(origins, origin):
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
			case wildcard:
				h.Set("Access-Control-Allow-Origin", "*")
			}
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Expose-Headers", corsExposeHeaders)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
