package middleware

import (
	"net/http"

	"github.com/coachhub/catalog/internal/response"
)

// CORS applies the catalog's permissive CORS headers to every response and
// answers OPTIONS on any path with 200 and an empty success envelope,
// before routing. Unknown paths therefore never 404 on preflight.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.SetHeaders(w.Header())

		if r.Method == http.MethodOptions {
			response.Write(w, http.StatusOK, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
