package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// pathID returns the last "/" segment of the wildcard tail, so
// /api/coaches/skill/a/b deletes "b" and a trailing slash yields "".
func pathID(r *http.Request) string {
	tail := chi.URLParam(r, "*")
	if i := strings.LastIndexByte(tail, '/'); i >= 0 {
		return tail[i+1:]
	}
	return tail
}
