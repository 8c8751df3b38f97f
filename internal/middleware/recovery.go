package middleware

import (
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/coachhub/catalog/internal/response"
)

// Recoverer is a middleware that recovers from panics.
// It logs the panic and answers with the generic 500 envelope.
func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				// Let net/http abort the connection as it would without us.
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				logger.Error("panic recovered",
					slog.String("request_id", GetRequestID(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("panic", rvr),
					slog.String("stack", string(debug.Stack())),
				)

				if os.Getenv("APP_ENV") == "development" {
					debug.PrintStack()
				}

				response.ServerError(w)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
