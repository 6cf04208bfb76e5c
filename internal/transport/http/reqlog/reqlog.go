// Package reqlog binds request attributes to the logging context.
package reqlog

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/you-humble/pcbuilder/platform/logger"
)

// Middleware must run after middleware.RequestID.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithFields(r.Context(),
			logger.String("request_id", middleware.GetReqID(r.Context())),
			logger.String("route", r.Method+" "+r.URL.Path),
		)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
