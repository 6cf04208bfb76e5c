package health

import (
	"context"
	"net/http"
	"time"

	"github.com/you-humble/pcbuilder/platform/logger"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler reports SERVING while the catalog database answers.
func Handler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		status, body := http.StatusOK, "SERVING"
		if err := db.Ping(ctx); err != nil {
			logger.Error(r.Context(), "health check ping", logger.ErrorF(err))
			status, body = http.StatusServiceUnavailable, "NOT_SERVING"
		}

		w.WriteHeader(status)
		if _, err := w.Write([]byte(body)); err != nil {
			logger.Error(r.Context(), "health check", logger.ErrorF(err))
		}
	}
}
