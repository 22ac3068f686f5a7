package health

import (
	"context"
	"net/http"
	"time"

	"github.com/you-humble/partexplorer/platform/logger"
)

const probeTimeout = 2 * time.Second

// Probe reports whether one backing dependency is usable.
type Probe func(ctx context.Context) error

// NewHealthCheck answers SERVING while every probe passes and NOT_SERVING
// with 503 otherwise.
func NewHealthCheck(probes map[string]Probe) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
		defer cancel()

		status, body := http.StatusOK, "SERVING"
		for name, probe := range probes {
			if err := probe(ctx); err != nil {
				logger.Warn(ctx, "health probe failed", logger.String("probe", name), logger.ErrorF(err))
				status, body = http.StatusServiceUnavailable, "NOT_SERVING"
				break
			}
		}

		w.WriteHeader(status)
		if _, err := w.Write([]byte(body)); err != nil {
			logger.Error(r.Context(), "health check", logger.ErrorF(err))
		}
	}
}
