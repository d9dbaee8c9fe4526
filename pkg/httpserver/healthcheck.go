package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/emailguess/pkg/logger"
)

// Probe checks one dependency.
type Probe struct {
	Name  string
	Check func(context.Context) error
}

// HealthCheckHandler serves liveness and readiness probes.
//
// Without probes it always answers 200 "ALIVE". With probes it runs each one
// against the request context and answers 200 "READY", or 503 "NOT_READY"
// as soon as one fails.
func HealthCheckHandler(log *slog.Logger, probes ...Probe) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")

		if len(probes) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		ctx := r.Context()
		for _, p := range probes {
			if err := p.Check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed",
					slog.String("probe", p.Name), logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
