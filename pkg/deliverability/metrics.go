package deliverability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/emailguess"
)

// Result label values of emailguess_checks_total.
const (
	resultDeliverable   = "deliverable"
	resultUndeliverable = "undeliverable"
	resultUnavailable   = "unavailable"
	resultError         = "error"
)

// Metrics holds the checker collectors. One Metrics serves any number of
// instrumented checkers, told apart by the checker label.
type Metrics struct {
	checks   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the collectors with reg. Collectors already
// registered by an earlier call are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: prometheus registerer is nil", ErrInvalidConfig)
	}

	checks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "emailguess_checks_total",
		Help: "Deliverability checks by checker and result",
	}, []string{"checker", "result"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "emailguess_check_duration_seconds",
		Help:    "Duration of deliverability checks by checker",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"checker"})

	var err error
	if checks, err = register(reg, checks); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}

	return &Metrics{checks: checks, duration: duration}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register collector: %w", err)
	}
	return c, nil
}

// Instrument counts and times every call to c under the given checker name.
func Instrument(c emailguess.Checker, name string, m *Metrics) emailguess.Checker {
	return emailguess.CheckerFunc(func(ctx context.Context, address string) (bool, error) {
		start := time.Now()
		ok, err := c.Check(ctx, address)
		m.duration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		m.checks.WithLabelValues(name, resultLabel(ok, err)).Inc()
		return ok, err
	})
}

func resultLabel(ok bool, err error) string {
	switch {
	case errors.Is(err, emailguess.ErrCheckUnavailable):
		return resultUnavailable
	case err != nil:
		return resultError
	case ok:
		return resultDeliverable
	}
	return resultUndeliverable
}
