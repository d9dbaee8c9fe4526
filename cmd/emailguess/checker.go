package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/emailguess"
	"github.com/dmitrymomot/emailguess/pkg/deliverability"
	"github.com/dmitrymomot/emailguess/pkg/httpserver"
	"github.com/dmitrymomot/emailguess/pkg/logger"
	"github.com/dmitrymomot/emailguess/pkg/ratelimiter"
	"github.com/dmitrymomot/emailguess/pkg/redis"
)

const (
	checkerSyntax = "syntax"
	checkerMX     = "mx"
	checkerAPI    = "api"
)

// checkers is an assembled checker plus the resources it holds.
type checkers struct {
	checker emailguess.Checker
	probes  []httpserver.Probe
	closers []func()
}

func (c *checkers) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// buildChecker assembles the checker named by cfg.Finder.Checker:
//
//	syntax  offline syntax check
//	mx      DNS MX lookup, cached per address
//	api     remote service, throttled per domain, falling back to mx when
//	        EMAILGUESS_FALLBACK_MX is set, cached per address
//
// Every checker is bounded by the check timeout. With a non-nil reg the
// checks are counted and timed.
func (a *app) buildChecker(ctx context.Context, reg prometheus.Registerer) (*checkers, error) {
	cfg := a.cfg
	kind := strings.ToLower(cfg.Finder.Checker)
	log := a.log.With(logger.Checker(kind))
	out := &checkers{}

	var c emailguess.Checker
	switch kind {
	case checkerSyntax:
		c = deliverability.NewSyntax()
	case checkerMX:
		c = deliverability.NewMXFromConfig(cfg.MX, deliverability.WithMXLogger(log))
	case checkerAPI:
		api, err := deliverability.NewAPI(cfg.API, deliverability.WithAPILogger(log))
		if err != nil {
			return nil, err
		}

		store := ratelimiter.NewMemoryStore()
		out.closers = append(out.closers, store.Close)
		bucket, err := ratelimiter.NewBucket(store, cfg.Throttle)
		if err != nil {
			out.Close()
			return nil, fmt.Errorf("api throttle: %w", err)
		}
		c = deliverability.Throttle(api, bucket)

		if cfg.Finder.FallbackMX {
			c = deliverability.Fallback(c, deliverability.NewMXFromConfig(cfg.MX, deliverability.WithMXLogger(log)))
		}
	default:
		return nil, fmt.Errorf("%w %q: expected syntax, mx or api", ErrUnknownChecker, cfg.Finder.Checker)
	}

	if reg != nil {
		m, err := deliverability.NewMetrics(reg)
		if err != nil {
			out.Close()
			return nil, err
		}
		c = deliverability.Instrument(c, kind, m)
	}

	c = deliverability.WithTimeout(c, cfg.Finder.CheckTimeout)

	if kind != checkerSyntax {
		store, err := a.resultStore(ctx, out)
		if err != nil {
			out.Close()
			return nil, err
		}
		c = deliverability.Cached(c, store, cfg.Cache.TTL, log)
	}

	out.checker = c
	return out, nil
}

// resultStore shares results through Redis when REDIS_URL is set and keeps
// them in process otherwise.
func (a *app) resultStore(ctx context.Context, out *checkers) (deliverability.Store, error) {
	if !a.cfg.Redis.Enabled() {
		return deliverability.NewLRUStore(a.cfg.Cache.Size), nil
	}

	client, err := redis.Connect(ctx, a.cfg.Redis)
	if err != nil {
		return nil, err
	}
	out.closers = append(out.closers, func() { _ = client.Close() })
	out.probes = append(out.probes, httpserver.Probe{Name: "redis", Check: redis.Healthcheck(client)})

	a.log.DebugContext(ctx, "using redis result cache")
	return deliverability.NewRedisStore(redis.NewStorage(client, a.cfg.Redis)), nil
}
