package main

import (
	"context"
	"net"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/emailguess/pkg/httpapi"
	"github.com/dmitrymomot/emailguess/pkg/httpserver"
	"github.com/dmitrymomot/emailguess/pkg/ratelimiter"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr  string
		flags finderFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generator and the finder over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags.apply(&a.cfg.Finder)
			if addr != "" {
				a.cfg.HTTP.Addr = addr
			}

			ctx := cmd.Context()
			return a.serve(ctx, flags.styles, nil)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from HTTP_ADDR)")
	flags.register(cmd)

	return cmd
}

// serve runs the HTTP API until ctx ends or SIGINT/SIGTERM arrives.
// onStart receives the bound address.
func (a *app) serve(ctx context.Context, styles []string, onStart func(net.Addr)) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	checks, err := a.buildChecker(ctx, reg)
	if err != nil {
		return err
	}
	defer checks.Close()

	finder, err := a.newFinder(checks.checker, styles)
	if err != nil {
		return err
	}

	limitStore := ratelimiter.NewMemoryStore()
	defer limitStore.Close()
	limiter, err := ratelimiter.NewBucket(limitStore, a.cfg.RateLimit)
	if err != nil {
		return err
	}

	api := httpapi.New(
		httpapi.WithFinder(finder),
		httpapi.WithNormalizeOptions(a.normalizeOptions()...),
		httpapi.WithRateLimit(limiter),
		httpapi.WithMetrics(reg),
		httpapi.WithReadiness(checks.probes...),
		httpapi.WithMaxNames(a.cfg.Finder.MaxNames),
		httpapi.WithLogger(a.log),
	)

	opts := []httpserver.Option{httpserver.WithLogger(a.log)}
	if onStart != nil {
		opts = append(opts, httpserver.WithStartHook(onStart))
	}

	return httpserver.NewFromConfig(a.cfg.HTTP, opts...).Run(ctx, api.Handler())
}
