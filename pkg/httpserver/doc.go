// Package httpserver runs an http.Handler with graceful shutdown, server
// timeouts and health-check handlers.
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStartHook(func(addr net.Addr) {
//			fmt.Println("listening on", addr)
//		}),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// Run blocks until ctx is cancelled, SIGINT/SIGTERM arrives or Shutdown is
// called, then drains in-flight requests within the shutdown timeout.
// Errors wrap ErrStart or ErrShutdown.
//
// HealthCheckHandler backs /health/live (no probes) and /health/ready
// (one Probe per dependency, e.g. Redis).
package httpserver
