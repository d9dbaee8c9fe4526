// Package httpapi exposes the candidate generator and the finder as a JSON
// HTTP API built on chi.
//
// Routes:
//
//	GET  /styles        list styles with their example local part
//	POST /render        {"names": [...], "domain": "...", "style": "..."}
//	POST /find          {"names": [...], "domain": "..."}
//	GET  /health/live   liveness probe
//	GET  /health/ready  readiness probe
//	GET  /metrics       Prometheus metrics, when a gatherer is configured
//
// Every JSON body uses the envelope
//
//	{"data": ..., "error": {"code": "...", "message": "...", "details": {...}}}
//
// Input errors answer 422, malformed JSON 400, and an unavailable
// deliverability check 503 (only reachable with the fail policy).
//
// Usage:
//
//	api := httpapi.New(
//		httpapi.WithFinder(finder),
//		httpapi.WithRateLimit(bucket),
//		httpapi.WithMetrics(prometheus.DefaultGatherer),
//		httpapi.WithLogger(log),
//	)
//	err := httpserver.NewFromConfig(cfg.HTTP).Run(ctx, api.Handler())
package httpapi
