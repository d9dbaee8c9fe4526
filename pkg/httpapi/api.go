package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/emailguess"
	"github.com/dmitrymomot/emailguess/pkg/clientip"
	"github.com/dmitrymomot/emailguess/pkg/httpserver"
	"github.com/dmitrymomot/emailguess/pkg/logger"
	"github.com/dmitrymomot/emailguess/pkg/ratelimiter"
	"github.com/dmitrymomot/emailguess/pkg/requestid"
)

const (
	defaultMaxNames     = 100
	defaultMaxBodyBytes = 1 << 20
	defaultTimeout      = 30 * time.Second
)

// API serves the generator and the finder over HTTP.
type API struct {
	finder       *emailguess.Finder
	normalize    []emailguess.NormalizeOption
	limiter      *ratelimiter.Bucket
	gatherer     prometheus.Gatherer
	probes       []httpserver.Probe
	maxNames     int
	maxBodyBytes int64
	timeout      time.Duration
	log          *slog.Logger
}

// Option configures an API.
type Option func(*API)

// WithFinder enables POST /find. Without it the endpoint answers 503.
func WithFinder(f *emailguess.Finder) Option {
	return func(a *API) { a.finder = f }
}

// WithNormalizeOptions applies to every name rendered by POST /render.
func WithNormalizeOptions(opts ...emailguess.NormalizeOption) Option {
	return func(a *API) { a.normalize = append(a.normalize, opts...) }
}

// WithRateLimit limits requests per client IP.
func WithRateLimit(b *ratelimiter.Bucket) Option {
	return func(a *API) { a.limiter = b }
}

// WithMetrics exposes g on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(a *API) { a.gatherer = g }
}

// WithReadiness adds probes run by GET /health/ready.
func WithReadiness(probes ...httpserver.Probe) Option {
	return func(a *API) { a.probes = append(a.probes, probes...) }
}

// WithMaxNames caps the names accepted by a single request.
func WithMaxNames(n int) Option {
	return func(a *API) {
		if n > 0 {
			a.maxNames = n
		}
	}
}

// WithRequestTimeout bounds the handling time of a request.
func WithRequestTimeout(d time.Duration) Option {
	return func(a *API) {
		if d > 0 {
			a.timeout = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

func New(opts ...Option) *API {
	a := &API{
		maxNames:     defaultMaxNames,
		maxBodyBytes: defaultMaxBodyBytes,
		timeout:      defaultTimeout,
		log:          logger.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With(logger.Component("httpapi"))
	return a
}

// Handler returns the routed handler.
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(clientip.Middleware)
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/health/live", httpserver.HealthCheckHandler(a.log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(a.log, a.probes...))
	if a.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(a.gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		if a.limiter != nil {
			r.Use(ratelimiter.Middleware(a.limiter, clientKey, a.denyRateLimited))
		}
		r.Use(middleware.Timeout(a.timeout))

		r.Get("/styles", a.styles)
		r.Post("/render", a.render)
		r.Post("/find", a.find)
	})

	return r
}

// clientKey buckets by client IP without the port, so a client opening
// several connections shares one bucket.
func clientKey(r *http.Request) string {
	ip := clientip.FromContext(r.Context())
	if ip == "" {
		ip = clientip.GetIP(r)
	}
	return "ip:" + ip
}

func (a *API) denyRateLimited(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result, err error) {
	if err != nil {
		writeError(r.Context(), a.log, w, err)
		return
	}
	writeJSON(w, http.StatusTooManyRequests, Response{Error: &ErrorDetail{
		Code:    "rate_limited",
		Message: http.StatusText(http.StatusTooManyRequests),
	}})
}
