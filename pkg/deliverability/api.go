package deliverability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/dmitrymomot/emailguess/pkg/logger"
	"github.com/dmitrymomot/emailguess/pkg/requestid"
)

const maxResponseBytes = 1 << 20

// APIConfig configures the remote verification checker. The key is passed
// explicitly and never read from the environment by the checker itself.
type APIConfig struct {
	Endpoint    string        `env:"EMAILGUESS_API_ENDPOINT"`
	APIKey      string        `env:"EMAILGUESS_API_KEY"`
	Timeout     time.Duration `env:"EMAILGUESS_API_TIMEOUT" envDefault:"10s"`
	MaxRetries  uint          `env:"EMAILGUESS_API_MAX_RETRIES" envDefault:"3"`
	MaxElapsed  time.Duration `env:"EMAILGUESS_API_MAX_ELAPSED" envDefault:"30s"`
	AcceptRisky bool          `env:"EMAILGUESS_API_ACCEPT_RISKY" envDefault:"false"`
}

// Validate checks that Endpoint is an absolute http(s) URL.
func (c APIConfig) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("%w: api endpoint is required", ErrInvalidConfig)
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("%w: api endpoint: %w", ErrInvalidConfig, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: api endpoint must be an absolute http(s) URL", ErrInvalidConfig)
	}
	return nil
}

// API asks a remote verification service about each address:
//
//	GET {endpoint}?email=<address>
//	Authorization: Bearer <key>
//
// The service answers {"deliverable": bool} or {"result": "deliverable" |
// "undeliverable" | "risky" | "unknown"}. 429 and 5xx responses are retried
// with exponential backoff, honoring Retry-After. Other 4xx responses fail
// with ErrRejected. Exhausted retries, transport failures and "unknown"
// answers are reported as unavailable.
type API struct {
	cfg             APIConfig
	endpoint        *url.URL
	client          *http.Client
	initialInterval time.Duration
	log             *slog.Logger
}

// APIOption configures an API checker.
type APIOption func(*API)

// WithHTTPClient replaces the default client. The client's own timeout then
// applies instead of APIConfig.Timeout.
func WithHTTPClient(c *http.Client) APIOption {
	return func(a *API) {
		if c != nil {
			a.client = c
		}
	}
}

// WithInitialInterval sets the first backoff delay (default 200ms).
func WithInitialInterval(d time.Duration) APIOption {
	return func(a *API) {
		if d > 0 {
			a.initialInterval = d
		}
	}
}

func WithAPILogger(l *slog.Logger) APIOption {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

func NewAPI(cfg APIConfig, opts ...APIOption) (*API, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	endpoint, _ := url.Parse(cfg.Endpoint)

	a := &API{
		cfg:      cfg,
		endpoint: endpoint,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: &requestid.Transport{},
		},
		initialInterval: 200 * time.Millisecond,
		log:             logger.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// retryableError marks a failed attempt worth repeating, optionally after
// the delay the server asked for.
type retryableError struct {
	err   error
	after time.Duration
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

func (a *API) Check(ctx context.Context, address string) (bool, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = a.initialInterval
	exp.MaxInterval = 5 * time.Second

	var (
		attempts int
		lastErr  error
	)
	op := func() (bool, error) {
		attempts++
		ok, err := a.do(ctx, address)
		if err == nil {
			return ok, nil
		}

		var re *retryableError
		if !errors.As(err, &re) || ctx.Err() != nil {
			lastErr = err
			return false, backoff.Permanent(err)
		}
		lastErr = re.err
		if re.after > 0 {
			return false, backoff.RetryAfter(int(math.Ceil(re.after.Seconds())))
		}
		return false, re.err
	}

	retryOpts := []backoff.RetryOption{
		backoff.WithBackOff(exp),
		backoff.WithMaxTries(a.cfg.MaxRetries + 1),
		backoff.WithNotify(func(err error, next time.Duration) {
			a.log.DebugContext(ctx, "retrying verification request",
				logger.Address(address),
				logger.RetryCount(attempts),
				slog.Duration("next", next),
				logger.Error(err))
		}),
	}
	if a.cfg.MaxElapsed > 0 {
		retryOpts = append(retryOpts, backoff.WithMaxElapsedTime(a.cfg.MaxElapsed))
	}

	ok, err := backoff.Retry(ctx, op, retryOpts...)
	if err == nil {
		return ok, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}
	if lastErr != nil {
		err = lastErr
	}
	if errors.Is(err, ErrRejected) {
		return false, err
	}
	return false, unavailable(fmt.Errorf("verify after %d attempt(s): %w", attempts, err))
}

func (a *API) do(ctx context.Context, address string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url(address), nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")
	if a.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.cfg.APIKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return false, &retryableError{err: err}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		_ = resp.Body.Close()
	}()

	switch code := resp.StatusCode; {
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		return false, &retryableError{
			err:   fmt.Errorf("%w: status %d", ErrUnexpectedResponse, code),
			after: parseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
		}
	case code >= http.StatusBadRequest:
		return false, fmt.Errorf("%w: status %d", ErrRejected, code)
	case code < http.StatusOK || code >= http.StatusMultipleChoices:
		return false, fmt.Errorf("%w: status %d", ErrUnexpectedResponse, code)
	}

	var body struct {
		Deliverable *bool  `json:"deliverable"`
		Result      string `json:"result"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return false, fmt.Errorf("%w: decode body: %w", ErrUnexpectedResponse, err)
	}
	if body.Deliverable != nil {
		return *body.Deliverable, nil
	}

	switch strings.ToLower(body.Result) {
	case "deliverable", "valid":
		return true, nil
	case "undeliverable", "invalid":
		return false, nil
	case "risky", "accept_all":
		return a.cfg.AcceptRisky, nil
	case "unknown":
		return false, unavailable(errors.New("verification service returned unknown"))
	}
	return false, fmt.Errorf("%w: result %q", ErrUnexpectedResponse, body.Result)
}

func (a *API) url(address string) string {
	u := *a.endpoint
	q := u.Query()
	q.Set("email", address)
	u.RawQuery = q.Encode()
	return u.String()
}

// parseRetryAfter accepts delta-seconds or an HTTP date.
func parseRetryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		return max(t.Sub(now), 0)
	}
	return 0
}
