package deliverability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/dmitrymomot/emailguess/pkg/cache"
	"github.com/dmitrymomot/emailguess/pkg/logger"
	"github.com/dmitrymomot/emailguess/pkg/sanitizer"
)

// Resolver is the subset of *net.Resolver used by MX.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// MXConfig configures the DNS checker.
type MXConfig struct {
	ImplicitMX bool          `env:"EMAILGUESS_MX_IMPLICIT" envDefault:"true"`
	Timeout    time.Duration `env:"EMAILGUESS_MX_TIMEOUT" envDefault:"3s"`
	CacheSize  int           `env:"EMAILGUESS_MX_CACHE_SIZE" envDefault:"1024"`
	CacheTTL   time.Duration `env:"EMAILGUESS_MX_CACHE_TTL" envDefault:"5m"`
}

// MX accepts an address when its domain can receive mail: it has MX records,
// or, with implicit MX enabled, an A/AAAA record (RFC 5321 section 5.1).
// A null MX (RFC 7505) or a missing domain means not deliverable.
// Answers are cached per domain, since every candidate of a name shares it.
type MX struct {
	resolver Resolver
	implicit bool
	timeout  time.Duration
	domains  *cache.LRU[string, bool]
	cacheTTL time.Duration
	log      *slog.Logger
}

// MXOption configures an MX checker.
type MXOption func(*MX)

// WithResolver replaces net.DefaultResolver.
func WithResolver(r Resolver) MXOption {
	return func(m *MX) {
		if r != nil {
			m.resolver = r
		}
	}
}

// WithImplicitMX enables the A/AAAA fallback for domains without MX records.
func WithImplicitMX(enabled bool) MXOption {
	return func(m *MX) { m.implicit = enabled }
}

// WithMXTimeout bounds each domain lookup. Zero disables the bound.
func WithMXTimeout(d time.Duration) MXOption {
	return func(m *MX) { m.timeout = d }
}

// WithDomainCache sets the per-domain answer cache. A size below 1 disables it.
func WithDomainCache(size int, ttl time.Duration) MXOption {
	return func(m *MX) {
		m.domains = nil
		if size > 0 {
			m.domains = cache.NewLRU[string, bool](size)
		}
		m.cacheTTL = ttl
	}
}

func WithMXLogger(l *slog.Logger) MXOption {
	return func(m *MX) {
		if l != nil {
			m.log = l
		}
	}
}

func NewMX(opts ...MXOption) *MX {
	m := &MX{
		resolver: net.DefaultResolver,
		implicit: true,
		timeout:  3 * time.Second,
		domains:  cache.NewLRU[string, bool](1024),
		cacheTTL: 5 * time.Minute,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewMXFromConfig applies cfg before opts.
func NewMXFromConfig(cfg MXConfig, opts ...MXOption) *MX {
	base := []MXOption{
		WithImplicitMX(cfg.ImplicitMX),
		WithMXTimeout(cfg.Timeout),
		WithDomainCache(cfg.CacheSize, cfg.CacheTTL),
	}
	return NewMX(append(base, opts...)...)
}

func (m *MX) Check(ctx context.Context, address string) (bool, error) {
	if !ValidSyntax(address) {
		return false, nil
	}
	domain := sanitizer.ExtractEmailDomain(address)

	if m.domains != nil {
		if ok, found := m.domains.Get(domain); found {
			return ok, nil
		}
	}

	ok, err := m.lookup(ctx, domain)
	if err != nil {
		m.log.DebugContext(ctx, "mx lookup inconclusive", logger.Domain(domain), logger.Error(err))
		return false, err
	}

	if m.domains != nil {
		m.domains.PutWithTTL(domain, ok, m.cacheTTL)
	}
	return ok, nil
}

func (m *MX) lookup(ctx context.Context, domain string) (bool, error) {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	records, err := m.resolver.LookupMX(ctx, domain)
	if err != nil && !isNotFound(err) {
		return false, unavailable(fmt.Errorf("lookup mx %s: %w", domain, err))
	}

	if len(records) == 1 && (records[0].Host == "." || records[0].Host == "") {
		return false, nil
	}
	if len(records) > 0 {
		return true, nil
	}
	if !m.implicit {
		return false, nil
	}

	hosts, err := m.resolver.LookupHost(ctx, domain)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, unavailable(fmt.Errorf("lookup host %s: %w", domain, err))
	}
	return len(hosts) > 0, nil
}

// isNotFound reports an authoritative "no such name / no records" answer.
// Timeouts and server failures are not conclusive.
func isNotFound(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr) && dnsErr.IsNotFound
}
