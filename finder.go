package emailguess

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/emailguess/pkg/async"
	"github.com/dmitrymomot/emailguess/pkg/logger"
)

// UnavailablePolicy decides what an inconclusive check means. Conclusive
// checker errors always abort with ErrCheckFailed.
type UnavailablePolicy uint8

const (
	// UnavailableAsInvalid counts an inconclusive candidate as not deliverable.
	UnavailableAsInvalid UnavailablePolicy = iota
	// UnavailableAsDeliverable accepts an inconclusive candidate.
	UnavailableAsDeliverable
	// UnavailableFails aborts the run with the checker error.
	UnavailableFails
)

// ParseUnavailablePolicy accepts "invalid", "deliverable" or "fail".
func ParseUnavailablePolicy(v string) (UnavailablePolicy, error) {
	switch v {
	case "invalid", "":
		return UnavailableAsInvalid, nil
	case "deliverable":
		return UnavailableAsDeliverable, nil
	case "fail":
		return UnavailableFails, nil
	}
	return 0, fmt.Errorf("%w: unknown unavailable policy %q", ErrInvalidInput, v)
}

// Verdict is the outcome of checking one candidate.
type Verdict struct {
	Index       int       `json:"index"`
	Name        string    `json:"name"`
	Style       Style     `json:"style"`
	Candidate   Candidate `json:"candidate"`
	Deliverable bool      `json:"deliverable"`
	Err         error     `json:"-"`
}

// Match is the first deliverable candidate found for a name.
type Match struct {
	Index     int       `json:"index"`
	Name      string    `json:"name"`
	Found     bool      `json:"found"`
	Style     Style     `json:"style,omitempty"`
	Candidate Candidate `json:"candidate"`
	Err       error     `json:"-"`
}

// FinderOption configures a Finder.
type FinderOption func(*Finder)

// WithConcurrency bounds how many names are checked at once. Values below 1 are ignored.
func WithConcurrency(n int) FinderOption {
	return func(f *Finder) {
		if n > 0 {
			f.concurrency = n
		}
	}
}

func WithLogger(l *slog.Logger) FinderOption {
	return func(f *Finder) {
		if l != nil {
			f.log = l
		}
	}
}

// WithStyles restricts and orders the styles tried for each name.
func WithStyles(styles ...Style) FinderOption {
	return func(f *Finder) {
		valid := make([]Style, 0, len(styles))
		for _, s := range styles {
			if s.Valid() {
				valid = append(valid, s)
			}
		}
		if len(valid) > 0 {
			f.styles = valid
		}
	}
}

func WithUnavailablePolicy(p UnavailablePolicy) FinderOption {
	return func(f *Finder) { f.policy = p }
}

// WithNormalizeOptions passes options to Normalize for every name.
func WithNormalizeOptions(opts ...NormalizeOption) FinderOption {
	return func(f *Finder) {
		f.normalize = append(f.normalize, opts...)
	}
}

// Finder checks the candidates of each name and picks the first deliverable
// one in style order.
type Finder struct {
	checker     Checker
	concurrency int
	styles      []Style
	policy      UnavailablePolicy
	normalize   []NormalizeOption
	log         *slog.Logger
}

func NewFinder(c Checker, opts ...FinderOption) *Finder {
	f := &Finder{
		checker:     c,
		concurrency: 4,
		styles:      Styles(),
		policy:      UnavailableAsInvalid,
		log:         logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Find returns one Match per name, in input order. Names that cannot be
// normalized or rendered get a Match with Err set; they do not stop the run.
// The run only fails when ctx ends or the policy is UnavailableFails.
func (f *Finder) Find(ctx context.Context, names []string, domain string) ([]Match, error) {
	if SanitizeDomain(domain) == "" {
		return nil, ErrEmptyDomain
	}

	start := time.Now()
	matches := make([]Match, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)
	for i, name := range names {
		g.Go(func() error {
			m, err := f.findOne(gctx, i, name, domain)
			matches[i] = m
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	found := 0
	for _, m := range matches {
		if m.Found {
			found++
		}
	}
	f.log.InfoContext(ctx, "find completed",
		logger.Domain(domain),
		logger.Count(len(names)),
		slog.Int("found", found),
		logger.Duration(time.Since(start)),
	)

	return matches, nil
}

// CheckAll checks every style of every name and returns all verdicts, ordered
// by name and then by style. Rendering errors are reported as verdicts.
func (f *Finder) CheckAll(ctx context.Context, names []string, domain string) ([]Verdict, error) {
	if SanitizeDomain(domain) == "" {
		return nil, ErrEmptyDomain
	}

	perName := make([][]Verdict, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)
	for i, name := range names {
		g.Go(func() error {
			verdicts, err := f.checkName(gctx, i, name, domain, false)
			perName[i] = verdicts
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Verdict, 0, len(names)*len(f.styles))
	for _, v := range perName {
		out = append(out, v...)
	}
	return out, nil
}

func (f *Finder) findOne(ctx context.Context, index int, name, domain string) (Match, error) {
	m := Match{Index: index, Name: name}

	verdicts, err := f.checkName(ctx, index, name, domain, true)
	if err != nil {
		return m, err
	}

	var firstErr error
	for _, v := range verdicts {
		if v.Deliverable {
			m.Found = true
			m.Style = v.Style
			m.Candidate = v.Candidate
			return m, nil
		}
		if v.Err != nil && firstErr == nil && errors.Is(v.Err, ErrInvalidInput) {
			firstErr = v.Err
		}
	}

	// Only report input errors when no style could be rendered at all.
	if firstErr != nil && !anyRendered(verdicts) {
		m.Err = firstErr
	}
	return m, nil
}

// checkName renders every style and checks the candidates concurrently.
// With stopAtFirst the verdicts end at the first deliverable candidate and
// the remaining checks are cancelled.
func (f *Finder) checkName(ctx context.Context, index int, name, domain string, stopAtFirst bool) ([]Verdict, error) {
	n, err := Normalize(name, f.normalize...)
	if err != nil {
		verdicts := make([]Verdict, len(f.styles))
		for i, s := range f.styles {
			verdicts[i] = Verdict{Index: index, Name: name, Style: s, Err: err}
		}
		return verdicts, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	verdicts := make([]Verdict, len(f.styles))
	futures := make([]*async.Future[bool], len(f.styles))
	for i, s := range f.styles {
		verdicts[i] = Verdict{Index: index, Name: name, Style: s}
		c, err := Render(n, domain, s)
		if err != nil {
			verdicts[i].Err = err
			continue
		}
		verdicts[i].Candidate = c
		futures[i] = async.Async(ctx, c.String(), f.checker.Check)
	}

	for i, future := range futures {
		if future == nil {
			continue
		}
		ok, err := future.AwaitContext(ctx)
		v := &verdicts[i]
		v.Deliverable, v.Err = ok, err

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			if !errors.Is(err, ErrCheckUnavailable) {
				f.log.WarnContext(ctx, "check failed",
					logger.Style(v.Style), logger.Address(v.Candidate.String()), logger.Error(err))
				return nil, fmt.Errorf("%w: %s: %w", ErrCheckFailed, v.Candidate, err)
			}
			f.log.DebugContext(ctx, "check inconclusive",
				logger.Style(v.Style), logger.Address(v.Candidate.String()), logger.Error(err))

			switch f.policy {
			case UnavailableFails:
				return nil, fmt.Errorf("check %s: %w", v.Candidate, err)
			case UnavailableAsDeliverable:
				v.Deliverable = true
			}
		}

		if v.Deliverable && stopAtFirst {
			return verdicts[:i+1], nil
		}
	}

	return verdicts, nil
}

func anyRendered(verdicts []Verdict) bool {
	for _, v := range verdicts {
		if v.Candidate.LocalPart != "" {
			return true
		}
	}
	return false
}
