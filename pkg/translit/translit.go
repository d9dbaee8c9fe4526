package translit

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Table maps a single rune to its replacement rune.
type Table map[rune]rune

// Option configures Fold.
type Option func(*config)

type config struct {
	tables     []Table
	stripMarks bool
}

// WithTable appends a lookup table consulted after Basic. Tables are
// consulted in the order they were added and the first match wins.
func WithTable(t Table) Option {
	return func(c *config) {
		if len(t) > 0 {
			c.tables = append(c.tables, t)
		}
	}
}

// WithExtended adds the extended Latin table and strips any combining marks
// left after table lookup using Unicode NFD decomposition.
func WithExtended() Option {
	return func(c *config) {
		c.tables = append(c.tables, Extended)
		c.stripMarks = true
	}
}

// Fold replaces characters found in the Basic table and any table added by
// options. Characters with no entry pass through unchanged unless mark
// stripping is enabled.
func Fold(s string, opts ...Option) string {
	cfg := &config{tables: []Table{Basic}}
	for _, opt := range opts {
		opt(cfg)
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(lookup(cfg.tables, r))
	}

	if !cfg.stripMarks {
		return b.String()
	}
	return StripMarks(b.String())
}

// StripMarks removes combining diacritical marks ("Jiří" -> "Jiri").
// Characters that do not decompose (ø, ł, ß) are left untouched.
func StripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func lookup(tables []Table, r rune) rune {
	for _, t := range tables {
		if mapped, ok := t[r]; ok {
			return mapped
		}
	}
	return r
}
