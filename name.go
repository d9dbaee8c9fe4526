package emailguess

import (
	"strings"

	"github.com/dmitrymomot/emailguess/pkg/translit"
)

// NormalizedName is a name split into its first and last components,
// lowercased and folded to ASCII.
type NormalizedName struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// NormalizeOption configures Normalize.
type NormalizeOption func(*normalizeConfig)

type normalizeConfig struct {
	translit      []translit.Option
	firstWordOnly bool
}

// WithTransliteration folds diacritics beyond the basic French table,
// such as ñ, ø or ř. Without it those characters pass through and are later
// removed by sanitization.
func WithTransliteration() NormalizeOption {
	return func(c *normalizeConfig) {
		c.translit = append(c.translit, translit.WithExtended())
	}
}

// WithFirstWordOnly keeps only the first word as the first name and drops
// middle words, instead of hyphen-joining every word but the last.
func WithFirstWordOnly() NormalizeOption {
	return func(c *normalizeConfig) {
		c.firstWordOnly = true
	}
}

// Normalize folds accents, lowercases and splits a raw name.
// The last word is the last name; the words before it, joined with "-", are
// the first name. A single word yields an empty last name.
func Normalize(name string, opts ...NormalizeOption) (NormalizedName, error) {
	cfg := &normalizeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	folded := translit.Fold(name, cfg.translit...)
	words := strings.Fields(strings.ToLower(strings.TrimSpace(folded)))

	switch len(words) {
	case 0:
		return NormalizedName{}, ErrEmptyName
	case 1:
		return NormalizedName{FirstName: words[0]}, nil
	}

	last := len(words) - 1
	first := strings.Join(words[:last], "-")
	if cfg.firstWordOnly {
		first = words[0]
	}

	return NormalizedName{FirstName: first, LastName: words[last]}, nil
}
