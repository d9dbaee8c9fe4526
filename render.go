package emailguess

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/emailguess/pkg/sanitizer"
)

const allowedChars = "abcdefghijklmnopqrstuvwxyz0123456789.-"

// Candidate is a rendered, sanitized address that has not been checked.
// It marshals to text (and JSON) as "local@domain".
type Candidate struct {
	LocalPart string
	Domain    string
}

func (c Candidate) String() string {
	if c.LocalPart == "" && c.Domain == "" {
		return ""
	}
	return c.LocalPart + "@" + c.Domain
}

func (c Candidate) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

var sanitizeParts = sanitizer.Compose(
	func(s string) string { return sanitizer.KeepChars(s, allowedChars) },
	func(s string) string { return sanitizer.CollapseRepeats(s, "-.") },
	dropHyphensAroundDots,
	func(s string) string { return sanitizer.CollapseRepeats(s, ".") },
	func(s string) string { return sanitizer.TrimChars(s, "-.") },
)

// SanitizeLocalPart removes every character outside [a-z0-9.-], collapses
// runs of "-" and ".", drops hyphens touching a dot and trims both from the
// ends. The result is either empty or matches ^[a-z0-9]([a-z0-9.-]*[a-z0-9])?$.
// SanitizeLocalPart is idempotent.
func SanitizeLocalPart(s string) string {
	return sanitizeParts(s)
}

// SanitizeDomain lowercases and trims the domain, drops a leading "@" and
// then applies the local part rules.
func SanitizeDomain(s string) string {
	s = strings.TrimPrefix(sanitizer.TrimToLower(s), "@")
	return sanitizeParts(s)
}

func dropHyphensAroundDots(s string) string {
	for strings.Contains(s, "-.") || strings.Contains(s, ".-") {
		s = strings.ReplaceAll(s, "-.", ".")
		s = strings.ReplaceAll(s, ".-", ".")
	}
	return s
}

// Render builds the candidate address for one name in one style.
// Every style uses both name components, so a name without a last name,
// or whose last name sanitizes to nothing, fails with ErrMissingLastName
// (ErrMissingFirstName for the first name).
func Render(n NormalizedName, domain string, s Style) (Candidate, error) {
	if !s.Valid() {
		return Candidate{}, fmt.Errorf("%w: %d", ErrUnknownStyle, uint8(s))
	}

	d := SanitizeDomain(domain)
	if d == "" {
		return Candidate{}, ErrEmptyDomain
	}
	if n.FirstName == "" {
		return Candidate{}, ErrMissingFirstName
	}
	if n.LastName == "" {
		return Candidate{}, fmt.Errorf("%w: style %s needs a last name", ErrMissingLastName, s)
	}
	// A component with nothing left after sanitizing is missing for every
	// style, not only for the ones that take its initial.
	if SanitizeLocalPart(n.FirstName) == "" {
		return Candidate{}, fmt.Errorf("%w: %q has no usable characters", ErrMissingFirstName, n.FirstName)
	}
	if SanitizeLocalPart(n.LastName) == "" {
		return Candidate{}, fmt.Errorf("%w: %q has no usable characters", ErrMissingLastName, n.LastName)
	}

	local, err := renderLocalPart(n, s)
	if err != nil {
		return Candidate{}, err
	}

	local = SanitizeLocalPart(local)
	if local == "" {
		return Candidate{}, fmt.Errorf("%w: %s renders an empty local part for %q %q",
			ErrInvalidInput, s, n.FirstName, n.LastName)
	}

	return Candidate{LocalPart: local, Domain: d}, nil
}

func renderLocalPart(n NormalizedName, s Style) (string, error) {
	f, l := n.FirstName, n.LastName

	switch s {
	case FirstnameDotLastname:
		return f + "." + l, nil
	case InitialDotLastname:
		f0, err := initial(f)
		if err != nil {
			return "", err
		}
		return f0 + "." + l, nil
	case FirstnameDotInitial:
		l0, err := initial(l)
		if err != nil {
			return "", err
		}
		return f + "." + l0, nil
	case FirstnameLastname:
		return f + l, nil
	case InitialLastname:
		f0, err := initial(f)
		if err != nil {
			return "", err
		}
		return f0 + l, nil
	case LastnameDotFirstname:
		return l + "." + f, nil
	case InitialDotFirstname:
		l0, err := initial(l)
		if err != nil {
			return "", err
		}
		return l0 + "." + f, nil
	case Initials:
		f0, err := initial(f)
		if err != nil {
			return "", err
		}
		l0, err := initial(l)
		if err != nil {
			return "", err
		}
		return f0 + l0, nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownStyle, uint8(s))
	}
}

// initial returns the first character of a name component that survives
// sanitization, so "'arcy" gives "a" rather than an apostrophe.
func initial(component string) (string, error) {
	for _, r := range component {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return string(r), nil
		}
	}
	return "", fmt.Errorf("%w: %q has no usable initial", ErrInvalidInput, component)
}
