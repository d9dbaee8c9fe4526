package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

const (
	maxLocalPartLength = 64
	maxDomainLength    = 253
	maxLabelLength     = 63
)

var (
	// Conservative dot-atom: lowercase ASCII, digits, dot, hyphen, underscore, plus.
	localPartRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9._+-]*[a-z0-9])?$`)

	domainLabelRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)
)

// ValidEmail validates that a string is a valid email address using RFC 5322.
func ValidEmail(field, value string) Rule {
	return newRule(field, "email", "must be a valid email address", func() bool {
		if strings.TrimSpace(value) == "" {
			return false
		}

		addr, err := mail.ParseAddress(value)
		if err != nil || addr.Name != "" || addr.Address != value {
			return false
		}

		at := strings.LastIndex(addr.Address, "@")
		if at <= 0 {
			return false
		}

		return isDomain(strings.ToLower(addr.Address[at+1:]))
	})
}

// ValidLocalPart validates the part of an address before "@" against a
// conservative lowercase dot-atom that most providers accept.
func ValidLocalPart(field, value string) Rule {
	return newRule(field, "local_part", "must be a valid email local part", func() bool {
		return len(value) <= maxLocalPartLength &&
			localPartRegex.MatchString(value) &&
			!strings.Contains(value, "..")
	})
}

// ValidDomain validates a lowercase DNS host name with at least two labels.
func ValidDomain(field, value string) Rule {
	return newRule(field, "domain", "must be a valid domain name", func() bool {
		return isDomain(value)
	})
}

func isDomain(value string) bool {
	if value == "" || len(value) > maxDomainLength {
		return false
	}

	labels := strings.Split(value, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if len(label) > maxLabelLength || !domainLabelRegex.MatchString(label) {
			return false
		}
	}
	return true
}
