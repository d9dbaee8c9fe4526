package sanitizer

import (
	"strings"
)

// NormalizeEmail prevents common email input errors but preserves original for invalid formats.
// Consolidates consecutive dots which can cause delivery issues with some email providers.
func NormalizeEmail(email string) string {
	email = TrimToLower(email)

	local, domain, ok := SplitEmail(email)
	if !ok {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// SplitEmail splits an address on its single "@".
// ok is false when the address does not contain exactly one "@".
func SplitEmail(email string) (local, domain string, ok bool) {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func ExtractEmailDomain(email string) string {
	_, domain, ok := SplitEmail(strings.TrimSpace(email))
	if !ok {
		return ""
	}
	return strings.ToLower(domain)
}

// MaskEmail preserves full domain for user recognition while hiding personal info.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := SplitEmail(email)
	if !ok || local == "" {
		return email
	}

	if len(local) == 1 {
		return "*@" + domain
	}

	return local[:1] + strings.Repeat("*", len(local)-1) + "@" + domain
}
