package sanitizer

import (
	"strings"
	"unicode"
)

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// RemoveExtraWhitespace replaces runs of whitespace with a single space and trims.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars drops control characters except newline, carriage
// return and tab.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// SingleLine joins a multi-line string into one line with normalized spacing.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return RemoveExtraWhitespace(s)
}

// KeepFunc keeps only the runes for which keep returns true.
func KeepFunc(s string, keep func(rune) bool) string {
	return strings.Map(func(r rune) rune {
		if keep(r) {
			return r
		}
		return -1
	}, s)
}

// KeepChars keeps only the runes present in allowed.
func KeepChars(s, allowed string) string {
	return KeepFunc(s, func(r rune) bool {
		return strings.ContainsRune(allowed, r)
	})
}

// CollapseRepeats replaces every run of a character listed in chars with a
// single occurrence of it. Runs of different characters are independent:
// "a--..b" with chars "-." becomes "a-.b".
func CollapseRepeats(s, chars string) string {
	if s == "" || chars == "" {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	var prev rune = -1
	for _, r := range s {
		if r == prev && strings.ContainsRune(chars, r) {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

// TrimChars strips leading and trailing runes contained in cutset.
func TrimChars(s, cutset string) string {
	return strings.Trim(s, cutset)
}
