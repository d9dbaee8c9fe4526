package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	dotRegex        = regexp.MustCompile(`\.+`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)
