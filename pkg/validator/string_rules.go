package validator

import (
	"fmt"
	"strings"
)

// Required fails on an empty or whitespace-only value.
func Required(field, value string) Rule {
	return newRule(field, "required", "field is required", func() bool {
		return strings.TrimSpace(value) != ""
	})
}

// MaxLen limits the length of value in bytes.
func MaxLen(field, value string, max int) Rule {
	return newRule(field, "max_length", fmt.Sprintf("must be at most %d characters long", max), func() bool {
		return len(value) <= max
	})
}

// RequiredSlice validates that a slice has at least one element.
func RequiredSlice[T any](field string, values []T) Rule {
	return newRule(field, "required", "must contain at least one item", func() bool {
		return len(values) > 0
	})
}

func MaxItems[T any](field string, values []T, max int) Rule {
	return newRule(field, "max_items", fmt.Sprintf("must contain at most %d items", max), func() bool {
		return len(values) <= max
	})
}
