package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/emailguess/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Run("no transforms", func(t *testing.T) {
		assert.Equal(t, " A ", sanitizer.Apply(" A "))
	})

	t.Run("runs in order", func(t *testing.T) {
		result := sanitizer.Apply("  Hello  ",
			sanitizer.TrimToLower,
			func(s string) string { return s + "!" },
		)
		assert.Equal(t, "hello!", result)
	})

	t.Run("generic types", func(t *testing.T) {
		double := func(n int) int { return n * 2 }
		assert.Equal(t, 8, sanitizer.Apply(2, double, double))
	})
}

func TestCompose(t *testing.T) {
	clean := sanitizer.Compose(
		sanitizer.TrimToLower,
		func(s string) string { return sanitizer.KeepChars(s, "abcdefghijklmnopqrstuvwxyz-") },
		func(s string) string { return sanitizer.CollapseRepeats(s, "-") },
	)

	assert.Equal(t, "a-b", clean("  A--!!-B "))
	// reusable
	assert.Equal(t, "x-y", clean("X---Y"))
	assert.Equal(t, strings.Repeat("z", 3), clean("ZZZ"))
}
