package logger

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/emailguess/pkg/sanitizer"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Checker records the deliverability checker name under the key "checker".
func Checker(name string) slog.Attr {
	return slog.String("checker", name)
}

// Style records a naming style under the key "style".
func Style(s fmt.Stringer) slog.Attr {
	return slog.String("style", s.String())
}

// Address records an e-mail address with its local part masked.
func Address(addr string) slog.Attr {
	return slog.String("address", sanitizer.MaskEmail(addr))
}

// Domain records a mail domain under the key "domain".
func Domain(d string) slog.Attr {
	return slog.String("domain", d)
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// RetryCount records the retry count under the key "retry_count".
func RetryCount(count int) slog.Attr {
	return slog.Int("retry_count", count)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
