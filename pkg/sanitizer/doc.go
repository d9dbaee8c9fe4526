// Package sanitizer provides small, composable helpers for cleaning user
// supplied strings and e-mail addresses.
//
// The helpers fall into two groups:
//
//   - Strings – trimming, case conversion, whitespace normalisation, charset
//     filtering (KeepFunc, KeepChars) and run collapsing (CollapseRepeats).
//
//   - E-mail – splitting, normalising, domain extraction and masking of
//     addresses before they are logged.
//
// The higher-order Apply and Compose helpers build sanitisation pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.TrimToLower,
//	    func(s string) string { return sanitizer.KeepChars(s, "abc.-") },
//	    func(s string) string { return sanitizer.CollapseRepeats(s, "-.") },
//	)
//
// # Error handling
//
// None of the helpers returns an error – they always fall back to a safe result
// (usually the original input or an empty string) if sanitisation fails.
//
// The package has no global mutable state and is safe for concurrent use.
package sanitizer
