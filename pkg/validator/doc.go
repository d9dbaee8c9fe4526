// Package validator provides declarative validation rules.
//
// A Rule pairs a boolean Check with the error reported when it fails.
// Apply evaluates rules and aggregates failures into ValidationErrors, which
// satisfies the error interface and matches ErrValidationFailed with
// errors.Is:
//
//	err := validator.Apply(
//	    validator.Required("domain", domain),
//	    validator.ValidDomain("domain", domain),
//	    validator.RequiredSlice("names", names),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    details := errs.Details() // map[field][]message
//	}
//
// Rule families live in their own files (string_rules.go for presence and
// length, format_rules.go for e-mail addresses, local parts and domains).
// The package holds no global state and is safe for concurrent use.
package validator
