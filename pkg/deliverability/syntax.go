package deliverability

import (
	"context"

	"github.com/dmitrymomot/emailguess/pkg/sanitizer"
	"github.com/dmitrymomot/emailguess/pkg/validator"
)

// Syntax accepts any address that is well formed. It never touches the
// network and is never unavailable.
type Syntax struct{}

func NewSyntax() Syntax { return Syntax{} }

func (Syntax) Check(_ context.Context, address string) (bool, error) {
	return ValidSyntax(address), nil
}

// ValidSyntax reports whether address parses as a bare RFC 5322 address
// with a conservative lowercase local part and a multi-label domain.
func ValidSyntax(address string) bool {
	local, domain, ok := sanitizer.SplitEmail(address)
	if !ok {
		return false
	}
	return validator.Apply(
		validator.ValidEmail("address", address),
		validator.ValidLocalPart("local_part", local),
		validator.ValidDomain("domain", domain),
	) == nil
}
