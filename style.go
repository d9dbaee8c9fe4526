package emailguess

import (
	"fmt"
	"strconv"
	"strings"
)

// Style is one of the fixed naming conventions used to derive a local part.
type Style uint8

// Styles in canonical order. The zero value is not a valid style.
const (
	FirstnameDotLastname Style = iota + 1 // firstname.lastname
	InitialDotLastname                    // f.lastname
	FirstnameDotInitial                   // firstname.l
	FirstnameLastname                     // firstnamelastname
	InitialLastname                       // flastname
	LastnameDotFirstname                  // lastname.firstname
	InitialDotFirstname                   // l.firstname
	Initials                              // initials
)

var styleTags = [...]string{
	FirstnameDotLastname: "firstname.lastname",
	InitialDotLastname:   "f.lastname",
	FirstnameDotInitial:  "firstname.l",
	FirstnameLastname:    "firstnamelastname",
	InitialLastname:      "flastname",
	LastnameDotFirstname: "lastname.firstname",
	InitialDotFirstname:  "l.firstname",
	Initials:             "initials",
}

var styleExamples = [...]string{
	FirstnameDotLastname: "john.doe",
	InitialDotLastname:   "j.doe",
	FirstnameDotInitial:  "john.d",
	FirstnameLastname:    "johndoe",
	InitialLastname:      "jdoe",
	LastnameDotFirstname: "doe.john",
	InitialDotFirstname:  "d.john",
	Initials:             "jd",
}

// Styles returns every style in canonical order.
func Styles() []Style {
	return []Style{
		FirstnameDotLastname,
		InitialDotLastname,
		FirstnameDotInitial,
		FirstnameLastname,
		InitialLastname,
		LastnameDotFirstname,
		InitialDotFirstname,
		Initials,
	}
}

// Valid reports whether s is one of the defined styles.
func (s Style) Valid() bool {
	return s >= FirstnameDotLastname && s <= Initials
}

func (s Style) String() string {
	if !s.Valid() {
		return "Style(" + strconv.Itoa(int(s)) + ")"
	}
	return styleTags[s]
}

// Example returns the local part the style renders for "John Doe".
func (s Style) Example() string {
	if !s.Valid() {
		return ""
	}
	return styleExamples[s]
}

// ParseStyle accepts a style tag ("f.lastname") or its 1-based position in
// canonical order ("2").
func ParseStyle(v string) (Style, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, s := range Styles() {
		if styleTags[s] == v {
			return s, nil
		}
	}
	if n, err := strconv.Atoi(v); err == nil && n >= int(FirstnameDotLastname) && n <= int(Initials) {
		return Style(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, v)
}

// ParseStyles parses a list of tags, preserving order and dropping duplicates.
func ParseStyles(values ...string) ([]Style, error) {
	seen := make(map[Style]bool, len(values))
	out := make([]Style, 0, len(values))
	for _, v := range values {
		s, err := ParseStyle(v)
		if err != nil {
			return nil, err
		}
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out, nil
}

func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, uint8(s))
	}
	return []byte(styleTags[s]), nil
}

func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
