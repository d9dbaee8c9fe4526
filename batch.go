package emailguess

import "fmt"

// Batch maps each style to the candidates of a list of names. Every slice is
// aligned with the input names by index.
type Batch map[Style][]Candidate

// StyledCandidate pairs a candidate with the style that produced it.
type StyledCandidate struct {
	Style     Style     `json:"style"`
	Candidate Candidate `json:"candidate"`
}

// ForName returns all candidates of the i-th name in canonical style order.
// Styles missing from the batch are skipped.
func (b Batch) ForName(i int) []StyledCandidate {
	out := make([]StyledCandidate, 0, len(b))
	for _, s := range Styles() {
		list, ok := b[s]
		if !ok || i < 0 || i >= len(list) {
			continue
		}
		out = append(out, StyledCandidate{Style: s, Candidate: list[i]})
	}
	return out
}

// RenderAll renders every style for every name. The first failing name
// aborts the batch with a *NameError wrapping the cause.
func RenderAll(names []string, domain string, opts ...NormalizeOption) (Batch, error) {
	normalized, err := normalizeAll(names, opts...)
	if err != nil {
		return nil, err
	}

	batch := make(Batch, len(Styles()))
	for _, s := range Styles() {
		list := make([]Candidate, len(normalized))
		for i, n := range normalized {
			c, err := Render(n, domain, s)
			if err != nil {
				return nil, &NameError{Index: i, Name: names[i], Err: err}
			}
			list[i] = c
		}
		batch[s] = list
	}

	return batch, nil
}

// RenderNames renders a single style for every name, preserving order.
func RenderNames(names []string, domain string, s Style, opts ...NormalizeOption) ([]Candidate, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, uint8(s))
	}

	normalized, err := normalizeAll(names, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]Candidate, len(normalized))
	for i, n := range normalized {
		c, err := Render(n, domain, s)
		if err != nil {
			return nil, &NameError{Index: i, Name: names[i], Err: err}
		}
		out[i] = c
	}
	return out, nil
}

func normalizeAll(names []string, opts ...NormalizeOption) ([]NormalizedName, error) {
	out := make([]NormalizedName, len(names))
	for i, name := range names {
		n, err := Normalize(name, opts...)
		if err != nil {
			return nil, &NameError{Index: i, Name: name, Err: err}
		}
		out[i] = n
	}
	return out, nil
}
