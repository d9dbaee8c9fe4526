// Package emailguess builds candidate email addresses from personal names.
//
// A raw name is normalized (accents folded, lowercased, split into first and
// last name) and rendered in one of eight addressing conventions:
//
//	firstname.lastname  john.doe@corp.io
//	f.lastname          j.doe@corp.io
//	firstname.l         john.d@corp.io
//	firstnamelastname   johndoe@corp.io
//	flastname           jdoe@corp.io
//	lastname.firstname  doe.john@corp.io
//	l.firstname         d.john@corp.io
//	fl                  jd@corp.io
//
// Every local part is sanitized to [a-z0-9.-] with no leading, trailing or
// doubled separators. Input problems are returned as errors wrapping
// ErrInvalidInput and are never replaced by a placeholder address.
//
// Basic usage:
//
//	n, err := emailguess.Normalize("Jean-Paul Dûpont")
//	if err != nil {
//		return err
//	}
//	c, err := emailguess.Render(n, "acme.com", emailguess.FirstnameDotLastname)
//	// c.String() == "jean-paul.dupont@acme.com"
//
// RenderAll renders all styles for a list of names at once.
//
// A Finder runs candidates through a Checker (see pkg/deliverability) and
// reports the first deliverable address per name:
//
//	f := emailguess.NewFinder(checker, emailguess.WithConcurrency(8))
//	matches, err := f.Find(ctx, names, "acme.com")
package emailguess
