package httpapi

import (
	"net/http"

	"github.com/dmitrymomot/emailguess"
	"github.com/dmitrymomot/emailguess/pkg/logger"
	"github.com/dmitrymomot/emailguess/pkg/validator"
)

const maxDomainLength = 253

type styleInfo struct {
	Name    string `json:"name"`
	Example string `json:"example"`
}

type renderRequest struct {
	Names  []string `json:"names"`
	Domain string   `json:"domain"`
	Style  string   `json:"style,omitempty"`
}

type findRequest struct {
	Names  []string `json:"names"`
	Domain string   `json:"domain"`
}

type nameCandidates struct {
	Name       string                       `json:"name"`
	Candidates []emailguess.StyledCandidate `json:"candidates"`
}

type matchResult struct {
	Name      string `json:"name"`
	Found     bool   `json:"found"`
	Style     string `json:"style,omitempty"`
	Candidate string `json:"candidate,omitempty"`
	Error     string `json:"error,omitempty"`
}

func (a *API) styles(w http.ResponseWriter, _ *http.Request) {
	all := emailguess.Styles()
	out := make([]styleInfo, len(all))
	for i, s := range all {
		out[i] = styleInfo{Name: s.String(), Example: s.Example()}
	}
	writeData(w, out)
}

func (a *API) render(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req renderRequest
	if err := bindJSON(r, &req, a.maxBodyBytes); err != nil {
		writeError(ctx, a.log, w, err)
		return
	}
	if err := a.validateNames(req.Names, req.Domain); err != nil {
		writeError(ctx, a.log, w, err)
		return
	}

	out := make([]nameCandidates, len(req.Names))

	if req.Style != "" {
		s, err := emailguess.ParseStyle(req.Style)
		if err != nil {
			writeError(ctx, a.log, w, err)
			return
		}
		candidates, err := emailguess.RenderNames(req.Names, req.Domain, s, a.normalize...)
		if err != nil {
			writeError(ctx, a.log, w, err)
			return
		}
		for i, c := range candidates {
			out[i] = nameCandidates{
				Name:       req.Names[i],
				Candidates: []emailguess.StyledCandidate{{Style: s, Candidate: c}},
			}
		}
	} else {
		batch, err := emailguess.RenderAll(req.Names, req.Domain, a.normalize...)
		if err != nil {
			writeError(ctx, a.log, w, err)
			return
		}
		for i, name := range req.Names {
			out[i] = nameCandidates{Name: name, Candidates: batch.ForName(i)}
		}
	}

	a.log.DebugContext(ctx, "rendered candidates", logger.Count(len(req.Names)), logger.Domain(req.Domain))
	writeData(w, out)
}

func (a *API) find(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if a.finder == nil {
		writeError(ctx, a.log, w, ErrFinderDisabled)
		return
	}

	var req findRequest
	if err := bindJSON(r, &req, a.maxBodyBytes); err != nil {
		writeError(ctx, a.log, w, err)
		return
	}
	if err := a.validateNames(req.Names, req.Domain); err != nil {
		writeError(ctx, a.log, w, err)
		return
	}

	matches, err := a.finder.Find(ctx, req.Names, req.Domain)
	if err != nil {
		writeError(ctx, a.log, w, err)
		return
	}

	out := make([]matchResult, len(matches))
	for i, m := range matches {
		res := matchResult{Name: m.Name, Found: m.Found}
		if m.Found {
			res.Style = m.Style.String()
			res.Candidate = m.Candidate.String()
		}
		if m.Err != nil {
			res.Error = m.Err.Error()
		}
		out[i] = res
	}
	writeData(w, out)
}

func (a *API) validateNames(names []string, domain string) error {
	return validator.Apply(
		validator.RequiredSlice("names", names),
		validator.MaxItems("names", names, a.maxNames),
		validator.Required("domain", domain),
		validator.MaxLen("domain", domain, maxDomainLength),
		validator.ValidDomain("domain", emailguess.SanitizeDomain(domain)),
	)
}
