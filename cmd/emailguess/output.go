package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/emailguess"
	"github.com/dmitrymomot/emailguess/pkg/logger"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func validateFormat(f string) error {
	switch f {
	case formatText, formatJSON:
		return nil
	}
	return fmt.Errorf("%w %q: expected text or json", ErrUnknownFormat, f)
}

type candidateRow struct {
	Name      string `json:"name"`
	Style     string `json:"style"`
	Candidate string `json:"candidate"`
}

type nameRows struct {
	Name       string         `json:"name"`
	Candidates []candidateRow `json:"candidates"`
}

type matchRow struct {
	Name      string `json:"name"`
	Found     bool   `json:"found"`
	Style     string `json:"style,omitempty"`
	Candidate string `json:"candidate,omitempty"`
	Error     string `json:"error,omitempty"`
}

type verdictRow struct {
	Name        string `json:"name"`
	Style       string `json:"style"`
	Candidate   string `json:"candidate,omitempty"`
	Deliverable bool   `json:"deliverable"`
	Error       string `json:"error,omitempty"`
}

type styleRow struct {
	Position int    `json:"position"`
	Style    string `json:"style"`
	Example  string `json:"example"`
}

// emit renders v as JSON, or through text in text mode, writes it to stdout
// and, with --copy, to the clipboard.
func (a *app) emit(cmd *cobra.Command, v any, text func(io.Writer)) error {
	var buf bytes.Buffer
	if a.format == formatJSON {
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
	} else {
		text(&buf)
	}

	if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
		return err
	}

	if a.copy {
		a.copyToClipboard(cmd.Context(), buf.String())
	}
	return nil
}

// copyToClipboard never fails the command.
func (a *app) copyToClipboard(ctx context.Context, text string) {
	if err := a.clip.Write(ctx, text); err != nil {
		a.log.WarnContext(ctx, "copy to clipboard failed", logger.Error(err))
		return
	}
	a.log.DebugContext(ctx, "copied output to clipboard")
}

func candidateRows(names []string, s emailguess.Style, candidates []emailguess.Candidate) []candidateRow {
	rows := make([]candidateRow, len(candidates))
	for i, c := range candidates {
		rows[i] = candidateRow{Name: names[i], Style: s.String(), Candidate: c.String()}
	}
	return rows
}

func batchRows(names []string, batch emailguess.Batch) []nameRows {
	rows := make([]nameRows, len(names))
	for i, name := range names {
		styled := batch.ForName(i)
		r := nameRows{Name: name, Candidates: make([]candidateRow, len(styled))}
		for j, sc := range styled {
			r.Candidates[j] = candidateRow{Name: name, Style: sc.Style.String(), Candidate: sc.Candidate.String()}
		}
		rows[i] = r
	}
	return rows
}

func matchRows(matches []emailguess.Match) []matchRow {
	rows := make([]matchRow, len(matches))
	for i, m := range matches {
		r := matchRow{Name: m.Name, Found: m.Found}
		if m.Found {
			r.Style = m.Style.String()
			r.Candidate = m.Candidate.String()
		}
		if m.Err != nil {
			r.Error = m.Err.Error()
		}
		rows[i] = r
	}
	return rows
}

func verdictRows(verdicts []emailguess.Verdict) []verdictRow {
	rows := make([]verdictRow, len(verdicts))
	for i, v := range verdicts {
		r := verdictRow{
			Name:        v.Name,
			Style:       v.Style.String(),
			Candidate:   v.Candidate.String(),
			Deliverable: v.Deliverable,
		}
		if v.Err != nil {
			r.Error = v.Err.Error()
		}
		rows[i] = r
	}
	return rows
}

func styleRows() []styleRow {
	all := emailguess.Styles()
	rows := make([]styleRow, len(all))
	for i, s := range all {
		rows[i] = styleRow{Position: int(s), Style: s.String(), Example: s.Example()}
	}
	return rows
}

// formatCandidatesText prints one address per line.
func formatCandidatesText(w io.Writer, rows []candidateRow) {
	for _, r := range rows {
		fmt.Fprintln(w, r.Candidate)
	}
}

// formatBatchText prints every candidate of every name as aligned columns.
func formatBatchText(w io.Writer, rows []nameRows) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTYLE\tADDRESS")
	for _, r := range rows {
		for _, c := range r.Candidates {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, c.Style, c.Candidate)
		}
	}
	tw.Flush()
}

func formatMatchesText(w io.Writer, rows []matchRow) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTYLE\tADDRESS")
	for _, r := range rows {
		switch {
		case r.Found:
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.Style, r.Candidate)
		case r.Error != "":
			fmt.Fprintf(tw, "%s\t-\terror: %s\n", r.Name, r.Error)
		default:
			fmt.Fprintf(tw, "%s\t-\tnot found\n", r.Name)
		}
	}
	tw.Flush()
}

func formatVerdictsText(w io.Writer, rows []verdictRow) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTYLE\tADDRESS\tRESULT")
	for _, r := range rows {
		result := "undeliverable"
		switch {
		case r.Error != "":
			result = "error: " + r.Error
		case r.Deliverable:
			result = "deliverable"
		}
		candidate := r.Candidate
		if candidate == "" {
			candidate = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Style, candidate, result)
	}
	tw.Flush()
}

func formatStylesText(w io.Writer, rows []styleRow) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSTYLE\tEXAMPLE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.Position, r.Style, r.Example)
	}
	tw.Flush()
}
