package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/emailguess"
	"github.com/dmitrymomot/emailguess/pkg/deliverability"
)

type fakeClipboard struct {
	mu   sync.Mutex
	text string
	err  error
}

func (f *fakeClipboard) Write(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func run(t *testing.T, clip *fakeClipboard, stdin string, args ...string) (string, string, error) {
	t.Helper()

	if clip == nil {
		clip = &fakeClipboard{}
	}
	cmd := newRootCmd(clip)

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestStylesCommand(t *testing.T) {
	out, _, err := run(t, nil, "", "styles")
	require.NoError(t, err)
	assert.Contains(t, out, "firstname.lastname")
	assert.Contains(t, out, "jdoe")

	out, _, err = run(t, nil, "", "styles", "--format", "json")
	require.NoError(t, err)

	var rows []styleRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 8)
	assert.Equal(t, styleRow{Position: 5, Style: "flastname", Example: "jdoe"}, rows[4])
}

func TestFormatCommand(t *testing.T) {
	t.Run("names from args", func(t *testing.T) {
		out, _, err := run(t, nil, "", "format", "--domain", "corp.io", "--style", "flastname", "John Doe", "Jean-Paul Dûpont")
		require.NoError(t, err)
		assert.Equal(t, "jdoe@corp.io\njdupont@corp.io\n", out)
	})

	t.Run("default style", func(t *testing.T) {
		out, _, err := run(t, nil, "", "format", "-d", "acme.com", "Jean-Paul Dûpont")
		require.NoError(t, err)
		assert.Equal(t, "jean-paul.dupont@acme.com\n", out)
	})

	t.Run("stdin stops at blank line", func(t *testing.T) {
		out, _, err := run(t, nil, "John Doe\nJane Roe\n\nMax Mustermann\n", "format", "-d", "corp.io", "-s", "initials")
		require.NoError(t, err)
		assert.Equal(t, "jd@corp.io\njr@corp.io\n", out)
	})

	t.Run("all of stdin", func(t *testing.T) {
		out, _, err := run(t, nil, "# team\nJohn Doe\n\nJane Roe\n", "format", "-d", "corp.io", "-s", "2", "-i", "-")
		require.NoError(t, err)
		assert.Equal(t, "j.doe@corp.io\nj.roe@corp.io\n", out)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "team.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- John Doe\n- Jane Roe\n"), 0o600))

		out, _, err := run(t, nil, "", "format", "-d", "corp.io", "-s", "lastname.firstname", "-i", path)
		require.NoError(t, err)
		assert.Equal(t, "doe.john@corp.io\nroe.jane@corp.io\n", out)
	})

	t.Run("json output", func(t *testing.T) {
		out, _, err := run(t, nil, "", "--format", "json", "format", "-d", "corp.io", "John Doe")
		require.NoError(t, err)

		var rows []candidateRow
		require.NoError(t, json.Unmarshal([]byte(out), &rows))
		assert.Equal(t, []candidateRow{{Name: "John Doe", Style: "firstname.lastname", Candidate: "john.doe@corp.io"}}, rows)
	})

	t.Run("transliterate", func(t *testing.T) {
		out, _, err := run(t, nil, "", "format", "-d", "corp.io", "Nuño Peña")
		require.NoError(t, err)
		assert.Equal(t, "nuo.pea@corp.io\n", out)

		out, _, err = run(t, nil, "", "format", "--transliterate", "-d", "corp.io", "Nuño Peña")
		require.NoError(t, err)
		assert.Equal(t, "nuno.pena@corp.io\n", out)
	})

	t.Run("first word only", func(t *testing.T) {
		out, _, err := run(t, nil, "", "format", "-d", "corp.io", "Mary Ann Smith")
		require.NoError(t, err)
		assert.Equal(t, "mary-ann.smith@corp.io\n", out)

		out, _, err = run(t, nil, "", "format", "--first-word-only", "-d", "corp.io", "Mary Ann Smith")
		require.NoError(t, err)
		assert.Equal(t, "mary.smith@corp.io\n", out)
	})
}

func TestFormatCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
		msg  string
	}{
		{"single word name", []string{"format", "-d", "corp.io", "John Doe", "Cher"}, emailguess.ErrMissingLastName, `name #2 "Cher"`},
		{"unknown style", []string{"format", "-d", "corp.io", "-s", "nope", "John Doe"}, emailguess.ErrUnknownStyle, ""},
		{"unknown output format", []string{"--format", "xml", "styles"}, ErrUnknownFormat, ""},
		{"missing domain", []string{"format", "John Doe"}, nil, `"domain" not set`},
		{"no names", []string{"format", "-d", "corp.io"}, ErrNoNames, ""},
		{"missing file", []string{"format", "-d", "corp.io", "-i", "/does/not/exist.txt"}, os.ErrNotExist, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, nil, "", tt.args...)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestAllCommand(t *testing.T) {
	out, _, err := run(t, nil, "", "--format", "json", "all", "-d", "corp.io", "John Doe", "Jane Roe", "Max Mustermann")
	require.NoError(t, err)

	var rows []nameRows
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.Len(t, r.Candidates, 8)
	}
	assert.Equal(t, "Jane Roe", rows[1].Name)
	assert.Equal(t, "jane.roe@corp.io", rows[1].Candidates[0].Candidate)
	assert.Equal(t, "mm@corp.io", rows[2].Candidates[7].Candidate)

	out, _, err = run(t, nil, "", "all", "-d", "corp.io", "John Doe")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "d.john@corp.io")
}

func TestFindCommand(t *testing.T) {
	t.Run("syntax checker picks the first style", func(t *testing.T) {
		out, _, err := run(t, nil, "", "find", "--checker", "syntax", "-d", "corp.io", "John Doe")
		require.NoError(t, err)
		assert.Contains(t, out, "john.doe@corp.io")
	})

	t.Run("style priority", func(t *testing.T) {
		out, _, err := run(t, nil, "", "--format", "json", "find", "-c", "syntax", "--styles", "initials,flastname", "-d", "corp.io", "John Doe")
		require.NoError(t, err)

		var rows []matchRow
		require.NoError(t, json.Unmarshal([]byte(out), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, matchRow{Name: "John Doe", Found: true, Style: "initials", Candidate: "jd@corp.io"}, rows[0])
	})

	t.Run("report", func(t *testing.T) {
		out, _, err := run(t, nil, "", "--format", "json", "find", "-c", "syntax", "--report", "-d", "corp.io", "John Doe", "Cher")
		require.NoError(t, err)

		var rows []verdictRow
		require.NoError(t, json.Unmarshal([]byte(out), &rows))
		require.Len(t, rows, 16)
		assert.True(t, rows[0].Deliverable)
		assert.Equal(t, "Cher", rows[8].Name)
		assert.False(t, rows[8].Deliverable)
		assert.NotEmpty(t, rows[8].Error)
	})

	t.Run("unknown checker", func(t *testing.T) {
		_, _, err := run(t, nil, "", "find", "-c", "smtp", "-d", "corp.io", "John Doe")
		assert.ErrorIs(t, err, ErrUnknownChecker)
	})

	t.Run("api checker needs an endpoint", func(t *testing.T) {
		t.Setenv("EMAILGUESS_API_ENDPOINT", "")
		_, _, err := run(t, nil, "", "find", "-c", "api", "-d", "corp.io", "John Doe")
		assert.ErrorIs(t, err, deliverability.ErrInvalidConfig)
	})

	t.Run("unknown policy", func(t *testing.T) {
		_, _, err := run(t, nil, "", "find", "-c", "syntax", "--on-unavailable", "maybe", "-d", "corp.io", "John Doe")
		assert.ErrorIs(t, err, emailguess.ErrInvalidInput)
	})
}

func TestCopyFlag(t *testing.T) {
	t.Run("copies the printed output", func(t *testing.T) {
		clip := &fakeClipboard{}
		out, _, err := run(t, clip, "", "--copy", "format", "-d", "corp.io", "John Doe", "Jane Roe")
		require.NoError(t, err)
		assert.Equal(t, out, clip.text)
		assert.Equal(t, "john.doe@corp.io\njane.roe@corp.io\n", clip.text)
	})

	t.Run("failure only warns", func(t *testing.T) {
		clip := &fakeClipboard{err: errors.New("no display")}
		out, stderr, err := run(t, clip, "", "--copy", "format", "-d", "corp.io", "John Doe")
		require.NoError(t, err)
		assert.Equal(t, "john.doe@corp.io\n", out)
		assert.Contains(t, stderr, "copy to clipboard failed")
	})
}
