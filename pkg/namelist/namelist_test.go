package namelist_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/emailguess/pkg/namelist"
)

func TestRead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format namelist.Format
		input  string
		want   []string
	}{
		{
			name:   "text",
			format: namelist.Text,
			input:  "John Doe\n\n# team lead\n  Jean-Paul Dûpont  \r\nAda Lovelace",
			want:   []string{"John Doe", "Jean-Paul Dûpont", "Ada Lovelace"},
		},
		{
			name:   "json",
			format: namelist.JSON,
			input:  `["John  Doe", " ", "Ada\u0000 Lovelace\n"]`,
			want:   []string{"John Doe", "Ada Lovelace"},
		},
		{
			name:   "yaml",
			format: namelist.YAML,
			input:  "- John Doe\n- 'Émile Zola'\n- \"\"\n",
			want:   []string{"John Doe", "Émile Zola"},
		},
		{
			name:   "empty yaml",
			format: namelist.YAML,
			input:  "",
			want:   nil,
		},
		{
			name:   "empty text",
			format: namelist.Text,
			input:  "\n\n",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := namelist.Read(strings.NewReader(tt.input), tt.format)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	_, err := namelist.Read(strings.NewReader(`{"name": "x"}`), namelist.JSON)
	assert.ErrorIs(t, err, namelist.ErrDecode)

	_, err = namelist.Read(strings.NewReader("name: x\n"), namelist.YAML)
	assert.ErrorIs(t, err, namelist.ErrDecode)

	_, err = namelist.Read(strings.NewReader("x"), namelist.Format("csv"))
	assert.ErrorIs(t, err, namelist.ErrUnknownFormat)
}

func TestReadUntilBlank(t *testing.T) {
	t.Parallel()

	got, err := namelist.ReadUntilBlank(strings.NewReader("John Doe\n# skip\nAda Lovelace\n\nIgnored Name\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"John Doe", "Ada Lovelace"}, got)
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]namelist.Format{
		"names.json":   namelist.JSON,
		"team.YAML":    namelist.YAML,
		"dir/list.yml": namelist.YAML,
		"names.txt":    namelist.Text,
		"-":            namelist.Text,
		"no-extension": namelist.Text,
	}
	for path, want := range tests {
		assert.Equal(t, want, namelist.DetectFormat(path), path)
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]namelist.Format{"": namelist.Text, "TXT": namelist.Text, "json": namelist.JSON, "yml": namelist.YAML} {
		got, err := namelist.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := namelist.ParseFormat("xml")
	assert.ErrorIs(t, err, namelist.ErrUnknownFormat)
}
