package namelist

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/emailguess/pkg/sanitizer"
)

// Format is the encoding of a name list.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts "text", "txt", "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt", "":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// DetectFormat guesses the format from a file extension. Unknown extensions
// and "-" (stdin) are treated as text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	}
	return Text
}

// Read decodes a list of names. Text input holds one name per line; blank
// lines and lines starting with "#" are skipped. JSON and YAML input is a
// sequence of strings. Names are trimmed and empty entries dropped.
func Read(r io.Reader, format Format) ([]string, error) {
	var (
		names []string
		err   error
	)

	switch format {
	case Text, "":
		names, err = readText(r)
	case JSON:
		err = json.NewDecoder(r).Decode(&names)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&names)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, errors.Join(ErrDecode, err)
	}

	return compact(names), nil
}

// ReadUntilBlank reads text names until the first blank line or EOF, for
// interactive input.
func ReadUntilBlank(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, cleanName(line))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return names, nil
}

func readText(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, sc.Err()
}

// cleanName drops control characters and folds whitespace runs, including
// embedded line breaks, to single spaces.
var cleanName = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine)

func compact(names []string) []string {
	out := names[:0]
	for _, n := range names {
		if n = cleanName(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}
