package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/emailguess/pkg/namelist"
)

// inputFlags selects where names come from.
type inputFlags struct {
	path   string
	format string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "input", "i", "", `read names from a file ("-" for all of stdin)`)
	cmd.Flags().StringVar(&f.format, "input-format", "", "input format: text|json|yaml (default: from file extension)")
}

// readNames returns the names from args, from --input, or from stdin up to
// the first blank line, in that order of preference.
func (f *inputFlags) readNames(cmd *cobra.Command, args []string) ([]string, error) {
	var (
		names []string
		err   error
	)

	switch {
	case len(args) > 0:
		names = args
	case f.path == "-":
		names, err = f.read(cmd.InOrStdin(), namelist.Text)
	case f.path != "":
		names, err = f.readFile()
	default:
		names, err = namelist.ReadUntilBlank(cmd.InOrStdin())
	}
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrNoNames
	}
	return names, nil
}

func (f *inputFlags) readFile() ([]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.path, err)
	}
	defer file.Close()

	return f.read(file, namelist.DetectFormat(f.path))
}

func (f *inputFlags) read(r io.Reader, detected namelist.Format) ([]string, error) {
	format := detected
	if f.format != "" {
		parsed, err := namelist.ParseFormat(f.format)
		if err != nil {
			return nil, err
		}
		format = parsed
	}
	return namelist.Read(r, format)
}
