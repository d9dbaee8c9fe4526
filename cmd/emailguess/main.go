package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/emailguess"
	"github.com/dmitrymomot/emailguess/pkg/clipboard"
	"github.com/dmitrymomot/emailguess/pkg/config"
	"github.com/dmitrymomot/emailguess/pkg/logger"
	"github.com/dmitrymomot/emailguess/pkg/requestid"
)

const serviceName = "emailguess"

func main() {
	if err := newRootCmd(clipboard.System()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// app carries the global flags and everything built from them in
// PersistentPreRunE.
type app struct {
	format        string
	copy          bool
	transliterate bool
	firstWordOnly bool
	verbose       bool
	envFile       string

	cfg  Config
	log  *slog.Logger
	clip clipboard.Writer
}

func newRootCmd(clip clipboard.Writer) *cobra.Command {
	a := &app{clip: clip}

	root := &cobra.Command{
		Use:           "emailguess",
		Short:         "Guess corporate email addresses from personal names",
		Long:          "emailguess renders the common corporate address styles for a list of names and optionally checks which candidate is deliverable.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.format, "format", formatText, "output format: text|json")
	flags.BoolVar(&a.copy, "copy", false, "also copy the output to the clipboard")
	flags.BoolVar(&a.transliterate, "transliterate", false, "fold extended diacritics such as ñ, ø and ř instead of dropping them")
	flags.BoolVar(&a.firstWordOnly, "first-word-only", false, "use only the first word of a multi-word first name")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	flags.StringVar(&a.envFile, "env-file", "", "load environment variables from this file (default: ./.env if present)")

	root.AddCommand(
		newFormatCmd(a),
		newAllCmd(a),
		newFindCmd(a),
		newStylesCmd(a),
		newServeCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := validateFormat(a.format); err != nil {
		return err
	}

	var files []string
	if a.envFile != "" {
		files = append(files, a.envFile)
	}
	if err := config.LoadEnv(files...); err != nil {
		return err
	}

	cfg, err := config.Parse[Config]()
	if err != nil {
		return err
	}
	a.cfg = cfg

	opts, err := cfg.Log.Options(serviceName)
	if err != nil {
		return err
	}
	switch {
	case a.verbose:
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	case cfg.Log.Level == "" && cmd.Name() != "serve":
		opts = append(opts, logger.WithLevel(slog.LevelWarn))
	}
	opts = append(opts,
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	a.log = logger.New(opts...)

	return nil
}

func (a *app) normalizeOptions() []emailguess.NormalizeOption {
	var opts []emailguess.NormalizeOption
	if a.transliterate {
		opts = append(opts, emailguess.WithTransliteration())
	}
	if a.firstWordOnly {
		opts = append(opts, emailguess.WithFirstWordOnly())
	}
	return opts
}
