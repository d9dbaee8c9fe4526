package main

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/emailguess"
	"github.com/dmitrymomot/emailguess/pkg/logger"
	"github.com/dmitrymomot/emailguess/pkg/requestid"
)

// finderFlags override the finder settings from the environment.
type finderFlags struct {
	checker     string
	timeout     time.Duration
	policy      string
	concurrency int
	styles      []string
}

func (f *finderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.checker, "checker", "c", "", "deliverability checker: syntax|mx|api (default from EMAILGUESS_CHECKER)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "timeout per check (default from EMAILGUESS_CHECK_TIMEOUT)")
	cmd.Flags().StringVar(&f.policy, "on-unavailable", "", "treat inconclusive checks as: invalid|deliverable|fail")
	cmd.Flags().IntVar(&f.concurrency, "concurrency", 0, "names checked at once (default from EMAILGUESS_CONCURRENCY)")
	cmd.Flags().StringSliceVar(&f.styles, "styles", nil, "styles to try, in priority order (default: all)")
}

// apply writes the flags that were set over cfg.
func (f *finderFlags) apply(cfg *FinderConfig) {
	if f.checker != "" {
		cfg.Checker = f.checker
	}
	if f.timeout > 0 {
		cfg.CheckTimeout = f.timeout
	}
	if f.policy != "" {
		cfg.Unavailable = f.policy
	}
	if f.concurrency > 0 {
		cfg.Concurrency = f.concurrency
	}
}

func (a *app) newFinder(checker emailguess.Checker, styles []string) (*emailguess.Finder, error) {
	policy, err := emailguess.ParseUnavailablePolicy(a.cfg.Finder.Unavailable)
	if err != nil {
		return nil, err
	}

	opts := []emailguess.FinderOption{
		emailguess.WithConcurrency(a.cfg.Finder.Concurrency),
		emailguess.WithUnavailablePolicy(policy),
		emailguess.WithNormalizeOptions(a.normalizeOptions()...),
		emailguess.WithLogger(a.log),
	}
	if len(styles) > 0 {
		parsed, err := emailguess.ParseStyles(styles...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, emailguess.WithStyles(parsed...))
	}

	return emailguess.NewFinder(checker, opts...), nil
}

func newFindCmd(a *app) *cobra.Command {
	var (
		domain string
		report bool
		flags  finderFlags
		input  inputFlags
	)

	cmd := &cobra.Command{
		Use:   "find [names...]",
		Short: "Find the first deliverable address for each name",
		Long: "Checks the candidates of every name with the selected checker and prints the first " +
			"deliverable one in style order. With --report every candidate and its result is printed.",
		Example: `  emailguess find --domain acme.com --checker mx "John Doe"
  emailguess find --domain acme.com --checker api --report -i team.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.apply(&a.cfg.Finder)

			names, err := input.readNames(cmd, args)
			if err != nil {
				return err
			}

			// One id correlates every log line and API call of this run.
			ctx, _ := requestid.Ensure(cmd.Context())

			checks, err := a.buildChecker(ctx, nil)
			if err != nil {
				return err
			}
			defer checks.Close()

			finder, err := a.newFinder(checks.checker, flags.styles)
			if err != nil {
				return err
			}

			start := time.Now()
			if report {
				verdicts, err := finder.CheckAll(ctx, names, domain)
				if err != nil {
					return err
				}
				rows := verdictRows(verdicts)
				return a.emit(cmd, rows, func(w io.Writer) { formatVerdictsText(w, rows) })
			}

			matches, err := finder.Find(ctx, names, domain)
			if err != nil {
				return err
			}
			a.log.InfoContext(ctx, "find finished",
				logger.Checker(a.cfg.Finder.Checker), logger.Count(len(names)), logger.Duration(time.Since(start)))

			rows := matchRows(matches)
			return a.emit(cmd, rows, func(w io.Writer) { formatMatchesText(w, rows) })
		},
	}

	cmd.Flags().StringVarP(&domain, "domain", "d", "", "company domain (required)")
	cmd.Flags().BoolVar(&report, "report", false, "check and print every candidate instead of the first match")
	_ = cmd.MarkFlagRequired("domain")
	flags.register(cmd)
	input.register(cmd)

	return cmd
}
