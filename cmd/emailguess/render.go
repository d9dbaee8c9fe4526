package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/emailguess"
	"github.com/dmitrymomot/emailguess/pkg/logger"
)

func newFormatCmd(a *app) *cobra.Command {
	var (
		domain string
		style  string
		input  inputFlags
	)

	cmd := &cobra.Command{
		Use:   "format [names...]",
		Short: "Render one address style for each name",
		Long: "Renders the chosen style for every name. Names come from the arguments, from --input, " +
			"or from stdin, one per line, up to the first blank line.",
		Example: `  emailguess format --domain acme.com --style flastname "John Doe" "Jean-Paul Dûpont"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := emailguess.ParseStyle(style)
			if err != nil {
				return err
			}
			names, err := input.readNames(cmd, args)
			if err != nil {
				return err
			}

			candidates, err := emailguess.RenderNames(names, domain, s, a.normalizeOptions()...)
			if err != nil {
				return err
			}
			a.log.DebugContext(cmd.Context(), "rendered candidates",
				logger.Style(s), logger.Count(len(candidates)), logger.Domain(domain))

			rows := candidateRows(names, s, candidates)
			return a.emit(cmd, rows, func(w io.Writer) { formatCandidatesText(w, rows) })
		},
	}

	cmd.Flags().StringVarP(&domain, "domain", "d", "", "company domain (required)")
	cmd.Flags().StringVarP(&style, "style", "s", emailguess.FirstnameDotLastname.String(), "address style, by tag or position (see 'emailguess styles')")
	_ = cmd.MarkFlagRequired("domain")
	input.register(cmd)

	return cmd
}

func newAllCmd(a *app) *cobra.Command {
	var (
		domain string
		input  inputFlags
	)

	cmd := &cobra.Command{
		Use:     "all [names...]",
		Short:   "Render every address style for each name",
		Example: `  emailguess all --domain acme.com "John Doe"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := input.readNames(cmd, args)
			if err != nil {
				return err
			}

			batch, err := emailguess.RenderAll(names, domain, a.normalizeOptions()...)
			if err != nil {
				return err
			}

			rows := batchRows(names, batch)
			return a.emit(cmd, rows, func(w io.Writer) { formatBatchText(w, rows) })
		},
	}

	cmd.Flags().StringVarP(&domain, "domain", "d", "", "company domain (required)")
	_ = cmd.MarkFlagRequired("domain")
	input.register(cmd)

	return cmd
}

func newStylesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the address styles with an example",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := styleRows()
			return a.emit(cmd, rows, func(w io.Writer) { formatStylesText(w, rows) })
		},
	}
}
