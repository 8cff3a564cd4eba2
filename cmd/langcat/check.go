package main

import (
	"fmt"

	"github.com/oukeidos/langcat/internal/apperrors"
	"github.com/oukeidos/langcat/internal/catalog"
	"github.com/oukeidos/langcat/internal/locale"
	"github.com/oukeidos/langcat/internal/pipeline"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report unresolved identifiers and duplicate symbols",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, strict)
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any identifier is unresolved or duplicated")
	return cmd
}

func runCheck(cmd *cobra.Command, opts *rootOptions, strict bool) error {
	ids, err := pipeline.Load(opts.input)
	if err != nil {
		return err
	}
	res := catalog.Build(ids, newResolver(locale.ReferenceLocale))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Identifiers: %d\n", len(ids))
	fmt.Fprintf(out, "Resolved:    %d\n", len(res.Entries))
	fmt.Fprintf(out, "Unresolved:  %d\n", len(res.Dropped))
	for _, id := range res.Dropped {
		fmt.Fprintf(out, "  %q\n", id)
	}
	fmt.Fprintf(out, "Duplicates:  %d\n", len(res.Duplicates))
	for _, sym := range res.Duplicates {
		fmt.Fprintf(out, "  %s\n", sym)
	}
	if !res.Unique() {
		fmt.Fprintln(out, pipeline.UniquenessWarning)
	}

	if strict && (len(res.Dropped) > 0 || !res.Unique()) {
		return apperrors.New(apperrors.KindCheck,
			fmt.Sprintf("check failed: %d unresolved, %d duplicated", len(res.Dropped), len(res.Duplicates)), nil)
	}
	return nil
}
