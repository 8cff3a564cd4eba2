package main

import (
	"fmt"

	"github.com/oukeidos/langcat/internal/locale"
	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <identifier>...",
		Short: "Print the display name of each identifier",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			r := newResolver(locale.ReferenceLocale)
			out := cmd.OutOrStdout()
			for _, id := range args {
				name, ok := r.DisplayName(id)
				if !ok {
					name = "(unresolved)"
				}
				fmt.Fprintf(out, "%s\t%s\n", id, name)
			}
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
