package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/oukeidos/langcat/internal/apperrors"
	"github.com/oukeidos/langcat/internal/catalog"
	"github.com/oukeidos/langcat/internal/cleanup"
	"github.com/oukeidos/langcat/internal/config"
	"github.com/oukeidos/langcat/internal/logger"
	"github.com/oukeidos/langcat/internal/version"
	"github.com/spf13/cobra"
)

func execute() {
	cmd := newRootCmd()
	err := cmd.Execute()
	if cleanupErr := cleanup.RunAll(); cleanupErr != nil {
		fmt.Fprintln(os.Stderr, cleanupErr)
		if err == nil {
			err = apperrors.Output(cleanupErr)
		}
	}
	if err != nil {
		os.Exit(apperrors.ExitCode(err))
	}
}

type rootOptions struct {
	// persistent
	input   string
	debug   bool
	logFile string

	// generate
	text   bool
	format string
	output string
	yes    bool
}

func newRootCmd() *cobra.Command {
	env, envErr := config.Load()
	if envErr != nil {
		env = config.Env{Input: config.DefaultInputPath, Format: string(catalog.FormatJSON)}
	}
	opts := rootOptions{}

	cmd := &cobra.Command{
		Use:   "langcat",
		Short: "Language identifier catalog generator",
		Long: "Reads a list of language identifiers (one per line), names each one in\n" +
			"English (US), and prints the catalog sorted by name.",
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return apperrors.New(apperrors.KindUsage, envErr.Error(), envErr)
			}
			if err := setupLogging(&opts); err != nil {
				return err
			}
			logger.Debug("Starting", "command", cmd.Name(), "flags", changedFlags(cmd))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, &opts)
		},
		SilenceUsage: true,
	}

	cmd.Version = version.Info()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetUsageTemplate(rootUsageTemplate)

	cmd.PersistentFlags().StringVarP(&opts.input, "input", "i", env.Input, "Identifier list, one identifier per line")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", env.Debug, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", env.LogFile, "Path to save machine-readable JSONL logs")

	cmd.Flags().BoolVarP(&opts.text, "text", "t", false, "Print one \"<name> (<symbol>)\" line per entry instead of JSON")
	cmd.Flags().StringVar(&opts.format, "format", env.Format, "Output format: "+formatNames())
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the catalog to this file instead of stdout")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Overwrite output file without asking")

	cmd.AddCommand(
		newCheckCmd(&opts),
		newResolveCmd(),
	)

	cmd.InitDefaultCompletionCmd()
	for _, sub := range cmd.Commands() {
		if sub.Name() == "completion" {
			sub.SetUsageTemplate(subcommandUsageTemplate)
			break
		}
	}

	return cmd
}

func formatNames() string {
	names := make([]string, len(catalog.Formats))
	for i, f := range catalog.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
