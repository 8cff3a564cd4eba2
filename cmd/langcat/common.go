package main

import (
	"fmt"
	"io"

	"github.com/oukeidos/langcat/internal/apperrors"
	"github.com/oukeidos/langcat/internal/catalog"
	"github.com/oukeidos/langcat/internal/cleanup"
	"github.com/oukeidos/langcat/internal/files"
	"github.com/oukeidos/langcat/internal/locale"
	"github.com/oukeidos/langcat/internal/logger"
	"github.com/oukeidos/langcat/internal/prompt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
)

var (
	newResolver = func(ref language.Tag) catalog.Resolver {
		return locale.NewResolver(ref)
	}
	newConfirmer = prompt.DefaultConfirmer
)

func setupLogging(opts *rootOptions) error {
	var logFileW io.Writer
	if opts.logFile != "" {
		f, err := files.OpenAppend(opts.logFile)
		if err != nil {
			return apperrors.New(apperrors.KindOutput, fmt.Sprintf("failed to open log file: %v", err), err)
		}
		cleanup.Register(f.Close)
		logFileW = f
	}
	logger.Init(logger.LevelFor(opts.debug), logFileW)
	return nil
}

// changedFlags lists the flags set on the command line, for debug logs.
func changedFlags(cmd *cobra.Command) []string {
	var names []string
	cmd.Flags().Visit(func(f *pflag.Flag) {
		names = append(names, f.Name)
	})
	return names
}

// selectFormat applies -t on top of --format. -t together with a different
// explicit --format is rejected.
func selectFormat(cmd *cobra.Command, opts *rootOptions) (catalog.Format, error) {
	format, err := catalog.ParseFormat(opts.format)
	if err != nil {
		return "", apperrors.New(apperrors.KindUsage, err.Error(), err)
	}
	if !opts.text {
		return format, nil
	}
	if cmd.Flags().Changed("format") && format != catalog.FormatText {
		return "", apperrors.New(apperrors.KindUsage, fmt.Sprintf("-t conflicts with --format %s", format), nil)
	}
	return catalog.FormatText, nil
}
