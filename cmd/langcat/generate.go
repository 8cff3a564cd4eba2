package main

import (
	"fmt"

	"github.com/oukeidos/langcat/internal/apperrors"
	"github.com/oukeidos/langcat/internal/files"
	"github.com/oukeidos/langcat/internal/locale"
	"github.com/oukeidos/langcat/internal/logger"
	"github.com/oukeidos/langcat/internal/pipeline"
	"github.com/spf13/cobra"
)

func runGenerate(cmd *cobra.Command, opts *rootOptions) error {
	format, err := selectFormat(cmd, opts)
	if err != nil {
		return err
	}

	confirmer := newConfirmer()
	outputPath := opts.output
	if outputPath != "" && !opts.yes && !confirmer.Interactive() {
		safePath, changed, err := files.SafePath(outputPath)
		if err != nil {
			return apperrors.New(apperrors.KindOutput, fmt.Sprintf("failed to resolve output path: %v", err), err)
		}
		if changed {
			logger.Warn("Output path adjusted to avoid overwrite", "original", outputPath, "effective", safePath)
			outputPath = safePath
		}
	}

	cfg := pipeline.Config{
		InputPath:  opts.input,
		OutputPath: outputPath,
		Format:     format,
		Locale:     locale.ReferenceLocale,
		Overwrite:  opts.yes,
		OnConfirmOverwrite: func(path string) bool {
			ok, err := confirmer.ConfirmOverwrite(path, false)
			if err != nil {
				logger.Warn("Overwrite not confirmed", "path", path, "error", err)
				return false
			}
			return ok
		},
	}

	out := cmd.OutOrStdout()
	result, err := pipeline.Run(cfg, newResolver(cfg.Locale), out, out)
	if err != nil {
		return err
	}
	if result.Status == pipeline.StatusSkipped {
		fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
	}
	return nil
}
