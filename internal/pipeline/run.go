package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oukeidos/langcat/internal/apperrors"
	"github.com/oukeidos/langcat/internal/catalog"
	"github.com/oukeidos/langcat/internal/files"
	"github.com/oukeidos/langcat/internal/logger"
)

// UniquenessWarning is printed when the catalog contains a symbol twice.
const UniquenessWarning = "WARNING: Symbols are not unique."

const outputPerms = 0644

type Status string

const (
	StatusWritten Status = "written"
	StatusSkipped Status = "skipped"
)

// Result describes a completed run.
type Result struct {
	Status     Status
	Catalog    catalog.Result
	OutputPath string // empty when the catalog went to the output writer
}

var (
	readFile = os.ReadFile
	render   = catalog.Render
)

// Load reads the identifier list at path. The file is read in one call and
// not held open afterwards.
func Load(path string) ([]string, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, apperrors.New(apperrors.KindInput, fmt.Sprintf("Error reading file: %v", err), err)
	}
	ids, err := catalog.ParseIdentifiers(data)
	if err != nil {
		return nil, apperrors.New(apperrors.KindInput, fmt.Sprintf("Error reading file: %s: %v", path, err), err)
	}
	return ids, nil
}

// Run loads the identifier list, builds the catalog and renders it.
//
// The uniqueness warning goes to warn. The catalog goes to cfg.OutputPath
// when set, otherwise to out. Nothing is written to out when loading or
// rendering fails.
func Run(cfg Config, r catalog.Resolver, out, warn io.Writer) (Result, error) {
	var notes []string
	cfg, notes = cfg.Normalize()
	for _, note := range notes {
		logger.Debug("Config normalized", "detail", note)
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, apperrors.New(apperrors.KindUsage, fmt.Sprintf("invalid configuration: %v", err), err)
	}
	if cfg.OutputPath != "" {
		if err := checkOutputPath(cfg); err != nil {
			return Result{}, err
		}
	}

	ids, err := Load(cfg.InputPath)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("Loaded identifiers", "count", len(ids), "path", cfg.InputPath)

	res := catalog.Build(ids, r)
	for _, id := range res.Dropped {
		logger.Debug("No display name for identifier", "identifier", id, "locale", cfg.Locale.String())
	}
	logger.Debug("Catalog built", "entries", len(res.Entries), "dropped", len(res.Dropped))

	if !res.Unique() {
		fmt.Fprintln(warn, UniquenessWarning)
		logger.Debug("Duplicate symbols in catalog", "symbols", res.Duplicates)
	}

	var buf bytes.Buffer
	if err := render(&buf, res.Entries, cfg.Format); err != nil {
		return Result{Catalog: res}, apperrors.New(apperrors.KindEncode, fmt.Sprintf("Error during %s encoding: %v", cfg.Format, err), err)
	}

	if cfg.OutputPath == "" {
		if _, err := out.Write(buf.Bytes()); err != nil {
			return Result{Catalog: res}, apperrors.Output(err)
		}
		return Result{Status: StatusWritten, Catalog: res}, nil
	}

	if _, err := os.Stat(cfg.OutputPath); err == nil && !cfg.Overwrite {
		if cfg.OnConfirmOverwrite == nil || !cfg.OnConfirmOverwrite(cfg.OutputPath) {
			logger.Info("Output file exists. Aborted by user.", "path", cfg.OutputPath)
			return Result{Status: StatusSkipped, Catalog: res, OutputPath: cfg.OutputPath}, nil
		}
		logger.Info("Overwriting output file", "path", cfg.OutputPath)
	}
	if err := files.AtomicWrite(cfg.OutputPath, buf.Bytes(), outputPerms); err != nil {
		return Result{Catalog: res}, apperrors.New(apperrors.KindOutput, fmt.Sprintf("Error writing %s: %v", cfg.OutputPath, err), err)
	}
	logger.Info("Catalog written", "entries", len(res.Entries), "path", cfg.OutputPath)
	return Result{Status: StatusWritten, Catalog: res, OutputPath: cfg.OutputPath}, nil
}

func checkOutputPath(cfg Config) error {
	absIn, err := filepath.Abs(cfg.InputPath)
	if err != nil {
		return apperrors.New(apperrors.KindUsage, fmt.Sprintf("failed to resolve input path: %v", err), err)
	}
	absOut, err := filepath.Abs(cfg.OutputPath)
	if err != nil {
		return apperrors.New(apperrors.KindUsage, fmt.Sprintf("failed to resolve output path: %v", err), err)
	}
	same := absIn == absOut
	if !same {
		if inInfo, err := os.Stat(absIn); err == nil {
			if outInfo, err := os.Stat(absOut); err == nil {
				same = os.SameFile(inInfo, outInfo)
			}
		}
	}
	if same {
		return apperrors.New(apperrors.KindUsage, fmt.Sprintf("input and output files are the same (%s)", absIn), nil)
	}
	if err := files.RejectSymlinkPath(cfg.OutputPath); err != nil {
		return apperrors.New(apperrors.KindOutput, err.Error(), err)
	}
	return nil
}
