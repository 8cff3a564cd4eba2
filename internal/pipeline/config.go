package pipeline

import (
	"fmt"

	"github.com/oukeidos/langcat/internal/catalog"
	"github.com/oukeidos/langcat/internal/config"
	"github.com/oukeidos/langcat/internal/locale"
	"golang.org/x/text/language"
)

// Config holds everything a catalog run needs.
type Config struct {
	// IO Paths
	InputPath  string
	OutputPath string // Optional: empty writes to the run's output writer

	Format catalog.Format

	// Locale display names are rendered in.
	Locale language.Tag

	// Overwrite replaces an existing OutputPath without asking.
	Overwrite bool

	// OnConfirmOverwrite is called when OutputPath exists and Overwrite is
	// false. Returning false skips the write.
	OnConfirmOverwrite func(path string) bool
}

// Normalize fills unset values with defaults and returns a note for each.
func (c Config) Normalize() (Config, []string) {
	var notes []string
	if c.InputPath == "" {
		c.InputPath = config.DefaultInputPath
		notes = append(notes, fmt.Sprintf("input path defaulted to %s", c.InputPath))
	}
	if c.Format == "" {
		c.Format = catalog.FormatJSON
	}
	if c.Locale == language.Und {
		c.Locale = locale.ReferenceLocale
	}
	return c, notes
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input path is required")
	}
	if _, err := catalog.ParseFormat(string(c.Format)); err != nil {
		return err
	}
	return nil
}
