package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON  Format = "json"
	FormatText  Format = "text"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// Formats lists the accepted output formats in help order.
var Formats = []Format{FormatJSON, FormatText, FormatYAML, FormatTable}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatJSON, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q (want one of %s)", s, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Render writes entries to w in the given format.
func Render(w io.Writer, entries []Entry, format Format) error {
	switch format {
	case FormatText:
		return renderText(w, entries)
	case FormatJSON, "":
		return renderJSON(w, entries)
	case FormatYAML:
		return renderYAML(w, entries)
	case FormatTable:
		return renderTable(w, entries)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func renderText(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s (%s)\n", e.Name, e.Symbol); err != nil {
			return err
		}
	}
	return nil
}

// renderJSON emits a two-space indented array. Entry declares its fields in
// key order, so every object has sorted keys.
func renderJSON(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func renderYAML(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return enc.Close()
}

// renderTable pads names to the widest name measured in terminal cells.
func renderTable(w io.Writer, entries []Entry) error {
	width := 0
	for _, e := range entries {
		if n := uniseg.StringWidth(e.Name); n > width {
			width = n
		}
	}
	for _, e := range entries {
		pad := width - uniseg.StringWidth(e.Name)
		if _, err := fmt.Fprintf(w, "%s%s  %s\n", e.Name, strings.Repeat(" ", pad), e.Symbol); err != nil {
			return err
		}
	}
	return nil
}
