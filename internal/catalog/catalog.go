// Package catalog turns a list of language identifiers into a catalog of
// display names sorted by name.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Entry is a resolved identifier. Symbol is the identifier exactly as it
// appeared in the input.
type Entry struct {
	Name   string `json:"name" yaml:"name"`
	Symbol string `json:"symbol" yaml:"symbol"`
}

// Resolver looks up the display name of an identifier. The naming locale is
// fixed when the resolver is constructed. ok is false when the identifier has
// no name.
type Resolver interface {
	DisplayName(identifier string) (name string, ok bool)
}

// StaticResolver resolves identifiers from a fixed table.
type StaticResolver map[string]string

func (s StaticResolver) DisplayName(identifier string) (string, bool) {
	name, ok := s[identifier]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// Result is the outcome of Build.
type Result struct {
	// Entries is ordered by Name ascending; entries with equal names keep
	// their input order.
	Entries []Entry
	// Dropped lists identifiers without a display name, in input order.
	Dropped []string
	// Duplicates lists symbols that occur more than once in Entries.
	Duplicates []string
}

// Unique reports whether every symbol in the catalog is distinct.
func (r Result) Unique() bool {
	return len(r.Duplicates) == 0
}

// ParseIdentifiers splits data into lines and discards empty ones. Lines are
// otherwise kept verbatim.
func ParseIdentifiers(data []byte) ([]string, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("input is not valid UTF-8")
	}
	return strings.FieldsFunc(string(data), isNewline), nil
}

func isNewline(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// Build resolves ids through r, drops the ones without a name and sorts the
// rest by name.
func Build(ids []string, r Resolver) Result {
	res := Result{Entries: make([]Entry, 0, len(ids))}
	for _, id := range ids {
		if id == "" {
			continue
		}
		name, ok := r.DisplayName(id)
		if !ok || name == "" {
			res.Dropped = append(res.Dropped, id)
			continue
		}
		res.Entries = append(res.Entries, Entry{Name: name, Symbol: id})
	}
	sort.SliceStable(res.Entries, func(i, j int) bool {
		return res.Entries[i].Name < res.Entries[j].Name
	})
	res.Duplicates = DuplicateSymbols(res.Entries)
	return res
}

// DuplicateSymbols returns each symbol that appears more than once, sorted.
func DuplicateSymbols(entries []Entry) []string {
	counts := make(map[string]int, len(entries))
	for _, e := range entries {
		counts[e.Symbol]++
	}
	var dups []string
	for sym, n := range counts {
		if n > 1 {
			dups = append(dups, sym)
		}
	}
	sort.Strings(dups)
	return dups
}
