// Command langcat converts a list of language identifiers into a catalog of
// display names.
//
// Usage: `langcat` for JSON output, or `langcat -t` for text output.
package main

func main() {
	execute()
}
