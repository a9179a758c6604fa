// Package report parses the textual output of `dumpbin /DEPENDENTS`.
package report

import "strings"

// Marker lines emitted by dumpbin before each dependency block.
const (
	dependentsMarker = "Image has the following dependencies:"
	delayLoadMarker  = "Image has the following delay load dependencies:"
)

// Parse extracts the ordered list of dependency names from a raw dumpbin
// report. The direct-dependency block comes first, followed by the delay-load
// block. A missing marker means an empty block, not an error; duplicates
// within one report are preserved.
func Parse(raw string) []string {
	deps := extractBlock(raw, dependentsMarker)
	return append(deps, extractBlock(raw, delayLoadMarker)...)
}

// extractBlock returns the trimmed, non-blank lines between a marker line and
// the first blank line (or end of text).
func extractBlock(raw string, marker string) []string {
	idx := strings.Index(raw, marker)
	if idx < 0 {
		return nil
	}

	rest := strings.TrimLeft(raw[idx+len(marker):], " \t\r\n")

	var names []string
	for _, line := range strings.Split(rest, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		names = append(names, line)
	}
	return names
}
