// Package classify decides which modules count as "system" noise and are
// suppressed from the dependency graph by policy.
package classify

import "strings"

// Outcome is the tagged result of evaluating a module against filter policy.
type Outcome int

const (
	// Accept means the module stays in the graph.
	Accept Outcome = iota
	// SkipNamePattern means the module name matches a known system-stub
	// prefix and is suppressed before its location is ever probed.
	SkipNamePattern
	// SkipPathPattern means the module resolved into a system install
	// directory and is suppressed.
	SkipPathPattern
)

// Skip reports whether the outcome suppresses the module.
func (o Outcome) Skip() bool {
	return o != Accept
}

func (o Outcome) String() string {
	switch o {
	case SkipNamePattern:
		return "skip (name pattern)"
	case SkipPathPattern:
		return "skip (path pattern)"
	default:
		return "accept"
	}
}

// systemNamePrefixes identify API-set forwarding stubs; these are known
// system modules a priori, so the name filter runs before any file-system
// probing.
var systemNamePrefixes = []string{
	"api-ms-win",
	"ext-ms-win",
}

// systemPathFragments match the Windows system directory and the Windows SDK
// tree. Compared against a lowercased, slash-normalized path.
var systemPathFragments = []string{
	"windows/system32",
	"/windows kits/",
}

// Classifier applies the system-module filters. With ShowSystem set, both
// filters are disabled and every module is accepted.
type Classifier struct {
	ShowSystem bool
}

// ClassifyName evaluates the bare module name against the name filter.
func (c Classifier) ClassifyName(name string) Outcome {
	if c.ShowSystem {
		return Accept
	}
	for _, prefix := range systemNamePrefixes {
		if strings.HasPrefix(strings.ToLower(name), prefix) {
			return SkipNamePattern
		}
	}
	return Accept
}

// ClassifyPath evaluates a resolved location against the path filter.
func (c Classifier) ClassifyPath(location string) Outcome {
	if c.ShowSystem {
		return Accept
	}
	// Normalize separators by hand; filepath.ToSlash only rewrites the
	// host separator and these are always Windows-style paths.
	normalized := strings.ReplaceAll(strings.ToLower(location), `\`, "/")
	for _, fragment := range systemPathFragments {
		if strings.Contains(normalized, fragment) {
			return SkipPathPattern
		}
	}
	return Accept
}
