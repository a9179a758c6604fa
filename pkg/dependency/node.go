// Package dependency builds the transitive dependency tree of a native
// binary from per-module reports produced by an analysis tool.
package dependency

import "context"

// Kind describes how a node entered the tree.
type Kind int

const (
	// KindResolved is a module with a known on-disk location.
	KindResolved Kind = iota
	// KindNotFound is a module that resolved to no location. Always a leaf.
	KindNotFound
	// KindError is a module whose report could not be obtained. Always a
	// leaf; the rest of the graph still resolves.
	KindError
	// KindReference marks a repeat encounter of a module that was already
	// resolved elsewhere in the tree. Always a leaf.
	KindReference
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not-found"
	case KindError:
		return "error"
	case KindReference:
		return "reference"
	default:
		return "resolved"
	}
}

// MarshalText renders the kind as its string form in JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Node is one module in the resolved dependency tree.
type Node struct {
	// Name is the bare module filename as reported, no directory component.
	Name string `json:"name"`
	// Location is the resolved absolute path; empty iff resolution failed.
	Location string `json:"location,omitempty"`
	Kind     Kind   `json:"kind"`
	// Err carries the failure message for KindError nodes.
	Err string `json:"error,omitempty"`
	// Children are exclusively owned and ordered exactly as the analysis
	// tool reported them.
	Children []*Node `json:"children,omitempty"`
}

// Walk visits the node and all descendants depth-first, in child order.
func (n *Node) Walk(visit func(depth int, node *Node)) {
	n.walk(0, visit)
}

func (n *Node) walk(depth int, visit func(int, *Node)) {
	visit(depth, n)
	for _, child := range n.Children {
		child.walk(depth+1, visit)
	}
}

// Count returns the number of nodes in the tree, the root included.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(int, *Node) { count++ })
	return count
}

// Analyzer produces the raw dependency report for one resolved module.
// Implementations spawn the external analysis tool; tests substitute canned
// fixtures.
type Analyzer interface {
	Report(ctx context.Context, modulePath string) (string, error)
}

// AnalyzerFunc adapts a plain function to the Analyzer interface.
type AnalyzerFunc func(ctx context.Context, modulePath string) (string, error)

// Report implements Analyzer.
func (f AnalyzerFunc) Report(ctx context.Context, modulePath string) (string, error) {
	return f(ctx, modulePath)
}

// Locator maps a module name plus a preferred search directory to an
// absolute path.
type Locator func(name string, preferredDir string) (string, error)
