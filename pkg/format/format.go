// Package format renders a resolved dependency tree as a table, a tree or
// JSON.
package format

import (
	"github.com/cockroachdb/errors"

	errUtils "github.com/forrestthewoods/fts-depends/errors"
	"github.com/forrestthewoods/fts-depends/pkg/dependency"
	"github.com/forrestthewoods/fts-depends/pkg/schema"
)

// Markers shown in the location column for nodes without a usable location.
const (
	notFoundMarker  = "⚠️ Not Found ⚠️"
	referenceMarker = "previously resolved at "
)

// Options controls rendering.
type Options struct {
	// TTY enables colors and styling; plain output otherwise.
	TTY bool
}

// Render renders the tree in the requested format.
func Render(root *dependency.Node, format string, options Options) (string, error) {
	switch format {
	case "", schema.FormatTable:
		return RenderTable(root, options), nil
	case schema.FormatTree:
		return RenderTree(root, options), nil
	case schema.FormatJSON:
		return RenderJSON(root)
	default:
		return "", errors.Wrapf(errUtils.ErrInvalidFormat, "'%s' (supported formats are table, tree, json)", format)
	}
}

// locationCell returns the location column text for a node.
func locationCell(node *dependency.Node) string {
	switch node.Kind {
	case dependency.KindNotFound:
		return notFoundMarker
	case dependency.KindError:
		return "Error: " + node.Err
	case dependency.KindReference:
		return referenceMarker + node.Location
	default:
		return node.Location
	}
}
