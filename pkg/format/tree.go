package format

import (
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/forrestthewoods/fts-depends/pkg/dependency"
	"github.com/forrestthewoods/fts-depends/pkg/ui/theme"
)

// RenderTree renders the dependency tree with branch guides.
func RenderTree(root *dependency.Node, options Options) string {
	t := tree.New().Root(treeLabel(root, options))
	if options.TTY {
		t.EnumeratorStyle(theme.Styles.TreeBranch)
	}
	for _, child := range root.Children {
		t.Child(buildSubtree(child, options))
	}
	return t.String() + "\n"
}

func buildSubtree(node *dependency.Node, options Options) any {
	if len(node.Children) == 0 {
		return treeLabel(node, options)
	}

	sub := tree.New().Root(treeLabel(node, options))
	if options.TTY {
		sub.EnumeratorStyle(theme.Styles.TreeBranch)
	}
	for _, child := range node.Children {
		sub.Child(buildSubtree(child, options))
	}
	return sub
}

// treeLabel annotates the module name for nodes that did not resolve cleanly.
func treeLabel(node *dependency.Node, options Options) string {
	switch node.Kind {
	case dependency.KindNotFound:
		label := node.Name + " " + notFoundMarker
		if options.TTY {
			return node.Name + " " + theme.Styles.NotFound.Render(notFoundMarker)
		}
		return label
	case dependency.KindError:
		label := "(report unavailable: " + node.Err + ")"
		if options.TTY {
			return node.Name + " " + theme.Styles.Error.Render(label)
		}
		return node.Name + " " + label
	case dependency.KindReference:
		label := "(previously resolved)"
		if options.TTY {
			return node.Name + " " + theme.Styles.Reference.Render(label)
		}
		return node.Name + " " + label
	default:
		return node.Name
	}
}
