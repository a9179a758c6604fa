package format

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/forrestthewoods/fts-depends/pkg/dependency"
	"github.com/forrestthewoods/fts-depends/pkg/ui/theme"
)

// Table column headers.
const (
	headerDependency = "Dependency"
	headerLocation   = "Resolved Location (best guess)"
)

// RenderTable renders the tree as a two-column table, one row per node in
// depth-first order.
func RenderTable(root *dependency.Node, options Options) string {
	var rows [][]string
	var kinds []dependency.Kind
	root.Walk(func(depth int, node *dependency.Node) {
		rows = append(rows, []string{node.Name, locationCell(node)})
		kinds = append(kinds, node.Kind)
	})

	headerStyle := lipgloss.NewStyle().Bold(true)
	cellStyle := lipgloss.NewStyle()

	t := table.New().
		Headers(headerDependency, headerLocation).
		Rows(rows...).
		BorderHeader(true).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderRow(false).
		BorderColumn(false).
		BorderStyle(theme.Styles.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			base := cellStyle.Padding(0, 1)
			if !options.TTY || col == 0 || row < 0 || row >= len(kinds) {
				return base
			}
			// Color the location column by how the node resolved.
			switch kinds[row] {
			case dependency.KindNotFound:
				return theme.Styles.NotFound.Padding(0, 1)
			case dependency.KindError:
				return theme.Styles.Error.Padding(0, 1)
			case dependency.KindReference:
				return theme.Styles.Reference.Padding(0, 1)
			default:
				return theme.Styles.Location.Padding(0, 1)
			}
		})

	return t.String() + "\n"
}
