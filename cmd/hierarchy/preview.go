package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"
	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/tree"
)

var (
	branchStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	leafStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// renderTree draws one line per node, indented by depth, with the node's
// aggregated value right of its name.
func renderTree(nodes []models.TreeNode, styled bool) string {
	paint := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	var sb strings.Builder
	tree.Walk(nodes, func(n models.TreeNode, info models.NodeInfo) bool {
		sb.WriteString(strings.Repeat("  ", info.Depth-1))
		if info.IsLeaf {
			sb.WriteString(paint(leafStyle, n.Name))
		} else {
			sb.WriteString(paint(branchStyle, n.Name))
		}
		sb.WriteString(" ")
		sb.WriteString(paint(valueStyle, models.FormatNumber(info.Value)))
		sb.WriteString("\n")
		return true
	})
	return sb.String()
}
