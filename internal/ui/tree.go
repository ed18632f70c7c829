package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wesplit/wesplit/internal/view"
)

// RenderTree renders a view tree as a static, non-interactive form.
// Sections are indented under a divider, the picker lists every option
// with the selected one marked.
func RenderTree(tree view.Node, width int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	body := strings.Join(treeLines(tree, width-4), "\n")
	return TreeBoxStyle(width).Render(body)
}

func treeLines(n view.Node, width int) []string {
	switch n.Kind {
	case view.KindNavigation:
		title := NavTitleStyle.Render(n.Title)
		if n.DisplayMode != view.DisplayInline {
			title = NavTitleStyle.Render(strings.ToUpper(n.Title))
		}
		lines := []string{title, RenderHorizontalDivider(width, "─")}
		for _, c := range n.Children {
			lines = append(lines, treeLines(c, width)...)
		}
		return lines

	case view.KindForm, view.KindGroup:
		var lines []string
		for _, c := range n.Children {
			lines = append(lines, treeLines(c, width)...)
		}
		return lines

	case view.KindSection:
		lines := []string{""}
		if n.Title != "" {
			lines = append(lines, ControlValueStyle.Render(strings.ToUpper(n.Title)))
		}
		for _, c := range n.Children {
			for _, l := range treeLines(c, width-2) {
				lines = append(lines, "  "+l)
			}
		}
		return lines

	case view.KindPicker:
		lines := []string{lipgloss.JoinHorizontal(lipgloss.Top,
			ControlLabelStyle.Render(n.Label), "  ", ControlValueStyle.Render(n.Selected))}
		for _, opt := range n.Options {
			marker := "( )"
			if opt == n.Selected {
				marker = "(•)"
			}
			lines = append(lines, ControlValueStyle.Render("  "+marker+" ")+ControlLabelStyle.Render(opt))
		}
		return lines

	case view.KindTextField:
		if n.Value == "" {
			return []string{ControlValueStyle.Render("[ " + n.Placeholder + " ]")}
		}
		return []string{ControlLabelStyle.Render("[ " + n.Value + " ]")}

	case view.KindText:
		return []string{ControlLabelStyle.Render(n.Value)}

	case view.KindButton:
		return []string{ButtonStyle.Render("< " + n.Label + " >")}
	}
	return nil
}
