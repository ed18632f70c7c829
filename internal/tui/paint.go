package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wesplit/wesplit/internal/view"
)

// paint turns a view tree into terminal output, decorating the focused
// control. Everything it shows comes from the tree except the live cursor of
// the focused name field.
func (m Model) paint(n view.Node) string {
	switch n.Kind {
	case view.KindNavigation, view.KindForm, view.KindGroup:
		rows := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			rows = append(rows, m.paint(c))
		}
		return lipgloss.JoinVertical(lipgloss.Left, rows...)

	case view.KindSection:
		rows := make([]string, 0, len(n.Children)+1)
		if n.Title != "" {
			rows = append(rows, ValueStyle.Render(strings.ToUpper(n.Title)))
		}
		for _, c := range n.Children {
			rows = append(rows, m.paint(c))
		}
		return SectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	case view.KindPicker:
		return m.paintPicker(n)

	case view.KindTextField:
		return m.paintTextField(n)

	case view.KindText:
		return LabelStyle.Render(n.Value)

	case view.KindButton:
		if m.Focus == FocusButton && !m.Picking {
			return FocusedButtonStyle.Render(" " + n.Label + " ")
		}
		return ButtonStyle.Render(" " + n.Label + " ")
	}
	return ""
}

func (m Model) paintPicker(n view.Node) string {
	focused := m.Focus == FocusPicker
	label := LabelStyle.Render(n.Label)
	if focused {
		label = FocusedLabelStyle.Render(n.Label)
	}

	value := n.Selected + " ›"
	if focused && !m.Picking {
		value = "‹ " + n.Selected + " ›"
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, label, "  ", ValueStyle.Render(value))

	if !m.Picking {
		return row
	}

	lines := []string{row}
	for i, opt := range n.Options {
		text := opt
		if opt == n.Selected {
			text += " ✓"
		}
		lines = append(lines, RenderMenuItem(text, i == m.PickIndex))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) paintTextField(n view.Node) string {
	if m.Focus == FocusName && !m.Picking {
		return FocusedLabelStyle.Render("› ") + m.NameInput.View()
	}
	if n.Value == "" {
		return "  " + PlaceholderStyle.Render(n.Placeholder)
	}
	return "  " + LabelStyle.Render(n.Value)
}
