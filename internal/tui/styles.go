package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wesplit/wesplit/internal/version"
	"github.com/wesplit/wesplit/internal/view"
)

// AppName is shown on the right of the title bar
const AppName = "wesplit"

// Layout constants for responsive terminal width
const (
	MinTerminalWidth  = 48
	MinTerminalHeight = 16
	DefaultWidth      = 80
	DefaultHeight     = 24
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green

	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

// Common styles
var (
	// Large navigation title, used for the large and automatic display modes
	LargeTitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true).
			Padding(1, 0, 0, 0)

	// Inline navigation title
	InlineTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	// Row label (e.g., "Select your student")
	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Focused row label
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	// Picker value shown on the right of the row
	ValueStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Placeholder text for an empty field
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Italic(true)

	// Button label
	ButtonStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// Focused button label
	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true)

	// Menu item style (unselected)
	MenuItemStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(TextColor)

	// Menu item style (selected)
	SelectedMenuItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(HighlightColor).
				Bold(true)

	// Rounded box drawn around each form section
	SectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1)
)

// RenderMenuItem renders a menu item with selection indicator
func RenderMenuItem(text string, selected bool) string {
	if selected {
		return SelectedMenuItemStyle.Render("→ " + text)
	}
	return MenuItemStyle.Render("  " + text)
}

// BuildHeaderContent renders the navigation title bar.
// Inline mode keeps the title on the same line as the app name; large and
// automatic modes give it its own bold line.
func BuildHeaderContent(title string, mode view.DisplayMode, width int) string {
	app := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(AppName + " " + version.Version)

	if mode == view.DisplayInline {
		left := InlineTitleStyle.Render(title)
		gap := width - lipgloss.Width(left) - lipgloss.Width(app)
		if gap < 1 {
			gap = 1
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), app)
	}

	return lipgloss.JoinVertical(lipgloss.Left, app, LargeTitleStyle.Render(title))
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps screen content in the full-terminal panel:
// header on top, content in the middle, help footer at the bottom, all inside
// an outer border.
func RenderApplicationContainer(header, content, footerText string, terminalWidth, terminalHeight int) string {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}
	if terminalHeight < MinTerminalHeight {
		terminalHeight = MinTerminalHeight
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(1, 1)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(header),
		contentStyle.Render(content),
		footerStyle.Render(BuildFooterContent(footerText)),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(innerContent)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}
