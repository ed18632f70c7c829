// Package tui hosts the form screen in the terminal.
//
// Built on Bubble Tea, it follows the Elm architecture: Update turns key
// presses into calls on a form.Screen, and View paints the latest view tree
// the screen delivered. The Model is the screen's single subscribed renderer,
// so every mutation re-renders before the next key is processed.
//
// # Controls
//
// The form has three focusable controls, visited in order with tab/shift+tab
// (or ↑/↓ when not typing):
//   - Picker: ←/→ cycle students, Enter expands the list inline,
//     ↑/↓ move, Enter confirms, Esc cancels
//   - Name field: bubbles/textinput; every keystroke is written back
//     to the screen immediately
//   - Tap button: Enter or Space taps
//
// Ctrl+C quits from anywhere, q quits when the name field is not focused.
//
// # Usage Example
//
//	screen, _ := form.NewScreen()
//	program := tea.NewProgram(tui.NewModel(screen), tea.WithAltScreen())
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Styling
//
// All screens are wrapped by RenderApplicationContainer: a bordered panel with
// the navigation title on top and context-sensitive help at the bottom.
package tui
