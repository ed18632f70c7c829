package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wesplit/wesplit/internal/form"
	"github.com/wesplit/wesplit/internal/view"
)

// Focus identifies the control that receives key presses
type Focus int

const (
	FocusPicker Focus = iota
	FocusName
	FocusButton

	focusCount
)

// canvas is the renderer subscribed to the screen. It lives behind a pointer
// so every copy of the Model sees the latest tree.
type canvas struct {
	tree   view.Node
	frames int
}

func (c *canvas) apply(tree view.Node) {
	c.tree = tree
	c.frames++
}

// Model is the Bubble Tea model hosting a form.Screen
type Model struct {
	Screen *form.Screen
	canvas *canvas

	Focus     Focus
	Picking   bool // Student list expanded inline
	PickIndex int  // Highlighted row while picking

	NameInput textinput.Model

	Width  int
	Height int

	Help        help.Model
	FormKeys    formKeyMap
	EditingKeys editingKeyMap
	PickerKeys  pickerKeyMap

	quitting bool
}

// NewModel creates a model for screen and subscribes it as the screen's renderer
func NewModel(screen *form.Screen) Model {
	nameInput := textinput.New()
	nameInput.Placeholder = form.NamePlaceholder
	nameInput.Prompt = ""
	nameInput.SetValue(screen.State().Name)

	c := &canvas{}
	screen.Subscribe(c.apply)

	return Model{
		Screen:      screen,
		canvas:      c,
		Focus:       FocusPicker,
		NameInput:   nameInput,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Help:        help.New(),
		FormKeys:    newFormKeyMap(),
		EditingKeys: newEditingKeyMap(),
		PickerKeys:  newPickerKeyMap(),
	}
}

// Tree returns the latest tree delivered by the screen
func (m Model) Tree() view.Node {
	return m.canvas.tree
}

// Frames returns how many trees the screen has delivered
func (m Model) Frames() int {
	return m.canvas.frames
}

// Quitting reports whether the model has asked the program to exit
func (m Model) Quitting() bool {
	return m.quitting
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.Picking {
			return m.updatePicker(msg)
		}
		switch m.Focus {
		case FocusName:
			return m.updateName(msg)
		default:
			return m.updateControls(msg)
		}
	}

	// Forward anything else (cursor blink) to the text field
	if m.Focus == FocusName {
		var cmd tea.Cmd
		m.NameInput, cmd = m.NameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateControls handles keys while the picker or button row has focus
func (m Model) updateControls(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.FormKeys.Quit):
		return m.quit()

	case key.Matches(msg, m.FormKeys.Next):
		return m.moveFocus(1)

	case key.Matches(msg, m.FormKeys.Prev):
		return m.moveFocus(-1)

	case key.Matches(msg, m.FormKeys.Cycle):
		if m.Focus == FocusPicker {
			step := 1
			if s := msg.String(); s == "left" || s == "h" {
				step = -1
			}
			m.cycleStudent(step)
		}

	case key.Matches(msg, m.FormKeys.Activate):
		switch m.Focus {
		case FocusPicker:
			m.Picking = true
			m.PickIndex = m.Screen.Roster().Index(m.Screen.State().SelectedStudent)
		case FocusButton:
			m.Screen.TapButton()
		}
	}

	return m, nil
}

// updateName forwards keystrokes to the text field and writes every change
// back to the screen
func (m Model) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.EditingKeys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.EditingKeys.Prev):
		return m.moveFocus(-1)
	}

	var cmd tea.Cmd
	m.NameInput, cmd = m.NameInput.Update(msg)

	if value := m.NameInput.Value(); value != m.Screen.State().Name {
		m.Screen.EditName(value)
		// The screen may have trimmed the text; the field shows what it kept
		if kept := m.Screen.State().Name; kept != value {
			m.NameInput.SetValue(kept)
		}
	}

	return m, cmd
}

// updatePicker handles keys while the student list is expanded
func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	roster := m.Screen.Roster()

	switch {
	case key.Matches(msg, m.PickerKeys.Up):
		if m.PickIndex > 0 {
			m.PickIndex--
		}

	case key.Matches(msg, m.PickerKeys.Down):
		if m.PickIndex < roster.Len()-1 {
			m.PickIndex++
		}

	case key.Matches(msg, m.PickerKeys.Choose):
		// Only roster members are offered, so this cannot fail
		_ = m.Screen.SelectStudent(roster.At(m.PickIndex))
		m.Picking = false

	case key.Matches(msg, m.PickerKeys.Cancel):
		m.Picking = false
	}

	return m, nil
}

func (m *Model) cycleStudent(step int) {
	roster := m.Screen.Roster()
	i := roster.Index(m.Screen.State().SelectedStudent)
	i = (i + step + roster.Len()) % roster.Len()
	_ = m.Screen.SelectStudent(roster.At(i))
}

func (m Model) moveFocus(step int) (tea.Model, tea.Cmd) {
	m.Focus = Focus((int(m.Focus) + step + int(focusCount)) % int(focusCount))

	if m.Focus == FocusName {
		return m, m.NameInput.Focus()
	}
	m.NameInput.Blur()
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.NameInput.Blur()
	m.Screen.Close()
	return m, tea.Quit
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	tree := m.Tree()
	header := BuildHeaderContent(tree.Title, tree.DisplayMode, m.Width-6)

	var helpText string
	switch {
	case m.Picking:
		helpText = m.Help.View(m.PickerKeys)
	case m.Focus == FocusName:
		helpText = m.Help.View(m.EditingKeys)
	default:
		helpText = m.Help.View(m.FormKeys)
	}

	return RenderApplicationContainer(header, m.paint(tree), helpText, m.Width, m.Height)
}
