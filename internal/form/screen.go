package form

import (
	"strconv"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wesplit/wesplit/internal/logging"
	"github.com/wesplit/wesplit/internal/view"
)

// Fixed text shown by the screen
const (
	DefaultTitle    = "SwiftUI"
	PickerLabel     = "Select your student"
	NamePlaceholder = "Enter your name"
	GreetingText    = "Hello, world!"

	namePrefix = "Your name is "
	tapPrefix  = "Tap Count: "
)

// NameLabel returns the text displayed for the current name
func NameLabel(name string) string {
	return namePrefix + name
}

// TapLabel returns the button label for the current tap count
func TapLabel(count int) string {
	return tapPrefix + strconv.Itoa(count)
}

// State is a snapshot of the screen's mutable cells
type State struct {
	SelectedStudent string
	Name            string
	TapCount        int
}

// RenderFunc receives each freshly rendered tree
type RenderFunc func(tree view.Node)

// Screen is the form screen: a roster, three state cells and at most one
// subscribed renderer.
type Screen struct {
	id       string
	roster   Roster
	settings settings
	state    State

	renderer RenderFunc
	renders  int
	closed   bool
}

// NewScreen creates a screen in its initial state: first student selected,
// empty name, zero taps.
func NewScreen(opts ...Option) (*Screen, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}

	roster, err := NewRoster(s.students)
	if err != nil {
		return nil, err
	}

	screen := &Screen{
		id:       uuid.NewString(),
		roster:   roster,
		settings: s,
		state: State{
			SelectedStudent: roster.At(0),
		},
	}

	logging.LogScreenEvent(screen.id, "opened",
		zap.Strings("students", roster.Names()),
		zap.String("title", s.title),
	)

	return screen, nil
}

// ID returns the session identifier used in log output
func (s *Screen) ID() string {
	return s.id
}

// Roster returns the screen's fixed student list
func (s *Screen) Roster() Roster {
	return s.roster
}

// State returns a snapshot of the state cells
func (s *Screen) State() State {
	return s.state
}

// Renders returns how many times the subscribed renderer has been notified
func (s *Screen) Renders() int {
	return s.renders
}

// Subscribe registers fn as the screen's renderer, replacing any previous
// one, and immediately delivers the current tree. A nil fn detaches.
func (s *Screen) Subscribe(fn RenderFunc) {
	if s.closed {
		return
	}
	s.renderer = fn
	s.notify()
}

// SelectStudent makes student the selected student.
// Students not on the roster are rejected and leave the state unchanged.
func (s *Screen) SelectStudent(student string) error {
	if s.closed {
		return ErrScreenClosed
	}
	if !s.roster.Contains(student) {
		err := &ValidationError{Field: "student", Value: student, Err: ErrUnknownStudent}
		logging.LogRejected(s.id, "select_student", err)
		return err
	}

	s.state.SelectedStudent = student
	logging.LogMutation(s.id, "select_student", zap.String("selected_student", student))
	s.notify()
	return nil
}

// EditName replaces the name with text. When a length limit is configured
// the text is cut to that many runes.
func (s *Screen) EditName(text string) {
	if s.closed {
		return
	}
	if limit := s.settings.maxNameLength; limit > 0 && utf8.RuneCountInString(text) > limit {
		text = string([]rune(text)[:limit])
	}

	s.state.Name = text
	logging.LogMutation(s.id, "edit_name", zap.Int("name_length", utf8.RuneCountInString(text)))
	s.notify()
}

// TapButton increments the tap count by one
func (s *Screen) TapButton() {
	if s.closed {
		return
	}

	s.state.TapCount++
	logging.LogMutation(s.id, "tap_button", zap.Int("tap_count", s.state.TapCount))
	s.notify()
}

// Render projects the current state to a view tree
func (s *Screen) Render() view.Node {
	return view.NewNavigation(s.settings.title, s.settings.displayMode,
		view.NewForm(
			view.NewPicker(PickerLabel, s.roster.names, s.state.SelectedStudent),
			view.NewTextField(NamePlaceholder, s.state.Name),
			view.NewText(NameLabel(s.state.Name)),
			view.NewButton(TapLabel(s.state.TapCount)),
			view.NewSection("", view.NewText(GreetingText)),
		),
	)
}

// Close tears the screen down. The renderer is detached and later
// mutations are ignored.
func (s *Screen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.renderer = nil
	logging.LogScreenEvent(s.id, "closed",
		zap.Int("tap_count", s.state.TapCount),
		zap.Int("renders", s.renders),
	)
}

// Closed reports whether Close has been called
func (s *Screen) Closed() bool {
	return s.closed
}

func (s *Screen) notify() {
	if s.renderer == nil {
		return
	}
	tree := s.Render()
	s.renders++
	s.renderer(tree)
	logging.LogRender(s.id, s.renders, view.Count(tree))
}
