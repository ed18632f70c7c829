package form

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/wesplit/wesplit/internal/view"
)

func newTestScreen(t *testing.T, opts ...Option) *Screen {
	t.Helper()
	s, err := NewScreen(opts...)
	if err != nil {
		t.Fatalf("NewScreen() error = %v", err)
	}
	return s
}

func labelOf(t *testing.T, tree view.Node, kind view.Kind) view.Node {
	t.Helper()
	n, ok := view.Find(tree, kind)
	if !ok {
		t.Fatalf("no %s node in tree:\n%s", kind, view.Outline(tree))
	}
	return n
}

// nameLabel returns the first Text node, which displays the name
func nameLabel(t *testing.T, tree view.Node) string {
	return labelOf(t, tree, view.KindText).Value
}

func TestInitialState(t *testing.T) {
	s := newTestScreen(t)

	want := State{SelectedStudent: "Harry", Name: "", TapCount: 0}
	if got := s.State(); got != want {
		t.Errorf("State() = %+v, want %+v", got, want)
	}

	tree := s.Render()
	if tree.Kind != view.KindNavigation || tree.Title != "SwiftUI" || tree.DisplayMode != view.DisplayInline {
		t.Errorf("root = %s %q %s, want navigation \"SwiftUI\" inline", tree.Kind, tree.Title, tree.DisplayMode)
	}

	picker := labelOf(t, tree, view.KindPicker)
	if picker.Label != PickerLabel || picker.Selected != "Harry" {
		t.Errorf("picker = %q selected %q", picker.Label, picker.Selected)
	}
	if strings.Join(picker.Options, ",") != "Harry,Hermione,Ron" {
		t.Errorf("picker options = %v", picker.Options)
	}

	field := labelOf(t, tree, view.KindTextField)
	if field.Placeholder != NamePlaceholder || field.Value != "" {
		t.Errorf("text field = %q value %q", field.Placeholder, field.Value)
	}

	if got := nameLabel(t, tree); got != "Your name is " {
		t.Errorf("name label = %q, want %q", got, "Your name is ")
	}
	if got := labelOf(t, tree, view.KindButton).Label; got != "Tap Count: 0" {
		t.Errorf("button label = %q, want %q", got, "Tap Count: 0")
	}

	section := labelOf(t, tree, view.KindSection)
	if len(section.Children) != 1 || section.Children[0].Value != GreetingText {
		t.Errorf("section = %+v, want single %q text", section, GreetingText)
	}
}

func TestSelectStudent(t *testing.T) {
	for _, student := range DefaultStudents() {
		t.Run(student, func(t *testing.T) {
			s := newTestScreen(t)
			s.EditName("Neville")
			s.TapButton()

			if err := s.SelectStudent(student); err != nil {
				t.Fatalf("SelectStudent(%q) error = %v", student, err)
			}

			want := State{SelectedStudent: student, Name: "Neville", TapCount: 1}
			if got := s.State(); got != want {
				t.Errorf("State() = %+v, want %+v", got, want)
			}
			if got := labelOf(t, s.Render(), view.KindPicker).Selected; got != student {
				t.Errorf("picker selected = %q, want %q", got, student)
			}
		})
	}
}

func TestSelectUnknownStudent(t *testing.T) {
	s := newTestScreen(t)
	before := s.State()

	err := s.SelectStudent("Draco")
	if !errors.Is(err, ErrUnknownStudent) {
		t.Fatalf("SelectStudent(\"Draco\") error = %v, want ErrUnknownStudent", err)
	}
	if !IsValidationError(err) {
		t.Errorf("error %T is not a ValidationError", err)
	}
	if s.State() != before {
		t.Errorf("state changed after rejected selection: %+v", s.State())
	}
}

func TestEditNameBinding(t *testing.T) {
	s := newTestScreen(t)

	for _, text := range []string{"H", "Harry Potter", "  spaced  ", "日本語", "line\nbreak", ""} {
		s.EditName(text)
		if got := s.State().Name; got != text {
			t.Errorf("Name = %q, want %q", got, text)
		}
		if got := nameLabel(t, s.Render()); got != "Your name is "+text {
			t.Errorf("label = %q, want %q", got, "Your name is "+text)
		}
		if got := labelOf(t, s.Render(), view.KindTextField).Value; got != text {
			t.Errorf("field value = %q, want %q", got, text)
		}
	}
}

func TestEditNameLengthLimit(t *testing.T) {
	s := newTestScreen(t, WithMaxNameLength(3))

	s.EditName("Hermione")
	if got := s.State().Name; got != "Her" {
		t.Errorf("Name = %q, want %q", got, "Her")
	}

	s.EditName("日本語です")
	if got := s.State().Name; got != "日本語" {
		t.Errorf("Name = %q, want %q", got, "日本語")
	}
}

func TestTapButton(t *testing.T) {
	for _, n := range []int{1, 2, 10, 250} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			s := newTestScreen(t)
			prev := 0
			for i := 0; i < n; i++ {
				s.TapButton()
				if s.State().TapCount != prev+1 {
					t.Fatalf("tap %d: count = %d, want %d", i+1, s.State().TapCount, prev+1)
				}
				prev = s.State().TapCount
			}

			want := State{SelectedStudent: "Harry", Name: "", TapCount: n}
			if got := s.State(); got != want {
				t.Errorf("State() = %+v, want %+v", got, want)
			}
			label := labelOf(t, s.Render(), view.KindButton).Label
			if !strings.Contains(label, strconv.Itoa(n)) {
				t.Errorf("button label %q does not contain %d", label, n)
			}
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	s := newTestScreen(t)
	s.EditName("Luna")
	_ = s.SelectStudent("Ron")
	s.TapButton()

	first, second := s.Render(), s.Render()
	if !view.Equal(first, second) {
		t.Errorf("renders differ:\n%s\n%s", view.Outline(first), view.Outline(second))
	}

	s.TapButton()
	if view.Equal(first, s.Render()) {
		t.Error("render unchanged after mutation")
	}
}

func TestIsolation(t *testing.T) {
	s := newTestScreen(t)
	_ = s.SelectStudent("Hermione")
	s.EditName("Ginny")

	s.TapButton()
	if st := s.State(); st.Name != "Ginny" || st.SelectedStudent != "Hermione" {
		t.Errorf("TapButton changed other cells: %+v", st)
	}

	s.EditName("")
	if st := s.State(); st.TapCount != 1 || st.SelectedStudent != "Hermione" {
		t.Errorf("EditName changed other cells: %+v", st)
	}

	_ = s.SelectStudent("Ron")
	if st := s.State(); st.TapCount != 1 || st.Name != "" {
		t.Errorf("SelectStudent changed other cells: %+v", st)
	}
}

func TestSubscribeNotifiesOncePerMutation(t *testing.T) {
	s := newTestScreen(t)

	var trees []view.Node
	s.Subscribe(func(tree view.Node) {
		trees = append(trees, tree)
	})
	if len(trees) != 1 {
		t.Fatalf("Subscribe delivered %d trees, want 1", len(trees))
	}

	s.TapButton()
	s.EditName("Ron")
	_ = s.SelectStudent("Ron")
	_ = s.SelectStudent("nobody")

	if len(trees) != 4 {
		t.Fatalf("renderer notified %d times, want 4", len(trees))
	}
	if s.Renders() != 4 {
		t.Errorf("Renders() = %d, want 4", s.Renders())
	}

	last := trees[len(trees)-1]
	if !view.Equal(last, s.Render()) {
		t.Error("last delivered tree does not match current state")
	}
	if got := labelOf(t, trees[1], view.KindButton).Label; got != "Tap Count: 1" {
		t.Errorf("tree after tap shows %q", got)
	}
}

func TestSubscribeReplaces(t *testing.T) {
	s := newTestScreen(t)

	first, second := 0, 0
	s.Subscribe(func(view.Node) { first++ })
	s.Subscribe(func(view.Node) { second++ })
	s.TapButton()

	if first != 1 {
		t.Errorf("replaced renderer called %d times, want 1", first)
	}
	if second != 2 {
		t.Errorf("current renderer called %d times, want 2", second)
	}
}

func TestClose(t *testing.T) {
	s := newTestScreen(t)
	calls := 0
	s.Subscribe(func(view.Node) { calls++ })

	s.Close()
	s.TapButton()
	s.EditName("x")
	if err := s.SelectStudent("Ron"); !errors.Is(err, ErrScreenClosed) {
		t.Errorf("SelectStudent after Close error = %v, want ErrScreenClosed", err)
	}

	if !s.Closed() {
		t.Error("Closed() = false after Close")
	}
	if calls != 1 {
		t.Errorf("renderer called %d times, want 1", calls)
	}
	if s.State() != (State{SelectedStudent: "Harry"}) {
		t.Errorf("state changed after Close: %+v", s.State())
	}
}

func TestScreenIDsAreUnique(t *testing.T) {
	a, b := newTestScreen(t), newTestScreen(t)
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("IDs = %q, %q; want distinct non-empty", a.ID(), b.ID())
	}
}

func TestNewScreenOptions(t *testing.T) {
	s := newTestScreen(t,
		WithRoster([]string{"Luna", "Neville"}),
		WithTitle("Roll Call"),
		WithTitleDisplayMode(view.DisplayLarge),
	)

	if got := s.State().SelectedStudent; got != "Luna" {
		t.Errorf("SelectedStudent = %q, want first roster entry", got)
	}
	tree := s.Render()
	if tree.Title != "Roll Call" || tree.DisplayMode != view.DisplayLarge {
		t.Errorf("navigation = %q %s", tree.Title, tree.DisplayMode)
	}
}

func TestNewScreenRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{"empty roster", []Option{WithRoster(nil)}, ErrEmptyRoster},
		{"duplicate", []Option{WithRoster([]string{"Ron", "Ron"})}, ErrDuplicateStudent},
		{"blank", []Option{WithRoster([]string{"Ron", " "})}, ErrBlankStudent},
		{"negative length", []Option{WithMaxNameLength(-1)}, ErrNegativeLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScreen(tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewScreen() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := NewScreen(WithTitleDisplayMode("sideways")); !IsValidationError(err) {
		t.Errorf("bad display mode error = %v, want ValidationError", err)
	}
}
