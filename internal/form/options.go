package form

import (
	"strconv"

	"github.com/wesplit/wesplit/internal/view"
)

// Option configures a Screen at construction
type Option func(*settings)

type settings struct {
	students      []string
	title         string
	displayMode   view.DisplayMode
	maxNameLength int
}

func defaultSettings() settings {
	return settings{
		students:    DefaultStudents(),
		title:       DefaultTitle,
		displayMode: view.DisplayInline,
	}
}

func (s settings) validate() error {
	if _, err := view.ParseDisplayMode(string(s.displayMode)); err != nil {
		return &ValidationError{Field: "title display mode", Value: string(s.displayMode), Err: err}
	}
	if s.maxNameLength < 0 {
		return &ValidationError{Field: "max name length", Value: strconv.Itoa(s.maxNameLength), Err: ErrNegativeLength}
	}
	return ValidateRoster(s.students)
}

// WithRoster replaces the default roster. The slice is copied.
func WithRoster(students []string) Option {
	return func(s *settings) {
		s.students = append([]string(nil), students...)
	}
}

// WithTitle sets the navigation bar title
func WithTitle(title string) Option {
	return func(s *settings) {
		s.title = title
	}
}

// WithTitleDisplayMode sets how the host presents the title
func WithTitleDisplayMode(mode view.DisplayMode) Option {
	return func(s *settings) {
		s.displayMode = mode
	}
}

// WithMaxNameLength caps the name at n runes. Zero means unlimited.
func WithMaxNameLength(n int) Option {
	return func(s *settings) {
		s.maxNameLength = n
	}
}
