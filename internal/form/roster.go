package form

import (
	"strconv"
	"strings"
)

// DefaultStudents returns the roster shown when none is configured
func DefaultStudents() []string {
	return []string{"Harry", "Hermione", "Ron"}
}

// Roster is an ordered, immutable list of unique student names.
// Selection identity is by value: two equal strings are the same student.
type Roster struct {
	names []string
}

// ValidateRoster checks that names is non-empty, has no blank entries and
// no duplicates.
func ValidateRoster(names []string) error {
	if len(names) == 0 {
		return &ValidationError{Field: "roster", Err: ErrEmptyRoster}
	}

	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return &ValidationError{Field: "roster entry " + strconv.Itoa(i+1), Value: name, Err: ErrBlankStudent}
		}
		if _, dup := seen[name]; dup {
			return &ValidationError{Field: "roster entry " + strconv.Itoa(i+1), Value: name, Err: ErrDuplicateStudent}
		}
		seen[name] = struct{}{}
	}
	return nil
}

// NewRoster validates and copies names into a Roster
func NewRoster(names []string) (Roster, error) {
	if err := ValidateRoster(names); err != nil {
		return Roster{}, err
	}
	copied := make([]string, len(names))
	copy(copied, names)
	return Roster{names: copied}, nil
}

// Names returns a copy of the roster in order
func (r Roster) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of students
func (r Roster) Len() int {
	return len(r.names)
}

// At returns the student at index i
func (r Roster) At(i int) string {
	return r.names[i]
}

// Index returns the position of name, or -1
func (r Roster) Index(name string) int {
	for i, n := range r.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Contains reports whether name is on the roster
func (r Roster) Contains(name string) bool {
	return r.Index(name) >= 0
}
