package view

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies the type of a node in a view tree
type Kind string

const (
	KindNavigation Kind = "navigation"
	KindForm       Kind = "form"
	KindSection    Kind = "section"
	KindGroup      Kind = "group"
	KindPicker     Kind = "picker"
	KindTextField  Kind = "text_field"
	KindText       Kind = "text"
	KindButton     Kind = "button"
)

// IsContainer reports whether nodes of this kind hold children
func (k Kind) IsContainer() bool {
	switch k {
	case KindNavigation, KindForm, KindSection, KindGroup:
		return true
	}
	return false
}

// DisplayMode controls how a navigation title is presented by the host
type DisplayMode string

const (
	DisplayInline    DisplayMode = "inline"
	DisplayLarge     DisplayMode = "large"
	DisplayAutomatic DisplayMode = "automatic"
)

// ParseDisplayMode converts a configuration string to a DisplayMode.
// The empty string maps to DisplayAutomatic.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch DisplayMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", DisplayAutomatic:
		return DisplayAutomatic, nil
	case DisplayInline:
		return DisplayInline, nil
	case DisplayLarge:
		return DisplayLarge, nil
	}
	return "", fmt.Errorf("unknown title display mode %q (want inline, large or automatic)", s)
}

// Node is a single descriptor in a view tree.
// Only the fields relevant to Kind are populated.
type Node struct {
	Kind        Kind        `json:"kind" yaml:"kind"`
	Title       string      `json:"title,omitempty" yaml:"title,omitempty"`
	DisplayMode DisplayMode `json:"display_mode,omitempty" yaml:"display_mode,omitempty"`
	Label       string      `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string      `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Value       string      `json:"value,omitempty" yaml:"value,omitempty"`
	Options     []string    `json:"options,omitempty" yaml:"options,omitempty"`
	Selected    string      `json:"selected,omitempty" yaml:"selected,omitempty"`
	Children    []Node      `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewNavigation wraps content in a navigation container with a title bar
func NewNavigation(title string, mode DisplayMode, children ...Node) Node {
	return Node{Kind: KindNavigation, Title: title, DisplayMode: mode, Children: Group(children)}
}

// NewForm creates a form container
func NewForm(children ...Node) Node {
	return Node{Kind: KindForm, Children: Group(children)}
}

// NewSection creates a titled (or untitled) section inside a form
func NewSection(title string, children ...Node) Node {
	return Node{Kind: KindSection, Title: title, Children: Group(children)}
}

// NewPicker creates a select-one control over options with selected highlighted
func NewPicker(label string, options []string, selected string) Node {
	opts := make([]string, len(options))
	copy(opts, options)
	return Node{Kind: KindPicker, Label: label, Options: opts, Selected: selected}
}

// NewTextField creates a free-text input showing value
func NewTextField(placeholder, value string) Node {
	return Node{Kind: KindTextField, Placeholder: placeholder, Value: value}
}

// NewText creates a static text label
func NewText(text string) Node {
	return Node{Kind: KindText, Value: text}
}

// NewButton creates a button with the given label
func NewButton(label string) Node {
	return Node{Kind: KindButton, Label: label}
}

// Equal reports whether two trees are structurally identical
func Equal(a, b Node) bool {
	if a.Kind != b.Kind ||
		a.Title != b.Title ||
		a.DisplayMode != b.DisplayMode ||
		a.Label != b.Label ||
		a.Placeholder != b.Placeholder ||
		a.Value != b.Value ||
		a.Selected != b.Selected ||
		len(a.Options) != len(b.Options) ||
		len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Options {
		if a.Options[i] != b.Options[i] {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// Walk visits n and its descendants depth-first.
// Returning false from fn stops descent into that node's children.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}

// Find returns the first node of the given kind in depth-first order
func Find(n Node, kind Kind) (Node, bool) {
	var found Node
	ok := false
	Walk(n, func(c Node, _ int) bool {
		if ok {
			return false
		}
		if c.Kind == kind {
			found, ok = c, true
			return false
		}
		return true
	})
	return found, ok
}

// Count returns the number of nodes in the tree, including n
func Count(n Node) int {
	total := 0
	Walk(n, func(Node, int) bool {
		total++
		return true
	})
	return total
}

// Leaves returns the non-container nodes in display order, looking through
// Group wrappers. Hosts use this to lay out rows.
func Leaves(n Node) []Node {
	var out []Node
	Walk(n, func(c Node, _ int) bool {
		if !c.Kind.IsContainer() {
			out = append(out, c)
			return false
		}
		return true
	})
	return out
}

// Outline renders the tree as an indented plain-text outline
func Outline(n Node) string {
	var b strings.Builder
	Walk(n, func(c Node, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(describe(c))
		b.WriteString("\n")
		return true
	})
	return b.String()
}

func describe(n Node) string {
	switch n.Kind {
	case KindNavigation:
		return fmt.Sprintf("Navigation %q (%s)", n.Title, n.DisplayMode)
	case KindForm:
		return "Form"
	case KindSection:
		if n.Title != "" {
			return fmt.Sprintf("Section %q", n.Title)
		}
		return "Section"
	case KindGroup:
		return "Group"
	case KindPicker:
		opts := make([]string, len(n.Options))
		for i, o := range n.Options {
			if o == n.Selected {
				opts[i] = "[" + o + "]"
			} else {
				opts[i] = o
			}
		}
		return fmt.Sprintf("Picker %q %s", n.Label, strings.Join(opts, " "))
	case KindTextField:
		return fmt.Sprintf("TextField %q = %q", n.Placeholder, n.Value)
	case KindText:
		return fmt.Sprintf("Text %q", n.Value)
	case KindButton:
		return fmt.Sprintf("Button %q", n.Label)
	default:
		return string(n.Kind)
	}
}

// EncodeJSON returns the tree as indented JSON
func EncodeJSON(n Node) ([]byte, error) {
	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal view tree: %w", err)
	}
	return data, nil
}

// EncodeYAML returns the tree as YAML
func EncodeYAML(n Node) ([]byte, error) {
	data, err := yaml.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal view tree: %w", err)
	}
	return data, nil
}
