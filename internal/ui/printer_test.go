package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/wesplit/wesplit/internal/view"
)

func TestRenderHeaderParamsSorted(t *testing.T) {
	out := RenderHeader("Render", "wesplit render", map[string]string{
		"Taps":   "3",
		"Format": "styled",
	}, 80)

	if !strings.Contains(out, "RENDER") || !strings.Contains(out, "wesplit render") {
		t.Errorf("header missing title or command:\n%s", out)
	}
	if strings.Index(out, "Format:") > strings.Index(out, "Taps:") {
		t.Errorf("params not sorted:\n%s", out)
	}
}

func TestPrinterBoxes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(80)

	p.PrintSuccess("Config written", map[string]string{"Path": "/tmp/config.yaml"})
	p.PrintError("Render failed", errors.New("student is not on the roster"), []string{"Pick one of the listed students"})

	out := buf.String()
	for _, want := range []string{
		"SUCCESS",
		"Config written",
		"/tmp/config.yaml",
		"FAILED",
		"Error: student is not on the roster",
		"Pick one of the listed students",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestSetWidthClamps(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}).SetWidth(10)
	if p.Width() != MinTerminalWidth {
		t.Errorf("Width() = %d, want %d", p.Width(), MinTerminalWidth)
	}
}

func TestRenderTree(t *testing.T) {
	tree := view.NewNavigation("SwiftUI", view.DisplayInline,
		view.NewForm(
			view.NewPicker("Select your student", []string{"Harry", "Hermione", "Ron"}, "Ron"),
			view.NewTextField("Enter your name", ""),
			view.NewText("Your name is "),
			view.NewButton("Tap Count: 4"),
			view.NewSection("", view.NewText("Hello, world!")),
		),
	)

	out := RenderTree(tree, 80)
	for _, want := range []string{
		"SwiftUI",
		"(•) Ron",
		"( ) Harry",
		"[ Enter your name ]",
		"Your name is",
		"< Tap Count: 4 >",
		"  Hello, world!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderTree() missing %q\n%s", want, out)
		}
	}
}
