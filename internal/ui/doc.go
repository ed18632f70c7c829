// Package ui provides run-once terminal output for the wesplit CLI.
//
// Unlike the interactive screen in internal/tui, these components render
// once and exit. Subcommands use a Printer to write a command header, a
// static rendering of a view tree, and a success or error box:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Render", "wesplit render", map[string]string{"Taps": "3"})
//	p.Print(ui.RenderTree(tree, p.Width()))
//	p.PrintSuccess("Rendered", map[string]string{"Nodes": "8"})
//
// # Logging Integration
//
// Logging is controlled by WESPLIT_LOG_LEVEL and goes to stderr, so the
// curated output on stdout stays clean.
package ui
