// Package view describes screens as plain trees of typed node descriptors.
//
// A Node tree is built by a pure function of screen state and carries no
// behaviour of its own. Hosts (the Bubble Tea program in internal/tui, the
// run-once printer in internal/ui) are responsible for turning a tree into
// something visible.
//
// # Container Limits
//
// Grouping containers hold at most MaxChildren direct children. Every
// container builder runs its children through Group, which folds longer
// lists into nested Group nodes:
//
//	form := view.NewForm(rows...) // never more than 10 direct children
//
// # Encoding
//
// Trees encode to JSON and YAML through struct tags, and to a plain indented
// outline through Outline:
//
//	Navigation "SwiftUI" (inline)
//	  Form
//	    Picker "Select your student" [Harry] Hermione Ron
//	    TextField "Enter your name" = ""
//	    ...
package view
