// Package form implements the student form screen: a student picker, a name
// field, a tap counter and a static greeting section.
//
// # State
//
// A Screen owns three state cells and one fixed roster:
//   - SelectedStudent: always a member of the roster, starts at the first entry
//   - Name: free text, starts empty
//   - TapCount: starts at zero and only ever grows by one
//
// # Rendering
//
// Render is a pure function of the roster, the state cells and the
// presentation settings. It returns a view.Node tree; calling it twice without
// an intervening mutation yields structurally equal trees.
//
// A single renderer may subscribe to a screen. Every mutation synchronously
// re-renders and hands the new tree to the renderer before returning, so the
// subscriber never observes state that its last tree does not reflect:
//
//	screen, _ := form.NewScreen()
//	screen.Subscribe(func(tree view.Node) {
//	    fmt.Print(view.Outline(tree))
//	})
//	screen.TapButton() // prints the tree with "Tap Count: 1"
//
// # Thread Safety
//
// A Screen is not safe for concurrent use. Hosts deliver one input at a time
// from a single goroutine (Bubble Tea's update loop does exactly this).
package form
