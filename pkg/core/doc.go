// Package core defines the view model: the View capability, the Fragment
// record every view owns, and the builder setters shared by all views.
//
// # Views and Fragments
//
// A view is any value implementing [View]. Each view embeds one [Fragment]
// holding its style, an optional identifier and the children it owns.
// Trees are built bottom-up: leaves are created and styled, then handed to a
// container, which takes them into its Fragment. Dropping the root releases
// the whole tree.
//
// # Structural Roles
//
// Containers come in two shapes:
//
//   - [ItemView] holds at most one child (a button wrapping its label).
//   - [ItemsView] holds an ordered list of children (stacks and grids).
//
// Views implementing neither are leaves. [KindOf] classifies any view by these
// capabilities, so third-party views take part in layout without being known
// to this package. Layout engines usually type-switch on the concrete views in
// package widgets and fall back to KindOf for the rest.
//
// # Builder Setters
//
// [Styler] supplies the setters once for every view. A concrete view embeds
// Styler parameterized by its own pointer type, so each setter returns the
// concrete view and chains:
//
//	widgets.NewLabel("Hello").
//	    SetFontSize(18).
//	    SetFontColor(graphics.ColorBlue)
//
// Setters mutate in place and return the same pointer. The last write to a
// field wins.
//
// # Traversal
//
// [Walk] visits a tree depth-first in insertion order, and [FindByID] locates
// a view by its Fragment ID. Neither mutates the tree.
//
// Nothing in this package returns errors or validates values. Trees are built
// on one goroutine and are not safe for concurrent mutation.
package core
