package core

import "github.com/palantir-ui/palantir/pkg/style"

// Fragment is the record every view embeds: its style, an optional
// identifier and the children it owns.
//
// ID is a user-provided identifier for event routing and test lookup. The
// empty string means the view has no identifier.
//
// Children are kept in insertion order. Nil views are never stored, so tree
// walkers do not need to check for them.
//
// The Fragment does not know its owner's role. Changing the children of a
// container directly bypasses the container's own rules: appending a second
// child to a Button leaves Item reporting only the first, and children
// appended to a Grid this way have no placement. Prefer the container's
// setters (SetItem, AddItem).
type Fragment struct {
	Style    style.Style
	ID       string
	children []View
}

// NewFragment returns a Fragment with the default style and no children.
func NewFragment() Fragment {
	return Fragment{Style: style.Default()}
}

// Children returns the children in insertion order. Elements may be replaced
// in place; use Append, Replace and Clear to change the length.
func (f *Fragment) Children() []View {
	return f.children
}

// Len returns the number of children.
func (f *Fragment) Len() int {
	return len(f.children)
}

// Child returns the i-th child, or nil if i is out of range.
func (f *Fragment) Child(i int) View {
	if i < 0 || i >= len(f.children) {
		return nil
	}
	return f.children[i]
}

// Append adds v after the existing children. A nil v is ignored.
func (f *Fragment) Append(v View) {
	if v == nil {
		return
	}
	f.children = append(f.children, v)
}

// Replace makes v the only child, dropping any previous children. A nil v
// clears the children.
func (f *Fragment) Replace(v View) {
	f.Clear()
	f.Append(v)
}

// Clear drops every child. Slices returned earlier by Children keep their
// contents.
func (f *Fragment) Clear() {
	f.children = nil
}
