package core

// View is any node of the UI tree. It exposes the Fragment it owns; callers
// may read and change the style, id and children through it.
type View interface {
	Fragment() *Fragment
}

// ItemView is a container holding at most one child.
type ItemView interface {
	View
	// Item returns the child, or nil when none has been set.
	Item() View
}

// ItemsView is a container holding an ordered sequence of children.
type ItemsView interface {
	View
	// Items returns the children in insertion order.
	Items() []View
}

// Clickable is a view that carries a click handler for the event dispatcher.
type Clickable interface {
	View
	// ClickHandler returns the installed handler and whether one is set.
	ClickHandler() (func(), bool)
}

// Kind is the structural role of a view.
type Kind uint8

const (
	// KindLeaf views have no children.
	KindLeaf Kind = iota
	// KindItem views implement ItemView.
	KindItem
	// KindItems views implement ItemsView.
	KindItems
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindItem:
		return "item"
	case KindItems:
		return "items"
	default:
		return "unknown"
	}
}

// KindOf reports the structural role of v from the capabilities it
// implements. Views defined outside this module are classified the same way.
func KindOf(v View) Kind {
	switch v.(type) {
	case ItemsView:
		return KindItems
	case ItemView:
		return KindItem
	default:
		return KindLeaf
	}
}
