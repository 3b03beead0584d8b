package widgets

import "github.com/palantir-ui/palantir/pkg/core"

// Button is a single-child container with an optional click handler.
//
// The child is usually a Label:
//
//	widgets.NewButton().
//	    SetBackgroundColor(graphics.ColorRed).
//	    SetItem(widgets.NewLabel("Submit")).
//	    OnClick(handleSubmit)
//
// The button only records the handler. An event dispatcher (see package
// events) invokes it once per activation.
type Button struct {
	core.Styler[*Button]
	onClick func()
}

// NewButton creates an empty button with the default style.
func NewButton() *Button {
	b := &Button{}
	b.Bind(b)
	return b
}

// Item returns the child, or nil if none has been set.
func (b *Button) Item() core.View {
	return b.Fragment().Child(0)
}

// SetItem makes child the only child, dropping any previous one.
func (b *Button) SetItem(child core.View) *Button {
	b.Fragment().Replace(child)
	return b
}

// OnClick installs handler, replacing any handler already set. A nil handler
// empties the slot.
func (b *Button) OnClick(handler func()) *Button {
	b.onClick = handler
	return b
}

// ClickHandler returns the installed handler and whether one is set.
func (b *Button) ClickHandler() (func(), bool) {
	return b.onClick, b.onClick != nil
}

// HasClickHandler reports whether a handler is installed.
func (b *Button) HasClickHandler() bool {
	return b.onClick != nil
}
