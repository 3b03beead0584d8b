package widgets

import "github.com/palantir-ui/palantir/pkg/core"

// Label is a leaf view displaying a line of text.
//
// The text lives on the Label itself; the Fragment ID stays free for routing:
//
//	widgets.NewLabel("Hello, world!").
//	    SetFontSize(18).
//	    SetFontColor(graphics.ColorBlue)
type Label struct {
	core.Styler[*Label]
	text string
}

// NewLabel creates a label showing text with the default style.
func NewLabel(text string) *Label {
	l := &Label{text: text}
	l.Bind(l)
	return l
}

// Text returns the displayed text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the displayed text.
func (l *Label) SetText(text string) *Label {
	l.text = text
	return l
}
