package widgets

import "github.com/palantir-ui/palantir/pkg/core"

// VStack stacks its children vertically in insertion order.
type VStack struct {
	core.Styler[*VStack]
}

// NewVStack creates an empty stack with the default style.
func NewVStack() *VStack {
	s := &VStack{}
	s.Bind(s)
	return s
}

// VStackOf creates a stack holding children in order.
func VStackOf(children ...core.View) *VStack {
	s := NewVStack()
	for _, c := range children {
		s.AddItem(c)
	}
	return s
}

// Items returns the children in insertion order.
func (s *VStack) Items() []core.View {
	return s.Fragment().Children()
}

// AddItem appends child. A nil child is ignored.
func (s *VStack) AddItem(child core.View) *VStack {
	s.Fragment().Append(child)
	return s
}
