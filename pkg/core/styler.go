package core

import (
	"github.com/palantir-ui/palantir/pkg/geometry"
	"github.com/palantir-ui/palantir/pkg/graphics"
	"github.com/palantir-ui/palantir/pkg/style"
)

// Styler gives a concrete view its Fragment and the chainable style setters.
//
// Embed Styler parameterized by the view's own pointer type and bind it in
// the constructor:
//
//	type Badge struct {
//	    core.Styler[*Badge]
//	}
//
//	func NewBadge() *Badge {
//	    b := &Badge{}
//	    b.Bind(b)
//	    return b
//	}
//
// Every setter changes one style field in place and returns the bound view,
// so calls chain and the last write to a field wins:
//
//	NewBadge().SetPadding(geometry.EdgesAll(4)).SetFontSize(18)
//
// Setters never validate their arguments.
//
// The zero value of a view type embedding Styler is not ready for use: its
// fragment carries a zero style and its setters panic. Always create views
// through their constructors.
type Styler[T any] struct {
	frag  Fragment
	self  T
	bound bool
}

// Bind records the view returned by the setters and resets the fragment to
// the default style. Constructors call it once.
func (s *Styler[T]) Bind(self T) {
	s.frag = NewFragment()
	s.self = self
	s.bound = true
}

// Fragment implements View.
func (s *Styler[T]) Fragment() *Fragment {
	return &s.frag
}

// Bound reports whether Bind has been called.
func (s *Styler[T]) Bound() bool {
	return s.bound
}

// view returns the bound view, panicking when Bind was never called.
func (s *Styler[T]) view() T {
	if !s.bound {
		panic(unboundMessage)
	}
	return s.self
}

const unboundMessage = "core: setter called on a view that was not created by its constructor (Styler.Bind missing)"

// Style returns a copy of the current style.
func (s *Styler[T]) Style() style.Style {
	return s.Fragment().Style
}

// ID returns the view identifier, empty when unset.
func (s *Styler[T]) ID() string {
	return s.frag.ID
}

// SetID sets the identifier used for event routing and lookup.
func (s *Styler[T]) SetID(id string) T {
	self := s.view()
	s.frag.ID = id
	return self
}

// SetStyle replaces the whole style record.
func (s *Styler[T]) SetStyle(st style.Style) T {
	self := s.view()
	s.frag.Style = st
	return self
}

// SetWidth sets the preferred width. Plain numbers go through
// geometry.Fixed:
//
//	v.SetWidth(geometry.Fixed(100)).SetHeight(geometry.Auto())
func (s *Styler[T]) SetWidth(v geometry.Size) T {
	self := s.view()
	s.frag.Style.Width = v
	return self
}

// SetHeight sets the preferred height, geometry.Auto() or geometry.Fixed(n).
func (s *Styler[T]) SetHeight(v geometry.Size) T {
	self := s.view()
	s.frag.Style.Height = v
	return self
}

// SetMinWidth sets the lower width bound, geometry.Auto() or geometry.Fixed(n).
func (s *Styler[T]) SetMinWidth(v geometry.Size) T {
	self := s.view()
	s.frag.Style.MinWidth = v
	return self
}

// SetMinHeight sets the lower height bound, geometry.Auto() or geometry.Fixed(n).
func (s *Styler[T]) SetMinHeight(v geometry.Size) T {
	self := s.view()
	s.frag.Style.MinHeight = v
	return self
}

// SetMaxWidth sets the upper width bound, geometry.Auto() or geometry.Fixed(n).
func (s *Styler[T]) SetMaxWidth(v geometry.Size) T {
	self := s.view()
	s.frag.Style.MaxWidth = v
	return self
}

// SetMaxHeight sets the upper height bound, geometry.Auto() or geometry.Fixed(n).
func (s *Styler[T]) SetMaxHeight(v geometry.Size) T {
	self := s.view()
	s.frag.Style.MaxHeight = v
	return self
}

// SetPadding sets the inner spacing.
func (s *Styler[T]) SetPadding(e geometry.Edges) T {
	self := s.view()
	s.frag.Style.Padding = e
	return self
}

// SetMargin sets the outer spacing.
func (s *Styler[T]) SetMargin(e geometry.Edges) T {
	self := s.view()
	s.frag.Style.Margin = e
	return self
}

// SetBorderWidth sets the border thickness per side.
func (s *Styler[T]) SetBorderWidth(e geometry.Edges) T {
	self := s.view()
	s.frag.Style.BorderWidth = e
	return self
}

// SetFontSize sets the font size.
func (s *Styler[T]) SetFontSize(size uint32) T {
	self := s.view()
	s.frag.Style.FontSize = size
	return self
}

// SetFontColor sets the foreground color.
func (s *Styler[T]) SetFontColor(c graphics.Color) T {
	self := s.view()
	s.frag.Style.Color = c
	return self
}

// SetBackgroundColor sets the fill color.
func (s *Styler[T]) SetBackgroundColor(c graphics.Color) T {
	self := s.view()
	s.frag.Style.BackgroundColor = c
	return self
}

// SetBorderColor sets the border color.
func (s *Styler[T]) SetBorderColor(c graphics.Color) T {
	self := s.view()
	s.frag.Style.BorderColor = c
	return self
}

// SetBorderRadius sets the corner radius.
func (s *Styler[T]) SetBorderRadius(r float32) T {
	self := s.view()
	s.frag.Style.BorderRadius = r
	return self
}

// SetVAlign sets the vertical alignment.
func (s *Styler[T]) SetVAlign(a geometry.Align) T {
	self := s.view()
	s.frag.Style.VAlign = a
	return self
}

// SetHAlign sets the horizontal alignment.
func (s *Styler[T]) SetHAlign(a geometry.Align) T {
	self := s.view()
	s.frag.Style.HAlign = a
	return self
}
