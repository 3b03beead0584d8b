// Package style defines the Style record attached to every view.
//
// A Style aggregates sizing, alignment, spacing, typography, fill and border
// properties. Views start with [Default] and are changed through the builder
// setters in package core. Nothing here validates values: negative sizes,
// NaN and oversized radii are stored as given and left to the layout engine.
package style

import (
	"github.com/palantir-ui/palantir/pkg/geometry"
	"github.com/palantir-ui/palantir/pkg/graphics"
)

// Style holds every visual and layout property of one view.
type Style struct {
	Width     geometry.Size
	Height    geometry.Size
	MinWidth  geometry.Size
	MinHeight geometry.Size
	MaxWidth  geometry.Size
	MaxHeight geometry.Size

	VAlign geometry.Align
	HAlign geometry.Align

	Padding geometry.Edges
	Margin  geometry.Edges

	FontSize uint32

	// Color is the foreground (text) color.
	Color           graphics.Color
	BackgroundColor graphics.Color

	BorderWidth  geometry.Edges
	BorderColor  graphics.Color
	BorderRadius float32
}

// Default padding, margin and font size.
const (
	DefaultSpacing  = 2.0
	DefaultFontSize = 12
)

// Default returns the style every view starts with.
func Default() Style {
	return Style{
		Width:     geometry.Auto(),
		Height:    geometry.Auto(),
		MinWidth:  geometry.Auto(),
		MinHeight: geometry.Auto(),
		MaxWidth:  geometry.Auto(),
		MaxHeight: geometry.Auto(),

		VAlign: geometry.AlignStretch,
		HAlign: geometry.AlignStretch,

		Padding: geometry.EdgesAll(DefaultSpacing),
		Margin:  geometry.EdgesAll(DefaultSpacing),

		FontSize: DefaultFontSize,

		Color:           graphics.ColorWhite,
		BackgroundColor: graphics.ColorTransparent,

		BorderWidth:  geometry.EdgesAll(0),
		BorderColor:  graphics.ColorWhite,
		BorderRadius: 0,
	}
}

// Equal compares every field. Float-bearing fields use geometry.FloatEqual,
// so styles holding NaN still equal themselves.
func (s Style) Equal(other Style) bool {
	return len(s.Diff(other)) == 0
}

// Diff returns the names of the fields that differ between s and other, in
// declaration order. It returns nil when the styles are equal.
func (s Style) Diff(other Style) []string {
	var out []string
	add := func(name string, equal bool) {
		if !equal {
			out = append(out, name)
		}
	}
	add("Width", s.Width.Equal(other.Width))
	add("Height", s.Height.Equal(other.Height))
	add("MinWidth", s.MinWidth.Equal(other.MinWidth))
	add("MinHeight", s.MinHeight.Equal(other.MinHeight))
	add("MaxWidth", s.MaxWidth.Equal(other.MaxWidth))
	add("MaxHeight", s.MaxHeight.Equal(other.MaxHeight))
	add("VAlign", s.VAlign == other.VAlign)
	add("HAlign", s.HAlign == other.HAlign)
	add("Padding", s.Padding.Equal(other.Padding))
	add("Margin", s.Margin.Equal(other.Margin))
	add("FontSize", s.FontSize == other.FontSize)
	add("Color", s.Color == other.Color)
	add("BackgroundColor", s.BackgroundColor == other.BackgroundColor)
	add("BorderWidth", s.BorderWidth.Equal(other.BorderWidth))
	add("BorderColor", s.BorderColor == other.BorderColor)
	add("BorderRadius", geometry.FloatEqual(s.BorderRadius, other.BorderRadius))
	return out
}

// Field returns a printable value for the field name reported by Diff.
// Unknown names yield nil.
func (s Style) Field(name string) any {
	switch name {
	case "Width":
		return s.Width
	case "Height":
		return s.Height
	case "MinWidth":
		return s.MinWidth
	case "MinHeight":
		return s.MinHeight
	case "MaxWidth":
		return s.MaxWidth
	case "MaxHeight":
		return s.MaxHeight
	case "VAlign":
		return s.VAlign
	case "HAlign":
		return s.HAlign
	case "Padding":
		return s.Padding
	case "Margin":
		return s.Margin
	case "FontSize":
		return s.FontSize
	case "Color":
		return s.Color
	case "BackgroundColor":
		return s.BackgroundColor
	case "BorderWidth":
		return s.BorderWidth
	case "BorderColor":
		return s.BorderColor
	case "BorderRadius":
		return s.BorderRadius
	}
	return nil
}
