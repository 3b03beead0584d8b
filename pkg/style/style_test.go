package style_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/palantir-ui/palantir/pkg/geometry"
	"github.com/palantir-ui/palantir/pkg/graphics"
	"github.com/palantir-ui/palantir/pkg/style"
)

func TestDefault(t *testing.T) {
	s := style.Default()

	for name, sz := range map[string]geometry.Size{
		"Width": s.Width, "Height": s.Height,
		"MinWidth": s.MinWidth, "MinHeight": s.MinHeight,
		"MaxWidth": s.MaxWidth, "MaxHeight": s.MaxHeight,
	} {
		if !sz.IsAuto() {
			t.Errorf("%s = %v, want Auto", name, sz)
		}
	}
	if s.VAlign != geometry.AlignStretch || s.HAlign != geometry.AlignStretch {
		t.Errorf("align = %v/%v, want stretch", s.VAlign, s.HAlign)
	}
	if !s.Padding.Equal(geometry.EdgesAll(2.0)) || !s.Margin.Equal(geometry.EdgesAll(2.0)) {
		t.Errorf("padding/margin = %v/%v, want all(2)", s.Padding, s.Margin)
	}
	if s.FontSize != 12 {
		t.Errorf("FontSize = %d, want 12", s.FontSize)
	}
	if s.Color != graphics.ColorWhite || s.BackgroundColor != graphics.ColorTransparent {
		t.Errorf("colors = %v/%v", s.Color, s.BackgroundColor)
	}
	if !s.BorderWidth.Equal(geometry.EdgesAll(0)) || s.BorderColor != graphics.ColorWhite || s.BorderRadius != 0 {
		t.Errorf("border = %v %v %v", s.BorderWidth, s.BorderColor, s.BorderRadius)
	}
}

func TestEqual(t *testing.T) {
	a, b := style.Default(), style.Default()
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("defaults differ (-a +b):\n%s", diff)
	}

	b.FontSize = 18
	if a.Equal(b) {
		t.Error("styles with different font size should differ")
	}
	if got := a.Diff(b); len(got) != 1 || got[0] != "FontSize" {
		t.Errorf("Diff() = %v, want [FontSize]", got)
	}
}

func TestEqualNaN(t *testing.T) {
	a := style.Default()
	a.BorderRadius = float32(math.NaN())
	a.Width = geometry.Fixed(math.NaN())
	a.Padding = geometry.EdgesAll(math.NaN())

	b := a
	if !a.Equal(a) {
		t.Error("style holding NaN should equal itself")
	}
	if !a.Equal(b) || !b.Equal(a) {
		t.Error("copies holding NaN should be equal both ways")
	}

	c := style.Default()
	want := []string{"Width", "Padding", "BorderRadius"}
	if diff := cmp.Diff(want, a.Diff(c)); diff != "" {
		t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
	}
}

func TestField(t *testing.T) {
	s := style.Default()
	for _, name := range style.Default().Diff(style.Style{}) {
		if s.Field(name) == nil {
			t.Errorf("Field(%q) = nil", name)
		}
	}
	if s.Field("Nope") != nil {
		t.Error("unknown field should be nil")
	}
}
