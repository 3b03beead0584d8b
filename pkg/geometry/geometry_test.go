package geometry_test

import (
	"math"
	"testing"

	"github.com/palantir-ui/palantir/pkg/geometry"
)

var nan32 = float32(math.NaN())

func TestFloatEqual(t *testing.T) {
	inf := float32(math.Inf(1))
	tests := []struct {
		name string
		a, b float32
		want bool
	}{
		{"identical", 1.5, 1.5, true},
		{"both NaN", nan32, nan32, true},
		{"NaN vs zero", nan32, 0, false},
		{"zero vs NaN", 0, nan32, false},
		{"within epsilon", 1, 1 + geometry.Epsilon/2, true},
		{"beyond epsilon", 1, 1.001, false},
		{"infinity reflexive", inf, inf, true},
		{"opposite infinities", inf, -inf, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := geometry.FloatEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("FloatEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := geometry.FloatEqual(tt.b, tt.a); got != tt.want {
				t.Errorf("FloatEqual(%v, %v) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestSize(t *testing.T) {
	if !geometry.Auto().IsAuto() {
		t.Error("Auto() should be auto")
	}
	var zero geometry.Size
	if !zero.Equal(geometry.Auto()) {
		t.Error("zero Size should equal Auto")
	}

	fixed := geometry.Fixed(100)
	if fixed.Kind() != geometry.SizeFixed {
		t.Fatalf("Kind() = %v, want SizeFixed", fixed.Kind())
	}
	if l, ok := fixed.Length(); !ok || l != 100 {
		t.Errorf("Length() = %v, %v; want 100, true", l, ok)
	}
	if _, ok := geometry.Auto().Length(); ok {
		t.Error("Auto().Length() should report false")
	}

	if !geometry.Fixed(uint8(7)).Equal(geometry.Fixed(7.0)) {
		t.Error("Fixed from different numeric types should be equal")
	}
	if geometry.Fixed(0).Equal(geometry.Auto()) {
		t.Error("Fixed(0) should not equal Auto")
	}
	if !geometry.Fixed(math.NaN()).Equal(geometry.Fixed(math.NaN())) {
		t.Error("Fixed(NaN) should equal Fixed(NaN)")
	}
	if geometry.Fixed(math.NaN()).Equal(geometry.Fixed(0)) {
		t.Error("Fixed(NaN) should not equal Fixed(0)")
	}
}

func TestSizeString(t *testing.T) {
	if got := geometry.Auto().String(); got != "Auto" {
		t.Errorf("Auto().String() = %q", got)
	}
	if got := geometry.Fixed(12.5).String(); got != "Fixed(12.5)" {
		t.Errorf("Fixed(12.5).String() = %q", got)
	}
}

func TestAlignDefaultIsStretch(t *testing.T) {
	var a geometry.Align
	if a != geometry.AlignStretch {
		t.Errorf("zero Align = %v, want stretch", a)
	}
	for _, want := range []geometry.Align{geometry.AlignStretch, geometry.AlignStart, geometry.AlignCenter, geometry.AlignEnd} {
		got, ok := geometry.ParseAlign(want.String())
		if !ok || got != want {
			t.Errorf("ParseAlign(%q) = %v, %v", want.String(), got, ok)
		}
	}
	if _, ok := geometry.ParseAlign("baseline"); ok {
		t.Error("ParseAlign should reject unknown names")
	}
}

func TestEdgesConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  geometry.Edges
		want geometry.Edges
	}{
		{"all", geometry.EdgesAll(5.0), geometry.Edges{Top: 5, Right: 5, Bottom: 5, Left: 5}},
		{"horizontal vertical", geometry.EdgesHorizontalVertical(3, 7), geometry.Edges{Top: 7, Right: 3, Bottom: 7, Left: 3}},
		{"trbl", geometry.EdgesTRBL(1, 2, 3, 4), geometry.Edges{Top: 1, Right: 2, Bottom: 3, Left: 4}},
		{"of scalar", geometry.EdgesOf(5.0), geometry.EdgesAll(5)},
		{"of pair", geometry.EdgesOf(3, 7), geometry.EdgesHorizontalVertical(3, 7)},
		{"of triple", geometry.EdgesOf(1, 2, 3), geometry.Edges{Top: 1, Right: 2, Bottom: 3, Left: 2}},
		{"of quad", geometry.EdgesOf(1, 2, 3, 4), geometry.Edges{Top: 1, Right: 2, Bottom: 3, Left: 4}},
		{"of nothing", geometry.EdgesOf[int](), geometry.Edges{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestEdgesNaNEquality(t *testing.T) {
	n := geometry.EdgesAll(math.NaN())
	if !n.Equal(geometry.EdgesAll(math.NaN())) {
		t.Error("EdgesAll(NaN) should equal EdgesAll(NaN)")
	}
	if n.Equal(geometry.EdgesAll(0.0)) || geometry.EdgesAll(0.0).Equal(n) {
		t.Error("EdgesAll(NaN) should not equal EdgesAll(0)")
	}
	if !n.Equal(n) {
		t.Error("Edges equality should be reflexive")
	}
	partial := geometry.Edges{Top: nan32, Right: 1, Bottom: 2, Left: 3}
	if !partial.Equal(partial) {
		t.Error("Edges with one NaN side should equal itself")
	}
}

func TestEdgesSums(t *testing.T) {
	e := geometry.EdgesTRBL(1, 2, 3, 4)
	if e.Horizontal() != 6 {
		t.Errorf("Horizontal() = %v, want 6", e.Horizontal())
	}
	if e.Vertical() != 4 {
		t.Errorf("Vertical() = %v, want 4", e.Vertical())
	}
}
