package geometry

import "fmt"

// Edges is a four-sided measurement in abstract pixels, used for padding,
// margin and border widths. Fields follow box-model order.
type Edges struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// EdgesAll returns Edges with v on every side.
func EdgesAll[N Number](v N) Edges {
	f := float32(v)
	return Edges{Top: f, Right: f, Bottom: f, Left: f}
}

// EdgesHorizontalVertical returns Edges with h on the left and right and v
// on the top and bottom.
func EdgesHorizontalVertical[N Number](h, v N) Edges {
	return Edges{Top: float32(v), Right: float32(h), Bottom: float32(v), Left: float32(h)}
}

// EdgesTRBL returns Edges with each side set explicitly.
func EdgesTRBL[N Number](top, right, bottom, left N) Edges {
	return Edges{Top: float32(top), Right: float32(right), Bottom: float32(bottom), Left: float32(left)}
}

// EdgesOf converts a shorthand list into Edges:
//
//	EdgesOf(a)          // all sides a
//	EdgesOf(h, v)       // EdgesHorizontalVertical(h, v)
//	EdgesOf(t, h, b)    // top t, left and right h, bottom b
//	EdgesOf(t, r, b, l) // EdgesTRBL(t, r, b, l)
//
// No values yields zero Edges; values past the fourth are ignored.
func EdgesOf[N Number](values ...N) Edges {
	switch len(values) {
	case 0:
		return Edges{}
	case 1:
		return EdgesAll(values[0])
	case 2:
		return EdgesHorizontalVertical(values[0], values[1])
	case 3:
		return EdgesTRBL(values[0], values[1], values[2], values[1])
	default:
		return EdgesTRBL(values[0], values[1], values[2], values[3])
	}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() float32 {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e Edges) Vertical() float32 {
	return e.Top + e.Bottom
}

// Equal compares each side with FloatEqual.
func (e Edges) Equal(other Edges) bool {
	return FloatEqual(e.Top, other.Top) &&
		FloatEqual(e.Right, other.Right) &&
		FloatEqual(e.Bottom, other.Bottom) &&
		FloatEqual(e.Left, other.Left)
}

func (e Edges) String() string {
	if e.Top == e.Right && e.Right == e.Bottom && e.Bottom == e.Left {
		return fmt.Sprintf("Edges(%g)", e.Top)
	}
	return fmt.Sprintf("Edges(%g %g %g %g)", e.Top, e.Right, e.Bottom, e.Left)
}
