package geometry

import "strconv"

// SizeKind distinguishes the variants of a Size.
type SizeKind uint8

const (
	// SizeAuto lets the layout solver choose the length.
	SizeAuto SizeKind = iota
	// SizeFixed is an explicit length in abstract pixels.
	SizeFixed
)

// Size is either Auto or a fixed length in abstract pixels.
// The zero value is Auto.
type Size struct {
	kind   SizeKind
	length float32
}

// Auto returns a Size the layout solver chooses.
func Auto() Size {
	return Size{}
}

// Fixed returns a fixed Size of n abstract pixels.
func Fixed[N Number](n N) Size {
	return Size{kind: SizeFixed, length: float32(n)}
}

// Kind returns which variant s holds.
func (s Size) Kind() SizeKind {
	return s.kind
}

// IsAuto reports whether s is Auto.
func (s Size) IsAuto() bool {
	return s.kind == SizeAuto
}

// Length returns the fixed length and true, or 0 and false for Auto.
func (s Size) Length() (float32, bool) {
	if s.kind != SizeFixed {
		return 0, false
	}
	return s.length, true
}

// Equal reports whether s and other hold the same variant and, for Fixed,
// lengths equal under FloatEqual.
func (s Size) Equal(other Size) bool {
	if s.kind != other.kind {
		return false
	}
	if s.kind == SizeAuto {
		return true
	}
	return FloatEqual(s.length, other.length)
}

func (s Size) String() string {
	if s.kind == SizeAuto {
		return "Auto"
	}
	return "Fixed(" + strconv.FormatFloat(float64(s.length), 'g', -1, 32) + ")"
}
