package geometry

// Align is the alignment policy on one axis. Whether Start and End mean
// top/bottom or left/right depends on the axis and is decided by the layout
// engine.
type Align uint8

const (
	// AlignStretch fills the available space on the axis. It is the default.
	AlignStretch Align = iota
	// AlignStart packs against the leading edge.
	AlignStart
	// AlignCenter centers on the axis.
	AlignCenter
	// AlignEnd packs against the trailing edge.
	AlignEnd
)

func (a Align) String() string {
	switch a {
	case AlignStretch:
		return "stretch"
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ParseAlign returns the Align named by s ("stretch", "start", "center",
// "end") and whether s was recognized.
func ParseAlign(s string) (Align, bool) {
	switch s {
	case "stretch":
		return AlignStretch, true
	case "start":
		return AlignStart, true
	case "center":
		return AlignCenter, true
	case "end":
		return AlignEnd, true
	}
	return AlignStretch, false
}
