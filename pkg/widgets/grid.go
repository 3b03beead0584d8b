package widgets

import (
	"fmt"
	"iter"

	"github.com/palantir-ui/palantir/pkg/core"
)

// GridPosition places a Grid child. Spans are at least 1 in practice; the
// grid stores whatever it is given.
type GridPosition struct {
	Row        uint32
	Column     uint32
	RowSpan    uint32
	ColumnSpan uint32
}

// At returns a position covering the single cell (row, column).
func At(row, column uint32) GridPosition {
	return GridPosition{Row: row, Column: column, RowSpan: 1, ColumnSpan: 1}
}

// Span returns a position starting at (row, column) covering rowSpan rows
// and columnSpan columns.
func Span(row, column, rowSpan, columnSpan uint32) GridPosition {
	return GridPosition{Row: row, Column: column, RowSpan: rowSpan, ColumnSpan: columnSpan}
}

// WithRowSpan returns a copy of p spanning n rows.
func (p GridPosition) WithRowSpan(n uint32) GridPosition {
	p.RowSpan = n
	return p
}

// WithColumnSpan returns a copy of p spanning n columns.
func (p GridPosition) WithColumnSpan(n uint32) GridPosition {
	p.ColumnSpan = n
	return p
}

func (p GridPosition) String() string {
	if p.RowSpan == 1 && p.ColumnSpan == 1 {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
	}
	return fmt.Sprintf("(%d,%d span %dx%d)", p.Row, p.Column, p.RowSpan, p.ColumnSpan)
}

// Grid places children in cells of a rows x columns grid.
//
// Each child is recorded together with its GridPosition. Placements follow
// their child: children removed through the Fragment take their placement
// with them, and children appended through the Fragment directly report
// At(0, 0). The grid does not check positions against its dimensions;
// out-of-range and overlapping placements are left to the layout engine.
//
// Children are matched to placements by identity, so grid children must be
// comparable views (the pointers returned by the widget constructors are).
//
//	widgets.NewGrid().
//	    SetRowsColumns(2, 3).
//	    AddItem(widgets.At(0, 0), widgets.NewLabel("a")).
//	    AddItem(widgets.Span(1, 0, 1, 3), widgets.NewLabel("footer"))
type Grid struct {
	core.Styler[*Grid]
	rows       uint32
	columns    uint32
	placements []placement
}

type placement struct {
	child core.View
	pos   GridPosition
}

// NewGrid creates an empty 1x1 grid with the default style.
func NewGrid() *Grid {
	g := &Grid{rows: 1, columns: 1}
	g.Bind(g)
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() uint32 {
	return g.rows
}

// Columns returns the number of columns.
func (g *Grid) Columns() uint32 {
	return g.columns
}

// SetRowsColumns replaces the grid dimensions.
func (g *Grid) SetRowsColumns(rows, columns uint32) *Grid {
	g.rows = rows
	g.columns = columns
	return g
}

// AddItem appends child placed at pos. A nil child is ignored.
func (g *Grid) AddItem(pos GridPosition, child core.View) *Grid {
	if child == nil {
		return g
	}
	g.resolve()
	g.Fragment().Append(child)
	g.placements = append(g.placements, placement{child: child, pos: pos})
	return g
}

// Items returns the children in insertion order.
func (g *Grid) Items() []core.View {
	return g.Fragment().Children()
}

// Positions returns the placements, parallel to Items.
func (g *Grid) Positions() []GridPosition {
	return g.resolve()
}

// PositionAt returns the placement of the i-th child, or At(0, 0) when i is
// out of range or the child has no placement.
func (g *Grid) PositionAt(i int) GridPosition {
	positions := g.resolve()
	if i < 0 || i >= len(positions) {
		return At(0, 0)
	}
	return positions[i]
}

// Placed yields each child with its placement, in insertion order.
func (g *Grid) Placed() iter.Seq2[GridPosition, core.View] {
	return func(yield func(GridPosition, core.View) bool) {
		positions := g.resolve()
		for i, child := range g.Items() {
			if !yield(positions[i], child) {
				return
			}
		}
	}
}

// resolve matches each current child to its placement record, in order,
// and drops records whose child is gone.
func (g *Grid) resolve() []GridPosition {
	children := g.Items()
	positions := make([]GridPosition, len(children))
	used := make([]bool, len(g.placements))
	kept := make([]placement, 0, len(children))

	for i, child := range children {
		positions[i] = At(0, 0)
		for j, p := range g.placements {
			if !used[j] && p.child == child {
				used[j] = true
				positions[i] = p.pos
				kept = append(kept, p)
				break
			}
		}
	}
	g.placements = kept
	return positions
}
