// Package widgets provides the concrete views: Label, Button, VStack and Grid.
//
// Every widget embeds core.Styler, so the full set of style setters is
// available on each of them and chains with the widget's own setters:
//
//	root := widgets.NewVStack().
//	    SetPadding(geometry.EdgesAll(10)).
//	    SetMargin(geometry.EdgesAll(5)).
//	    AddItem(widgets.NewLabel("Hello, world!").SetFontSize(18)).
//	    AddItem(widgets.NewButton().
//	        SetItem(widgets.NewLabel("Click")).
//	        OnClick(func() { fmt.Println("clicked") }))
//
// # Construction
//
// Widgets are created with NewX constructors (NewLabel, NewButton, NewVStack,
// NewGrid) and are used by pointer. Setters mutate the widget and return the
// same pointer; they never copy.
//
// # Roles
//
//   - Label is a leaf.
//   - Button is a core.ItemView: SetItem replaces its only child.
//   - VStack and Grid are core.ItemsView: AddItem appends in order.
//
// Grid children carry a GridPosition, available from Positions, PositionAt
// and Placed.
//
// # Layout Engines
//
// Layout and rendering happen outside this module. An engine receives the root
// and inspects it read-only, typically with a type switch:
//
//	switch v := view.(type) {
//	case *widgets.Label:
//	    measureText(v.Text(), v.Style())
//	case *widgets.Grid:
//	    for pos, child := range v.Placed() { ... }
//	case core.ItemsView:
//	    for _, child := range v.Items() { ... }
//	}
package widgets
