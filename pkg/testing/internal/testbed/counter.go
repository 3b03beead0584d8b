// Package testbed provides internal view trees for the testing framework.
package testbed

import (
	"strconv"

	"github.com/palantir-ui/palantir/pkg/core"
	"github.com/palantir-ui/palantir/pkg/geometry"
	"github.com/palantir-ui/palantir/pkg/widgets"
)

// Counter is a small tree: a stack with a count label and an increment
// button whose handler updates the label.
type Counter struct {
	Root   *widgets.VStack
	Label  *widgets.Label
	Button *widgets.Button
	count  int
}

// NewCounter builds a Counter starting at initial.
func NewCounter(initial int) *Counter {
	c := &Counter{count: initial}
	c.Label = widgets.NewLabel(strconv.Itoa(initial)).SetID("count")
	c.Button = widgets.NewButton().
		SetID("increment").
		SetItem(widgets.NewLabel("+1")).
		OnClick(c.increment)
	c.Root = widgets.NewVStack().
		SetPadding(geometry.EdgesAll(4)).
		AddItem(c.Label).
		AddItem(c.Button)
	return c
}

// View returns the root view.
func (c *Counter) View() core.View {
	return c.Root
}

// Count returns the current count.
func (c *Counter) Count() int {
	return c.count
}

func (c *Counter) increment() {
	c.count++
	c.Label.SetText(strconv.Itoa(c.count))
}
