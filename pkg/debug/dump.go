// Package debug renders view trees as indented text for logs and tooling.
package debug

import (
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palantir-ui/palantir/pkg/core"
	"github.com/palantir-ui/palantir/pkg/graphics"
	"github.com/palantir-ui/palantir/pkg/style"
	"github.com/palantir-ui/palantir/pkg/widgets"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true)
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f8c8d"))
	fieldStyle = lipgloss.NewStyle().Faint(true)
)

// Options controls what Dump prints.
type Options struct {
	// Indent is repeated once per depth level. Defaults to two spaces.
	Indent string
	// AllFields prints every style field instead of only those differing
	// from style.Default().
	AllFields bool
	// Swatches renders color values in their own color.
	Swatches bool
}

// Dump renders root with default options.
func Dump(root core.View) string {
	var sb strings.Builder
	_ = Fprint(&sb, root, Options{})
	return sb.String()
}

// Fprint writes one line per view, depth-first in insertion order.
//
// Each line holds the view type, its id, its kind for views defined outside
// package widgets, label text, grid dimensions and placement, and style
// overrides.
func Fprint(w io.Writer, root core.View, opts Options) error {
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}

	var err error
	placements := map[core.View]widgets.GridPosition{}
	core.Walk(root, func(v core.View, depth int) bool {
		if err != nil {
			return false
		}
		if g, ok := v.(*widgets.Grid); ok {
			for pos, child := range g.Placed() {
				placements[child] = pos
			}
		}
		line := strings.Repeat(indent, depth) + describe(v, placements, opts)
		_, err = fmt.Fprintln(w, line)
		return true
	})
	return err
}

func describe(v core.View, placements map[core.View]widgets.GridPosition, opts Options) string {
	parts := []string{nameStyle.Render(typeName(v))}

	if id := v.Fragment().ID; id != "" {
		parts = append(parts, idStyle.Render("#"+id))
	}
	if pos, ok := placements[v]; ok {
		parts = append(parts, "@"+pos.String())
	}

	switch v := v.(type) {
	case *widgets.Label:
		parts = append(parts, fmt.Sprintf("%q", v.Text()))
	case *widgets.Grid:
		parts = append(parts, fmt.Sprintf("%dx%d", v.Rows(), v.Columns()))
	case *widgets.Button:
		if v.HasClickHandler() {
			parts = append(parts, "onclick")
		}
	case *widgets.VStack:
		parts = append(parts, fmt.Sprintf("%d items", len(v.Items())))
	default:
		parts = append(parts, "["+core.KindOf(v).String()+"]")
	}

	parts = append(parts, styleFields(v.Fragment().Style, opts)...)
	return strings.Join(parts, " ")
}

func styleFields(s style.Style, opts Options) []string {
	var names []string
	if opts.AllFields {
		names = allFieldNames
	} else {
		names = s.Diff(style.Default())
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		value := s.Field(name)
		text := fmt.Sprint(value)
		if c, ok := value.(graphics.Color); ok && opts.Swatches {
			text = swatch(c)
		}
		out = append(out, fieldStyle.Render(lowerFirst(name)+"=")+text)
	}
	return out
}

var allFieldNames = []string{
	"Width", "Height", "MinWidth", "MinHeight", "MaxWidth", "MaxHeight",
	"VAlign", "HAlign", "Padding", "Margin", "FontSize",
	"Color", "BackgroundColor", "BorderWidth", "BorderColor", "BorderRadius",
}

func swatch(c graphics.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(swatchHex(c))).Render(c.String())
}

// swatchHex composites c over a black terminal background, since terminal
// colors carry no alpha.
func swatchHex(c graphics.Color) string {
	r, g, b, a := c.RGBAF()
	blend := func(v float64) uint8 { return uint8(math.Round(v * a * 255)) }
	return fmt.Sprintf("#%02x%02x%02x", blend(r), blend(g), blend(b))
}

func typeName(v core.View) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
