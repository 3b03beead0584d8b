package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/palantir-ui/palantir/pkg/core"
	"github.com/palantir-ui/palantir/pkg/debug"
	"github.com/palantir-ui/palantir/pkg/geometry"
	"github.com/palantir-ui/palantir/pkg/graphics"
	"github.com/palantir-ui/palantir/pkg/style"
	"github.com/palantir-ui/palantir/pkg/widgets"
)

func init() {
	RegisterCommand(newDemoCmd)
}

func newDemoCmd(a *app) *cobra.Command {
	var opts debug.Options

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the sample view tree",
		Long: `Build the sample view tree and print it one view per line.

The root stack takes the theme from palantir.yaml. Only style fields that
differ from the defaults are printed unless --all is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := a.cfg.Theme.Style()
			if err != nil {
				return err
			}
			root := demoTree(base, cmd.OutOrStdout())
			a.logger.Debug().Int("views", core.Count(root)).Msg("demo tree built")
			return debug.Fprint(cmd.OutOrStdout(), root, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.AllFields, "all", false, "print every style field")
	cmd.Flags().BoolVar(&opts.Swatches, "swatches", false, "render colors in their own color")
	cmd.Flags().StringVar(&opts.Indent, "indent", "  ", "indentation per level")
	return cmd
}

// demoTree builds one view per sample under a root stack styled with base.
// Clicking the "go" button writes to out.
func demoTree(base style.Style, out io.Writer) *widgets.VStack {
	return widgets.NewVStack().
		SetStyle(base).
		SetID("demo").
		AddItem(widgets.NewLabel("hi").
			SetID("greeting").
			SetFontSize(18).
			SetFontColor(graphics.ColorBlue)).
		AddItem(widgets.NewButton().
			SetID("danger").
			SetBackgroundColor(graphics.ColorRed).
			SetItem(widgets.NewLabel("x"))).
		AddItem(widgets.NewVStack().
			SetID("list").
			SetPadding(geometry.EdgesAll(10)).
			SetMargin(geometry.EdgesAll(5)).
			AddItem(widgets.NewLabel("a")).
			AddItem(widgets.NewLabel("b"))).
		AddItem(widgets.NewGrid().
			SetID("grid").
			SetRowsColumns(2, 3).
			AddItem(widgets.At(0, 0), widgets.NewLabel("a")).
			AddItem(widgets.Span(1, 2, 1, 1), widgets.NewLabel("b"))).
		AddItem(widgets.NewButton().
			SetID("go").
			OnClick(func() { fmt.Fprintln(out, "clicked go") }).
			SetItem(widgets.NewLabel("go"))).
		AddItem(widgets.NewVStack().
			SetID("sized").
			SetWidth(geometry.Fixed(100)).
			SetHeight(geometry.Auto()))
}
