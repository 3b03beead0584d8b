package cmd

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/palantir-ui/palantir/pkg/graphics"
)

func init() {
	RegisterCommand(newPaletteCmd)
}

func newPaletteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "palette [color...]",
		Short: "List palette colors or resolve color values",
		Long: `With no arguments, list the palette constants with their RGBA values.

Arguments are resolved as hex (#RGB, #RRGGBB, #RRGGBBAA) or color names
(palette names first, then SVG names).`,
		Example: `  palantir palette
  palantir palette "#ff8000" cornflowerblue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				palette := graphics.Palette()
				for _, name := range slices.Sorted(maps.Keys(palette)) {
					c := palette[name]
					r, g, b, alpha := c.Channels()
					fmt.Fprintf(out, "%-12s %s  rgba(%d, %d, %d, %d)\n", name, c.Hex(), r, g, b, alpha)
				}
				return nil
			}
			for _, arg := range args {
				c, err := graphics.ParseColor(arg)
				if err != nil {
					a.logger.Warn().Str("input", arg).Err(err).Msg("color rejected")
					return err
				}
				fmt.Fprintf(out, "%s -> %s (%s)\n", arg, c.Hex(), c)
			}
			return nil
		},
	}
}
