package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/palantir-ui/palantir/pkg/events"
)

func init() {
	RegisterCommand(newClickCmd)
}

func newClickCmd(a *app) *cobra.Command {
	var repeat int

	cmd := &cobra.Command{
		Use:   "click <id>",
		Short: "Activate a view of the sample tree",
		Long: `Build the sample tree and deliver a click to the view with the given id
through the event dispatcher. Views without a click handler are rejected.`,
		Example: "  palantir click go",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := a.cfg.Theme.Style()
			if err != nil {
				return err
			}
			root := demoTree(base, cmd.OutOrStdout())

			d := events.NewDispatcher(a.logger)
			for range repeat {
				if err := d.ActivateID(root, args[0]); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d activation(s) delivered to %s\n", d.Activations(), args[0])
			return nil
		},
	}
	cmd.Flags().IntVarP(&repeat, "repeat", "n", 1, "number of clicks to deliver")
	return cmd
}
