package cmd

import (
	"github.com/spf13/cobra"
)

func newPlotCmd(a *app) *cobra.Command {
	var (
		output string
		noView bool
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the cumulative profit chart",
		Long: `Render cumulative profit over time to a PNG file and open it with the
configured viewer. The command waits until the viewer exits.

Examples:
  bankroll plot
  bankroll plot --out /tmp/bankroll.png --no-view`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			defer a.close()

			return a.visualizer(cmd, output, noView).PlotBankroll(a.book)
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "chart output path (default from config)")
	cmd.Flags().BoolVar(&noView, "no-view", false, "write the chart without opening a viewer")
	return cmd
}
