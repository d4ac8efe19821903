package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/bankroll/journal"
)

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the session log in other formats",
		Long: `Export the session log.

Subcommands:
  org  - Org-mode blocks, one per session

Example:
  bankroll export org > sessions.org`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "org",
		Short: "Print sessions as Org-mode blocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			defer a.close()

			fmt.Fprintln(cmd.OutOrStdout(), journal.FormatSessionsOrg(a.book.Sessions))
			return nil
		},
	})
	return cmd
}
