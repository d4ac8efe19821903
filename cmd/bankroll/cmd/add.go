package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/bankroll/journal"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <game-type> <stakes> <buy-in> <cash-out>",
		Short: "Record a session dated today",
		Long: `Append a session to the journal and save it immediately.

The session is dated today; net is cash-out minus buy-in.

Example:
  bankroll add cash 25/50 20 55`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			buyIn, err := decimal.NewFromString(args[2])
			if err != nil {
				return fmt.Errorf("buy-in %q: %w", args[2], err)
			}
			cashOut, err := decimal.NewFromString(args[3])
			if err != nil {
				return fmt.Errorf("cash-out %q: %w", args[3], err)
			}

			if err := a.open(); err != nil {
				return err
			}
			defer a.close()

			r := journal.NewRecorder(a.book, a.store, cmd.OutOrStdout(), a.log)
			r.Currency = a.cfg.Currency
			_, err = r.AddSession(args[0], args[1], buyIn, cashOut)
			return err
		},
	}
}
