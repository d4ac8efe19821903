// Package report prints totals and the session history of a journal.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/rustyeddy/bankroll/journal"
	"github.com/rustyeddy/bankroll/pkg/currency"
)

// NoSessions is printed instead of a report when the log is empty.
const NoSessions = "No sessions logged yet."

// Stats summarises a Log. It always covers every row, including rows whose
// date does not parse.
type Stats struct {
	TotalSessions int
	TotalNet      decimal.Decimal

	Wins   int
	Losses int

	BiggestWin  decimal.Decimal
	BiggestLoss decimal.Decimal
}

// Compute aggregates l in a single pass.
func Compute(l *journal.Log) Stats {
	st := Stats{TotalNet: decimal.Zero, BiggestWin: decimal.Zero, BiggestLoss: decimal.Zero}
	for _, s := range l.Sessions {
		st.TotalSessions++
		st.TotalNet = st.TotalNet.Add(s.Net)
		switch {
		case s.Net.IsPositive():
			st.Wins++
			if s.Net.GreaterThan(st.BiggestWin) {
				st.BiggestWin = s.Net
			}
		case s.Net.IsNegative():
			st.Losses++
			if s.Net.LessThan(st.BiggestLoss) {
				st.BiggestLoss = s.Net
			}
		}
	}
	return st
}

// Reporter writes reports to Out.
type Reporter struct {
	Out      io.Writer
	Currency string
}

func New(out io.Writer, currencyCode string) *Reporter {
	return &Reporter{Out: out, Currency: currencyCode}
}

// ShowStats prints the totals and the full history in log order.
func (r *Reporter) ShowStats(l *journal.Log) Stats {
	if l.Empty() {
		fmt.Fprintln(r.Out, NoSessions)
		return Stats{TotalNet: decimal.Zero, BiggestWin: decimal.Zero, BiggestLoss: decimal.Zero}
	}

	st := Compute(l)
	w := r.Out

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Poker Statistics ---")
	fmt.Fprintf(w, "Total Sessions: %d\n", st.TotalSessions)
	fmt.Fprintf(w, "Total Bankroll: %s\n", r.money(st.TotalNet))
	fmt.Fprintf(w, "Wins / Losses:  %d / %d\n", st.Wins, st.Losses)
	if st.Wins > 0 {
		fmt.Fprintf(w, "Biggest Win:    %s\n", r.money(st.BiggestWin))
	}
	if st.Losses > 0 {
		fmt.Fprintf(w, "Biggest Loss:   %s\n", r.money(st.BiggestLoss))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Session History:")
	fmt.Fprintln(w, HistoryTable(l.Sessions))
	return st
}

func (r *Reporter) money(d decimal.Decimal) string {
	return currency.Format(d, r.Currency)
}

// HistoryTable renders sessions as a bordered table with the journal columns.
func HistoryTable(sessions []journal.Session) string {
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			s.Date,
			s.GameType,
			s.Stakes,
			s.BuyIn.String(),
			s.CashOut.String(),
			s.Net.String(),
		})
	}

	right := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	left := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(journal.Columns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			// amount columns
			if col >= 3 {
				return right
			}
			return left
		})
	return t.String()
}
