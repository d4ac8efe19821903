package journal

import (
	"fmt"
	"strings"
)

// FormatSessionOrg renders a Session as an Org-mode block suitable for pasting
// into a journal. Facts live in a PROPERTIES drawer; Notes and Leaks are left
// as placeholders.
func FormatSessionOrg(s Session) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("** Session: %s %s (%s)\n", s.GameType, s.Stakes, s.Date))
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":DATE: %s\n", s.Date))
	b.WriteString(fmt.Sprintf(":GAME_TYPE: %s\n", s.GameType))
	b.WriteString(fmt.Sprintf(":STAKES: %s\n", s.Stakes))
	b.WriteString(fmt.Sprintf(":BUY_IN: %s\n", s.BuyIn.StringFixed(2)))
	b.WriteString(fmt.Sprintf(":CASH_OUT: %s\n", s.CashOut.StringFixed(2)))
	b.WriteString(fmt.Sprintf(":NET: %s\n", s.Net.StringFixed(2)))
	b.WriteString(fmt.Sprintf(":RESULT: %s\n", result(s)))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Notes\n- \n\n")
	b.WriteString("*** Leaks\n- \n")

	return b.String()
}

// FormatSessionsOrg renders multiple sessions separated by blank lines.
func FormatSessionsOrg(sessions []Session) string {
	var b strings.Builder
	for i, s := range sessions {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatSessionOrg(s))
	}
	return b.String()
}

func result(s Session) string {
	switch {
	case s.Net.IsPositive():
		return "win"
	case s.Net.IsNegative():
		return "loss"
	}
	return "even"
}
