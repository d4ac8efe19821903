package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/bankroll/journal"
)

func session(date string, buyIn, cashOut int64) journal.Session {
	b := decimal.NewFromInt(buyIn)
	c := decimal.NewFromInt(cashOut)
	return journal.Session{
		Date:     date,
		GameType: "cash",
		Stakes:   "25/50",
		BuyIn:    b,
		CashOut:  c,
		Net:      c.Sub(b),
	}
}

func TestShowStatsEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	st := New(&buf, "USD").ShowStats(journal.NewLog())

	assert.Equal(t, NoSessions+"\n", buf.String())
	assert.Zero(t, st.TotalSessions)
	assert.True(t, st.TotalNet.IsZero())
	assert.NotContains(t, buf.String(), "Total")
}

func TestShowStatsTotals(t *testing.T) {
	t.Parallel()

	l := journal.NewLog()
	l.Append(session("2024-01-01", 20, 50))
	l.Append(session("2024-01-02", 20, 55))

	var buf bytes.Buffer
	st := New(&buf, "USD").ShowStats(l)

	assert.Equal(t, 2, st.TotalSessions)
	assert.Equal(t, "65", st.TotalNet.String())

	out := buf.String()
	assert.Contains(t, out, "--- Poker Statistics ---")
	assert.Contains(t, out, "Total Sessions: 2")
	assert.Contains(t, out, "Total Bankroll: $65.00")
	assert.Contains(t, out, "Session History:")
	for _, c := range journal.Columns {
		assert.Contains(t, out, c)
	}
}

func TestShowStatsKeepsLogOrder(t *testing.T) {
	t.Parallel()

	l := journal.NewLog()
	l.Append(session("2024-03-01", 10, 40))
	l.Append(session("2024-01-01", 10, 0))
	l.Append(session("2024-02-01", 10, 25))

	var buf bytes.Buffer
	New(&buf, "USD").ShowStats(l)
	out := buf.String()

	march := strings.Index(out, "2024-03-01")
	jan := strings.Index(out, "2024-01-01")
	feb := strings.Index(out, "2024-02-01")
	require.True(t, march >= 0 && jan >= 0 && feb >= 0)
	assert.Less(t, march, jan)
	assert.Less(t, jan, feb)
}

func TestComputeIsOrderIndependent(t *testing.T) {
	t.Parallel()

	nets := []int64{30, 5, -20, 55, 32, 43, -30}

	forward := journal.NewLog()
	backward := journal.NewLog()
	for i := range nets {
		forward.Append(session("2024-01-01", 0, nets[i]))
		backward.Append(session("2024-01-01", 0, nets[len(nets)-1-i]))
	}

	a := Compute(forward)
	b := Compute(backward)
	assert.Equal(t, "115", a.TotalNet.String())
	assert.True(t, a.TotalNet.Equal(b.TotalNet))
	assert.Equal(t, 5, a.Wins)
	assert.Equal(t, 2, a.Losses)
	assert.Equal(t, "55", a.BiggestWin.String())
	assert.Equal(t, "-30", a.BiggestLoss.String())
}

func TestComputeCountsUndatedRows(t *testing.T) {
	t.Parallel()

	l := journal.NewLog()
	l.Append(session("2024-01-01", 20, 50))
	l.Append(session("not a date", 20, 10))

	st := Compute(l)
	assert.Equal(t, 2, st.TotalSessions)
	assert.Equal(t, "20", st.TotalNet.String())
}

func TestComputeBreakEvenIsNeitherWinNorLoss(t *testing.T) {
	t.Parallel()

	l := journal.NewLog()
	l.Append(session("2024-01-01", 20, 20))

	st := Compute(l)
	assert.Zero(t, st.Wins)
	assert.Zero(t, st.Losses)
	assert.True(t, st.BiggestWin.IsZero())
}
