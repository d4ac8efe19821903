// Package plot builds and renders the cumulative bankroll chart.
package plot

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/bankroll/journal"
)

// Point is one dated session on the bankroll curve.
type Point struct {
	Date       time.Time
	Net        decimal.Decimal
	Cumulative decimal.Decimal
}

// Series is the date-ordered bankroll curve of a Log.
type Series struct {
	Points []Point

	// Wins counts points with a strictly positive Net.
	Wins int
	// Dropped counts rows left out because their date did not parse.
	Dropped int
}

// BuildSeries parses every session date, drops the rows that fail, sorts the
// rest by date (stable, so same-day sessions keep entry order) and computes
// the running total of Net. The Log is not modified.
func BuildSeries(l *journal.Log) Series {
	var s Series
	pts := make([]Point, 0, l.Len())
	for _, sess := range l.Sessions {
		day, err := sess.Day()
		if err != nil {
			s.Dropped++
			continue
		}
		pts = append(pts, Point{Date: day, Net: sess.Net})
	}

	sort.SliceStable(pts, func(i, j int) bool {
		return pts[i].Date.Before(pts[j].Date)
	})

	cum := decimal.Zero
	for i := range pts {
		cum = cum.Add(pts[i].Net)
		pts[i].Cumulative = cum
		if pts[i].Net.IsPositive() {
			s.Wins++
		}
	}
	s.Points = pts
	return s
}

// Dated is the number of rows that made it onto the curve.
func (s Series) Dated() int { return len(s.Points) }

// WinRate is the percentage of dated sessions with a positive Net. With no
// dated sessions the rate is 0 and ok is false.
func (s Series) WinRate() (rate float64, ok bool) {
	if len(s.Points) == 0 {
		return 0, false
	}
	return float64(s.Wins) / float64(len(s.Points)) * 100, true
}

// Cumulative returns the running totals in date order.
func (s Series) Cumulative() []decimal.Decimal {
	out := make([]decimal.Decimal, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Cumulative
	}
	return out
}
