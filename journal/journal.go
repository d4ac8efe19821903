// Package journal holds the poker session log and the stores that persist it.
package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format written to every store.
const DateLayout = "2006-01-02"

// Columns is the persisted schema, in file order.
var Columns = []string{"Date", "GameType", "Stakes", "BuyIn", "CashOut", "Net"}

var (
	// ErrSchemaMismatch is returned when a persisted file does not carry the
	// expected columns.
	ErrSchemaMismatch = errors.New("journal: schema mismatch")
	// ErrMalformedRow is returned when a persisted row cannot be decoded.
	ErrMalformedRow = errors.New("journal: malformed row")
)

// Session is one recorded poker outing.
//
// Date is kept as text so a value that does not parse as a calendar date
// survives a load/save cycle; see ParseDate.
type Session struct {
	Date     string
	GameType string
	Stakes   string
	BuyIn    decimal.Decimal
	CashOut  decimal.Decimal
	Net      decimal.Decimal
}

// NewSession builds a Session dated on day, with Net = cashOut - buyIn.
func NewSession(day time.Time, gameType, stakes string, buyIn, cashOut decimal.Decimal) Session {
	return Session{
		Date:     day.Format(DateLayout),
		GameType: gameType,
		Stakes:   stakes,
		BuyIn:    buyIn,
		CashOut:  cashOut,
		Net:      cashOut.Sub(buyIn),
	}
}

// Day parses the session date.
func (s Session) Day() (time.Time, error) {
	return ParseDate(s.Date)
}

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006",
}

// ParseDate accepts the layouts a hand-edited log is likely to contain.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// Log is the ordered session table. Order is entry order, not date order.
type Log struct {
	Sessions []Session
}

// NewLog returns an empty Log.
func NewLog() *Log {
	return &Log{Sessions: []Session{}}
}

func (l *Log) Len() int    { return len(l.Sessions) }
func (l *Log) Empty() bool { return len(l.Sessions) == 0 }

// Append adds s at the end of the log.
func (l *Log) Append(s Session) {
	l.Sessions = append(l.Sessions, s)
}

// Store loads and persists a Log. Save always rewrites the whole table.
type Store interface {
	Load() (*Log, error)
	Save(*Log) error
}
