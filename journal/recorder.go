package journal

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rustyeddy/bankroll/pkg/currency"
)

// Recorder appends sessions to a Log and persists the whole Log after each
// append.
type Recorder struct {
	Log   *Log
	Store Store
	Out   io.Writer

	// Currency is the ISO 4217 code used in confirmations.
	Currency string

	// Now is the clock used to date new sessions.
	Now func() time.Time

	log zerolog.Logger
}

func NewRecorder(l *Log, store Store, out io.Writer, logger zerolog.Logger) *Recorder {
	return &Recorder{
		Log:      l,
		Store:    store,
		Out:      out,
		Currency: currency.Default,
		Now:      time.Now,
		log:      logger,
	}
}

// AddSession records a session dated today. Amounts are not range checked.
func (r *Recorder) AddSession(gameType, stakes string, buyIn, cashOut decimal.Decimal) (Session, error) {
	s := NewSession(r.Now(), gameType, stakes, buyIn, cashOut)
	r.Log.Append(s)

	if err := r.Store.Save(r.Log); err != nil {
		return s, fmt.Errorf("save journal: %w", err)
	}

	r.log.Info().
		Str("date", s.Date).
		Str("game_type", s.GameType).
		Str("stakes", s.Stakes).
		Str("net", s.Net.String()).
		Msg("session recorded")
	fmt.Fprintf(r.Out, "Session added! Net: %s\n", currency.Format(s.Net, r.Currency))
	return s, nil
}
