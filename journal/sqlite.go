package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/rustyeddy/bankroll/pkg/id"
)

// SQLiteStore keeps the log in a single sessions table. Amounts are stored as
// decimal text so nothing is lost to float rounding.
type SQLiteStore struct {
	db  *sql.DB
	log zerolog.Logger
}

func NewSQLite(path string, logger zerolog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{
		db:  db,
		log: logger.With().Str("store", "sqlite").Str("path", path).Logger(),
	}, nil
}

func (j *SQLiteStore) Load() (*Log, error) {
	rows, err := j.db.Query(`
		SELECT date, game_type, stakes, buy_in, cash_out, net
		FROM sessions
		ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	l := NewLog()
	n := 0
	for rows.Next() {
		n++
		var (
			s                   Session
			buyIn, cashOut, net string
		)
		if err := rows.Scan(&s.Date, &s.GameType, &s.Stakes, &buyIn, &cashOut, &net); err != nil {
			return nil, err
		}
		if s.BuyIn, err = amount(buyIn, "BuyIn"); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedRow, n, err)
		}
		if s.CashOut, err = amount(cashOut, "CashOut"); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedRow, n, err)
		}
		if s.Net, err = amount(net, "Net"); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedRow, n, err)
		}
		l.Append(s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	j.log.Debug().Int("sessions", l.Len()).Msg("journal loaded")
	return l, nil
}

// Save replaces the table contents with l inside one transaction.
func (j *SQLiteStore) Save(l *Log) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM sessions`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO sessions
		(id, seq, date, game_type, stakes, buy_in, cash_out, net)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, s := range l.Sessions {
		_, err := stmt.Exec(
			id.New(), i, s.Date, s.GameType, s.Stakes,
			s.BuyIn.String(), s.CashOut.String(), s.Net.String(),
		)
		if err != nil {
			return fmt.Errorf("insert session %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	j.log.Debug().Int("sessions", l.Len()).Msg("journal saved")
	return nil
}

func (j *SQLiteStore) Close() error {
	return j.db.Close()
}
