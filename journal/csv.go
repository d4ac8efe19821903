package journal

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CSVStore keeps the log in a comma-delimited file with a header row.
type CSVStore struct {
	Path string
	log  zerolog.Logger
}

func NewCSV(path string, logger zerolog.Logger) *CSVStore {
	return &CSVStore{
		Path: path,
		log:  logger.With().Str("store", "csv").Str("path", path).Logger(),
	}
}

// Load reads the file. A missing or blank file yields an empty Log.
func (s *CSVStore) Load() (*Log, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug().Msg("no journal file, starting empty")
		return NewLog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		s.log.Warn().Msg("journal file is empty, starting empty")
		return NewLog(), nil
	}

	l, err := decodeCSV(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.Path, err)
	}
	s.log.Debug().Int("sessions", l.Len()).Msg("journal loaded")
	return l, nil
}

// Save overwrites the file with the full table.
func (s *CSVStore) Save(l *Log) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	if err := encodeCSV(f, l); err != nil {
		f.Close()
		return fmt.Errorf("write journal: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.log.Debug().Int("sessions", l.Len()).Msg("journal saved")
	return nil
}

func encodeCSV(w io.Writer, l *Log) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, s := range l.Sessions {
		err := cw.Write([]string{
			s.Date,
			s.GameType,
			s.Stakes,
			s.BuyIn.String(),
			s.CashOut.String(),
			s.Net.String(),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func decodeCSV(r io.Reader) (*Log, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	l := NewLog()
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// *csv.ParseError carries its own line number.
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != len(header) {
			return nil, fmt.Errorf("%w: line %d: %d fields, want %d", ErrMalformedRow, line, len(rec), len(header))
		}
		s, err := decodeRow(rec, idx)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
		}
		l.Append(s)
	}
	return l, nil
}

// columnIndex maps each schema column to its position in header.
func columnIndex(header []string) (map[string]int, error) {
	if len(header) != len(Columns) {
		return nil, fmt.Errorf("%w: got %v", ErrSchemaMismatch, header)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}
	for _, c := range Columns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrSchemaMismatch, c)
		}
	}
	return idx, nil
}

func decodeRow(rec []string, idx map[string]int) (Session, error) {
	s := Session{
		Date:     rec[idx["Date"]],
		GameType: rec[idx["GameType"]],
		Stakes:   rec[idx["Stakes"]],
	}
	var err error
	if s.BuyIn, err = amount(rec[idx["BuyIn"]], "BuyIn"); err != nil {
		return s, err
	}
	if s.CashOut, err = amount(rec[idx["CashOut"]], "CashOut"); err != nil {
		return s, err
	}
	if s.Net, err = amount(rec[idx["Net"]], "Net"); err != nil {
		return s, err
	}
	return s, nil
}

func amount(v, column string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %q: %v", column, v, err)
	}
	return d, nil
}
