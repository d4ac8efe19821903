package journal

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/bankroll/config"
)

// Open returns the Store selected by cfg. The returned closer releases any
// backend resources and is never nil.
func Open(cfg config.JournalConfig, logger zerolog.Logger) (Store, io.Closer, error) {
	switch cfg.Type {
	case "", "csv":
		return NewCSV(cfg.Path, logger), nopCloser{}, nil
	case "sqlite":
		s, err := NewSQLite(cfg.DBPath, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite journal: %w", err)
		}
		return s, s, nil
	}
	return nil, nil, fmt.Errorf("unknown journal type %q", cfg.Type)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
