package journal

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{ err error }

func (f failingStore) Load() (*Log, error) { return NewLog(), nil }
func (f failingStore) Save(*Log) error     { return f.err }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAddSessionComputesNet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		buyIn, cashOut, net string
	}{
		{"20", "50", "30"},
		{"20", "0", "-20"},
		{"0.1", "0.3", "0.2"},
		{"109.99", "109.99", "0"},
		{"1000000", "1000000.01", "0.01"},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		r := NewRecorder(NewLog(), newTestCSV(t), &out, zerolog.Nop())

		s, err := r.AddSession("cash", "1/2", d(tt.buyIn), d(tt.cashOut))
		require.NoError(t, err)
		assert.True(t, d(tt.net).Equal(s.Net), "%s - %s", tt.cashOut, tt.buyIn)
	}
}

func TestAddSessionScenario(t *testing.T) {
	t.Parallel()

	store := newTestCSV(t)
	l, err := store.Load()
	require.NoError(t, err)

	var out bytes.Buffer
	r := NewRecorder(l, store, &out, zerolog.Nop())
	r.Now = fixedClock(time.Date(2024, 6, 1, 22, 30, 0, 0, time.Local))

	_, err = r.AddSession("cash", "25/50", d("20"), d("50"))
	require.NoError(t, err)
	_, err = r.AddSession("cash", "25/50", d("20"), d("55"))
	require.NoError(t, err)

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "30", l.Sessions[0].Net.String())
	assert.Equal(t, "35", l.Sessions[1].Net.String())
	assert.Equal(t, "2024-06-01", l.Sessions[0].Date)
	assert.Equal(t, "Session added! Net: $30.00\nSession added! Net: $35.00\n", out.String())

	total := decimal.Zero
	var cumulative []string
	for _, s := range l.Sessions {
		total = total.Add(s.Net)
		cumulative = append(cumulative, total.String())
	}
	assert.Equal(t, []string{"30", "65"}, cumulative)

	// persisted after every append
	reloaded, err := store.Load()
	require.NoError(t, err)
	assertSameSessions(t, l.Sessions, reloaded.Sessions)
}

func TestAddSessionRoundTripN(t *testing.T) {
	t.Parallel()

	store := newTestCSV(t)
	r := NewRecorder(NewLog(), store, &bytes.Buffer{}, zerolog.Nop())

	const n = 25
	for i := 0; i < n; i++ {
		_, err := r.AddSession("cash", "1/2", d("100"), decimal.NewFromInt(int64(i*10)))
		require.NoError(t, err)
	}

	reloaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, n, reloaded.Len())
	assertSameSessions(t, r.Log.Sessions, reloaded.Sessions)
}

func TestAddSessionSaveError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := NewRecorder(NewLog(), failingStore{err: errors.New("disk full")}, &out, zerolog.Nop())

	_, err := r.AddSession("cash", "1/2", d("20"), d("50"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Empty(t, out.String())
}
