package plot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/bankroll/journal"
)

const (
	NoSessions      = "No sessions logged yet."
	NoDatedSessions = "No dated sessions to plot."
)

// Visualizer renders the bankroll chart to Output and hands it to Viewer.
type Visualizer struct {
	Out     io.Writer
	Output  string
	Options Options
	Viewer  Viewer

	log zerolog.Logger
}

func NewVisualizer(out io.Writer, output string, opts Options, viewer Viewer, logger zerolog.Logger) *Visualizer {
	if viewer == nil {
		viewer = NoViewer{}
	}
	return &Visualizer{
		Out:     out,
		Output:  output,
		Options: opts,
		Viewer:  viewer,
		log:     logger.With().Str("component", "plot").Logger(),
	}
}

// PlotBankroll charts the cumulative profit of l and displays it. It blocks
// until the viewer returns. A viewer program that is not installed only
// leaves the chart on disk.
func (v *Visualizer) PlotBankroll(l *journal.Log) error {
	if l.Empty() {
		fmt.Fprintln(v.Out, NoSessions)
		return nil
	}

	s := BuildSeries(l)
	if s.Dropped > 0 {
		v.log.Warn().
			Int("dropped", s.Dropped).
			Int("dated", s.Dated()).
			Msg("sessions with unparseable dates left off the chart")
	}
	if s.Dated() == 0 {
		fmt.Fprintln(v.Out, NoDatedSessions)
		return nil
	}

	if err := v.write(s); err != nil {
		return err
	}

	rate, _ := s.WinRate()
	v.log.Info().
		Str("path", v.Output).
		Int("points", s.Dated()).
		Float64("win_rate", rate).
		Msg("chart rendered")
	fmt.Fprintf(v.Out, "Chart written to %s\n", v.Output)

	if err := v.Viewer.Show(v.Output); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			v.log.Warn().Err(err).Str("path", v.Output).Msg("no chart viewer available")
			return nil
		}
		return fmt.Errorf("show chart: %w", err)
	}
	return nil
}

func (v *Visualizer) write(s Series) error {
	f, err := os.Create(v.Output)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	if err := Render(f, s, v.Options); err != nil {
		f.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	return f.Close()
}
