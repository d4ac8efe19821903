package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/bankroll/config"
	"github.com/rustyeddy/bankroll/journal"
	"github.com/rustyeddy/bankroll/pkg/logger"
	"github.com/rustyeddy/bankroll/plot"
	"github.com/rustyeddy/bankroll/report"
)

// app is the state shared by every command. The session log lives here and is
// handed to the recorder, reporter and visualizer explicitly.
type app struct {
	configPath string
	logLevel   string
	pretty     bool

	cfg *config.Config
	log zerolog.Logger

	store  journal.Store
	closer io.Closer
	book   *journal.Log
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "bankroll",
		Short: "Poker session log, statistics and bankroll chart",
		Long: `Bankroll keeps a log of poker sessions (buy-in, cash-out, net result)
in a flat CSV file or SQLite database, prints aggregate statistics and renders
a cumulative-profit chart.

Run without a subcommand to print the statistics and then show the chart.

Examples:
  bankroll add cash 25/50 20 55
  bankroll stats
  bankroll plot --no-view --out bankroll.png`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			defer a.close()

			a.reporter(cmd).ShowStats(a.book)
			return a.visualizer(cmd, "", false).PlotBankroll(a.book)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config file (YAML or JSON)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	cmd.PersistentFlags().BoolVar(&a.pretty, "pretty", true, "human readable log output")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.setup(cmd)
	}

	cmd.AddCommand(
		newAddCmd(a),
		newStatsCmd(a),
		newPlotCmd(a),
		newExportCmd(a),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.LoadFromFile(a.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		a.cfg = cfg
	}

	lc := logger.Config{Level: a.cfg.Log.Level, Pretty: a.cfg.Log.Pretty}
	if a.logLevel != "" {
		lc.Level = a.logLevel
	}
	if cmd.Flags().Changed("pretty") {
		lc.Pretty = a.pretty
	}
	a.log = logger.NewWithWriter(lc, cmd.ErrOrStderr())
	return nil
}

// open connects the configured store and loads the session log.
func (a *app) open() error {
	store, closer, err := journal.Open(a.cfg.Journal, a.log)
	if err != nil {
		return err
	}
	book, err := store.Load()
	if err != nil {
		closer.Close()
		return fmt.Errorf("load journal: %w", err)
	}
	a.store, a.closer, a.book = store, closer, book
	return nil
}

func (a *app) close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.log.Warn().Err(err).Msg("close journal")
	}
}

func (a *app) reporter(cmd *cobra.Command) *report.Reporter {
	return report.New(cmd.OutOrStdout(), a.cfg.Currency)
}

func (a *app) visualizer(cmd *cobra.Command, output string, noView bool) *plot.Visualizer {
	if output == "" {
		output = a.cfg.Chart.Output
	}
	viewer := plot.NewViewer(a.cfg.Chart.Viewer)
	if noView {
		viewer = plot.NoViewer{}
	}
	opts := plot.Options{
		Title:    a.cfg.Chart.Title,
		Width:    a.cfg.Chart.Width,
		Height:   a.cfg.Chart.Height,
		Currency: a.cfg.Currency,
	}
	return plot.NewVisualizer(cmd.OutOrStdout(), output, opts, viewer, a.log)
}
