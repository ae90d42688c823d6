package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/etnz/coinwatch"
	"github.com/etnz/coinwatch/icon"
	"github.com/etnz/coinwatch/settings"
	"github.com/etnz/coinwatch/timer"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log = logrus.WithField("component", "watch")

// watchCmd holds the flags for the 'watch' subcommand.
type watchCmd struct {
	iconPath string
	logFile  string
	logLevel string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "watch the portfolio and keep the status icon fresh" }
func (*watchCmd) Usage() string {
	return `ccw watch [-icon <file>] [-log-file <file>] [-log-level <level>]

  Revalues the portfolio on the configured cadence, writes the status icon
  PNG and logs the tooltip text. Editing the settings file restarts the
  cadence and triggers an immediate refresh.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.iconPath, "icon", "", "File the status icon PNG is written to. Defaults to coinwatch.png next to the settings file.")
	f.StringVar(&c.logFile, "log-file", "", "Also log to this file, with rotation.")
	f.StringVar(&c.logLevel, "log-level", "info", "Log level: debug, info, warn, error.")
}

func (c *watchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c.setupLogging()

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening settings: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if c.iconPath == "" {
		c.iconPath = filepath.Join(filepath.Dir(store.Path()), "coinwatch.png")
	}

	w := &watcher{
		store:    store,
		quotes:   coinwatch.NewQuoteClient(),
		iconPath: c.iconPath,
	}
	mt := timer.New(w.tick)
	start := func() {
		interval := time.Duration(store.Settings().Interval()) * time.Second
		log.Infof("watching every %s, icon in %s", interval, c.iconPath)
		mt.Start(interval)
	}
	cancel := store.OnChange(func() {
		log.Info("settings changed")
		start()
	})
	defer cancel()

	start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("stopping")
	mt.Stop()
	return subcommands.ExitSuccess
}

func (c *watchCmd) setupLogging() {
	level, err := logrus.ParseLevel(c.logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if c.logFile != "" {
		logrus.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   c.logFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		}))
	}
}

// watcher wires settings, valuation and rendering together: one tick is
// one "fetch, aggregate, render, publish" cycle.
//
// Ticks may overlap (the scheduler never blocks dispatch on a slow cycle),
// so each cycle takes a generation number before fetching and a completion
// older than the newest published one is discarded.
type watcher struct {
	store    *settings.Store
	quotes   coinwatch.QuoteSource
	iconPath string

	mu        sync.Mutex
	seq       int
	published int
	last      *coinwatch.PortfolioSnapshot
}

func (w *watcher) tick(ack func()) {
	defer ack()

	w.mu.Lock()
	w.seq++
	gen := w.seq
	w.mu.Unlock()

	st := w.store.Settings()
	snapshot, err := coinwatch.Aggregate(w.quotes, st.LedgerEntries, st.Transfers, st.TokenPurchases, st.Market)
	if err != nil {
		// skip the cycle, the previous icon and tooltip stay published.
		log.Warnf("skipping refresh: %v", err)
		return
	}
	if snapshot == nil {
		log.Info("portfolio is empty, nothing to value")
		return
	}
	w.publish(gen, snapshot, st)
}

func (w *watcher) publish(gen int, snapshot *coinwatch.PortfolioSnapshot, st settings.Settings) {
	w.mu.Lock()
	if gen < w.published {
		w.mu.Unlock()
		log.Debugf("discarding stale refresh %d (newest is %d)", gen, w.published)
		return
	}
	w.published = gen
	w.last = snapshot
	w.mu.Unlock()

	if err := writeIcon(w.iconPath, snapshot, st.PercentageLimits); err != nil {
		log.Errorf("cannot write icon: %v", err)
		return
	}
	log.Infof("refreshed: %d coins, %s", len(snapshot.Coins), snapshot.Total.ProfitLoss.SignedString())
	log.Debug(coinwatch.Tooltip(snapshot))
}

// writeIcon renders the portfolio bars and replaces the icon file
// atomically, so the presentation layer never reads a half-written PNG.
func writeIcon(path string, s *coinwatch.PortfolioSnapshot, limits settings.PercentageLimits) error {
	bars := portfolioBars(s, limits)

	tmp, err := os.CreateTemp(filepath.Dir(path), ".coinwatch-*.png")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := icon.EncodePNG(tmp, bars); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// portfolioBars projects a snapshot into the icon renderer input.
func portfolioBars(s *coinwatch.PortfolioSnapshot, limits settings.PercentageLimits) []icon.Bar {
	coins := make([]icon.CoinChange, 0, len(s.Coins))
	for _, c := range s.Coins {
		coins = append(coins, icon.CoinChange{Asset: c.Asset, ChangePct: pct(c.ChangePct24h)})
	}
	return icon.Portfolio(
		icon.Limits{Coin: limits.Coin, SubTotal: limits.SubTotal, Total: limits.Total},
		coins,
		pct(s.SubTotal.ChangeTotalPct),
		pct(s.Total.ProfitLossPct),
	)
}

// pct degrades a Percent for the renderer; an undefined percentage draws
// as a flat bar rather than propagating a NaN into pixel math.
func pct(p coinwatch.Percent) float64 {
	if !p.Defined() {
		return 0
	}
	return float64(p)
}
