// Package settings owns the single user-edited settings file of the
// watcher. It keeps an in-memory snapshot of the parsed document, watches
// the backing file for edits, and collapses bursts of filesystem events
// into one debounced change notification.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/coinwatch"
)

// Settings is the typed snapshot of the settings file. It is replaced
// wholesale on each reload, never mutated in place, so a value obtained
// from Store.Settings is safe to keep.
type Settings struct {
	LedgerEntries  []coinwatch.LedgerEntry   `yaml:"transactions"`
	Transfers      []coinwatch.Transfer      `yaml:"transfers"`
	TokenPurchases []coinwatch.TokenPurchase `yaml:"icos"`

	// Market is the CryptoCompare venue quotes are tagged to ("Coinbase",
	// "Kraken", or the CCCAGG aggregate).
	Market string `yaml:"market"`

	// PollIntervalSeconds is the refresh cadence. Values below 10 seconds
	// are clamped by Interval to stay within the quote source rate limits.
	PollIntervalSeconds int `yaml:"interval"`

	PercentageLimits PercentageLimits `yaml:"percentageLimit"`

	// StartWithOS is parsed and exposed for the consumer owning OS
	// integration; this package takes no action on it.
	StartWithOS bool `yaml:"startWithOS"`

	// Website is opened by the presentation layer on demand.
	Website string `yaml:"website,omitempty"`
}

// PercentageLimits are the full-scale deflections of the icon bars: a coin
// bar showing +Coin percent (or more) is drawn at full height.
type PercentageLimits struct {
	Coin     float64 `yaml:"coin"`
	SubTotal float64 `yaml:"subTotal"`
	Total    float64 `yaml:"total"`
}

// Interval returns the poll interval clamped to the 10 second floor.
func (s Settings) Interval() int {
	if s.PollIntervalSeconds < 10 {
		return 10
	}
	return s.PollIntervalSeconds
}

// Validate checks every ledger entry and transfer of the snapshot.
func (s Settings) Validate() error {
	for i, e := range s.LedgerEntries {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("transactions[%d]: %w", i, err)
		}
	}
	for i, t := range s.Transfers {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("transfers[%d]: %w", i, err)
		}
	}
	return nil
}

// DefaultPath returns the per-user settings file location,
// e.g. ~/.config/coinwatch/settings.yaml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve the user config dir: %w", err)
	}
	return filepath.Join(dir, "coinwatch", "settings.yaml"), nil
}
