package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/coinwatch"
	"github.com/etnz/coinwatch/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a portfolio valuation summary" }
func (*summaryCmd) Usage() string {
	return `ccw summary

  Revalues the portfolio once against live quotes and displays the
  per-coin, per-wallet and total statistics.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening settings: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	st := store.Settings()
	snapshot, err := coinwatch.Aggregate(coinwatch.NewQuoteClient(), st.LedgerEntries, st.Transfers, st.TokenPurchases, st.Market)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if snapshot == nil {
		fmt.Printf("The portfolio in %s is empty, nothing to value.\n", store.Path())
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.SnapshotMarkdown(snapshot))
	return subcommands.ExitSuccess
}
