package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/coinwatch"
	"github.com/google/subcommands"
)

// iconCmd holds the flags for the 'icon' subcommand.
type iconCmd struct {
	out string
}

func (*iconCmd) Name() string     { return "icon" }
func (*iconCmd) Synopsis() string { return "render the status icon once" }
func (*iconCmd) Usage() string {
	return `ccw icon [-o <file>]

  Revalues the portfolio once, writes the 16x16 status icon PNG and prints
  the tooltip text.
`
}

func (c *iconCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "coinwatch.png", "File the icon PNG is written to.")
}

func (c *iconCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		fmt.Printf("The portfolio in %s is empty, nothing to render.\n", store.Path())
		return subcommands.ExitSuccess
	}

	if err := writeIcon(c.out, snapshot, st.PercentageLimits); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing icon %q: %v\n", c.out, err)
		return subcommands.ExitFailure
	}
	fmt.Println(coinwatch.Tooltip(snapshot))
	return subcommands.ExitSuccess
}
