package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// settingsCmd holds the flags for the 'settings' subcommand.
type settingsCmd struct {
	get string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "locate or query the settings file" }
func (*settingsCmd) Usage() string {
	return `ccw settings [-get <path>]

  Prints the settings file location, creating a sample file on first use.
  With -get, reads one value out of the settings by dotted path, e.g.
  "percentageLimit.coin" or "transactions[0].coin".
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.get, "get", "", "Dotted path of a single setting to print.")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening settings: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if c.get == "" {
		fmt.Println(store.Path())
		return subcommands.ExitSuccess
	}

	v, err := store.Get(c.get)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(v)
	return subcommands.ExitSuccess
}
