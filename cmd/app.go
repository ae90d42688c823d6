// Package cmd implements the CLI application to watch a crypto portfolio.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/coinwatch/settings"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&watchCmd{}, "watching")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&iconCmd{}, "reports")

	c.Register(&settingsCmd{}, "settings")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var settingsFlag = flag.String("settings", "", "Path to the settings file. Defaults to the per-user location.")

// openStore opens the settings store from the shared -settings flag,
// creating a sample settings file on first use.
func openStore() (*settings.Store, error) {
	return settings.Open(*settingsFlag)
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown, it is still readable.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
