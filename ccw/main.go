package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/coinwatch/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// shell completion, a no-op outside of completion mode.
	completion := &complete.Command{
		Flags: map[string]complete.Predictor{
			"settings": predict.Files("*.yaml"),
		},
		Sub: map[string]*complete.Command{
			"watch": {Flags: map[string]complete.Predictor{
				"icon":      predict.Files("*.png"),
				"log-file":  predict.Files("*.log"),
				"log-level": predict.Set{"debug", "info", "warn", "error"},
			}},
			"summary":  {},
			"icon":     {Flags: map[string]complete.Predictor{"o": predict.Files("*.png")}},
			"settings": {Flags: map[string]complete.Predictor{"get": predict.Nothing}},
		},
	}
	completion.Complete("ccw")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
