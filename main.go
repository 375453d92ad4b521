package main

import (
	"os"

	"mweber/konto-csv/cmd/categorize"
	"mweber/konto-csv/cmd/clear"
	"mweber/konto-csv/cmd/convert"
	"mweber/konto-csv/cmd/ingest"
	"mweber/konto-csv/cmd/root"
	"mweber/konto-csv/cmd/summary"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(ingest.Cmd)
	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(clear.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		root.Log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
