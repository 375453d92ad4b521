// Package convert handles one-off statement to CSV conversion.
package convert

import (
	"fmt"

	"mweber/konto-csv/cmd/common"
	"mweber/konto-csv/cmd/root"
	"mweber/konto-csv/internal/ingest"
	"mweber/konto-csv/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command.
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a statement PDF to a standalone CSV file",
	Long: `Convert extracts and categorizes the transactions of one statement PDF
and writes them to a CSV file without touching the ledger.

Example:
  konto-csv convert -i Kontoauszug_7_2025.pdf -o july.csv`,
	RunE: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input file is required (use -i)")
	}
	if root.SharedFlags.Output == "" {
		return fmt.Errorf("output file is required (use -o)")
	}

	deps, err := common.Build(cmd.Context())
	if err != nil {
		return err
	}
	defer deps.Close()

	pipeline := ingest.New(nil, deps.Cat, nil, root.Log)
	entries, metadata, err := pipeline.Convert(cmd.Context(), root.SharedFlags.Input)
	if err != nil {
		return err
	}

	if err := store.WriteEntriesToCSV(entries, root.SharedFlags.Output); err != nil {
		return err
	}

	fmt.Printf("%s: wrote %d transactions to %s\n",
		root.SharedFlags.Input, len(entries), root.SharedFlags.Output)
	if metadata.IBAN != "" {
		fmt.Printf("account %s, statement %s/%s\n",
			metadata.IBAN, metadata.StatementNumber, metadata.Year)
	}
	return nil
}
