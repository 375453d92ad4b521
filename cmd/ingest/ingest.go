// Package ingest handles the statement ingestion command.
package ingest

import (
	"fmt"

	"mweber/konto-csv/cmd/common"
	"mweber/konto-csv/cmd/root"
	"mweber/konto-csv/internal/fileutils"
	"mweber/konto-csv/internal/ingest"
	"mweber/konto-csv/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the ingest command.
var Cmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest statement PDFs into the ledger",
	Long: `Ingest extracts transactions from one statement PDF, or from every PDF
in a directory, categorizes them and appends them to the CSV ledger.
Transactions already present in the ledger are skipped.

Example:
  konto-csv ingest -i statements/Kontoauszug_7_2025.pdf
  konto-csv ingest -i statements/`,
	RunE: ingestFunc,
}

func ingestFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input file or directory is required (use -i)")
	}

	deps, err := common.Build(cmd.Context())
	if err != nil {
		return err
	}
	defer deps.Close()

	files := []string{root.SharedFlags.Input}
	if fileutils.DirectoryExists(root.SharedFlags.Input) {
		files, err = fileutils.ListFilesWithExtension(root.SharedFlags.Input, ".pdf")
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no PDF files found in %s", root.SharedFlags.Input)
		}
	}

	pipeline := ingest.New(nil, deps.Cat, deps.Ledger, root.Log)

	var failed int
	for _, file := range files {
		result, err := pipeline.IngestFile(cmd.Context(), file)
		if err != nil {
			root.Log.WithError(err).Error("failed to ingest statement",
				logging.Field{Key: "file", Value: file})
			failed++
			continue
		}
		fmt.Printf("%s: %d extracted, %d added, %d duplicates skipped\n",
			file, result.Extracted, result.Added, result.Skipped)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d statements failed", failed, len(files))
	}
	return nil
}
