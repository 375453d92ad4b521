// Package clear removes the ledger file.
package clear

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"mweber/konto-csv/cmd/root"
	"mweber/konto-csv/internal/store"

	"github.com/spf13/cobra"
)

var force bool

// Cmd represents the clear command.
var Cmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the ledger file",
	Long:  `Clear deletes the CSV ledger. It asks for confirmation unless --force is given.`,
	RunE:  clearFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
}

func clearFunc(cmd *cobra.Command, args []string) error {
	ledger := store.NewLedgerStore(root.Cfg.Ledger.File, root.Log)

	if !force {
		fmt.Printf("delete ledger %s? [y/N] ", ledger.Path())
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			fmt.Println("aborted")
			return nil
		}
	}

	if err := ledger.Clear(); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", ledger.Path())
	return nil
}
