// Package summary reports aggregate figures over the ledger.
package summary

import (
	"fmt"

	"mweber/konto-csv/cmd/common"
	"mweber/konto-csv/internal/store"

	"github.com/spf13/cobra"
)

var (
	byCategory bool
	byMonth    bool
)

// Cmd represents the summary command.
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show aggregate figures for the ledger",
	Long: `Summary prints headline figures over the whole ledger. With
--by-category it ranks expense categories by spend, with --by-month it
breaks income and expenses down per calendar month.`,
	RunE: summaryFunc,
}

func init() {
	Cmd.Flags().BoolVar(&byCategory, "by-category", false, "Break expenses down per category")
	Cmd.Flags().BoolVar(&byMonth, "by-month", false, "Break income and expenses down per month")
}

func summaryFunc(cmd *cobra.Command, args []string) error {
	deps, err := common.Build(cmd.Context())
	if err != nil {
		return err
	}
	defer deps.Close()

	entries, err := deps.Ledger.LoadAll()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("ledger is empty")
		return nil
	}

	switch {
	case byCategory:
		totals, err := store.SummarizeByCategory(entries)
		if err != nil {
			return err
		}
		for _, t := range totals {
			fmt.Printf("%-25s %12s EUR\n", t.Category, t.Total.StringFixed(2))
		}
	case byMonth:
		totals, err := store.SummarizeByMonth(entries)
		if err != nil {
			return err
		}
		for _, t := range totals {
			fmt.Printf("%s  income %12s EUR  expenses %12s EUR\n",
				t.Month, t.Income.StringFixed(2), t.Expenses.StringFixed(2))
		}
	default:
		sum, err := store.Summarize(entries)
		if err != nil {
			return err
		}
		fmt.Printf("transactions: %d (%s to %s)\n", sum.TotalTransactions, sum.FirstDate, sum.LastDate)
		fmt.Printf("income:       %12s EUR\n", sum.TotalIncome.StringFixed(2))
		fmt.Printf("expenses:     %12s EUR\n", sum.TotalExpenses.StringFixed(2))
		fmt.Printf("net savings:  %12s EUR\n", sum.NetSavings.StringFixed(2))
	}
	return nil
}
