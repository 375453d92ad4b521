// Package categorize handles transaction categorization commands.
package categorize

import (
	"fmt"

	"mweber/konto-csv/cmd/common"

	"github.com/spf13/cobra"
)

var (
	description string
	category    string
	keyword     string
)

// Cmd represents the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a transaction description or teach the registry a keyword",
	Long: `Categorize resolves a transaction description against the keyword
registry. With --category and --keyword it instead adds a keyword to the
registry and saves it back to disk.

Example:
  konto-csv categorize -d "ALDI SUED SAGT DANKE"
  konto-csv categorize -c Shopping -k zalando`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description to categorize")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Category to add a keyword to")
	Cmd.Flags().StringVarP(&keyword, "keyword", "k", "", "Keyword to add")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	deps, err := common.Build(cmd.Context())
	if err != nil {
		return err
	}
	defer deps.Close()

	if category != "" || keyword != "" {
		if category == "" || keyword == "" {
			return fmt.Errorf("--category and --keyword must be given together")
		}
		deps.Cat.AddKeyword(category, keyword)
		if err := deps.Categories.Save(deps.Cat.Registry()); err != nil {
			return err
		}
		fmt.Printf("added keyword %q to category %q\n", keyword, category)
		return nil
	}

	if description == "" {
		return fmt.Errorf("a description is required (use -d)")
	}

	result := deps.Cat.Categorize(cmd.Context(), description)
	fmt.Printf("Category: %s\n", result)
	return nil
}
