package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"mspro-labs/lunch-picker/internal/models"
	"mspro-labs/lunch-picker/internal/money"
	"mspro-labs/lunch-picker/internal/recommender"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every saved restaurant",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		res, err := env.store.Load()
		if err != nil {
			return err
		}
		printCatalog(cmd.OutOrStdout(), res.Records, env.settings.BudgetCeiling)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func printCatalog(w io.Writer, records []models.Restaurant, budget int) {
	fmt.Fprintf(w, "📋 Saved restaurants (%d)\n", len(records))
	fmt.Fprintln(w, "------------------------------------")
	if len(records) == 0 {
		fmt.Fprintln(w, "No restaurants found.")
		return
	}
	for i, r := range records {
		if !r.HasPrice() {
			fmt.Fprintf(w, "%d. %s - 가격 정보 없음\n", i+1, r.Name)
			continue
		}
		fmt.Fprintf(w, "%d. %s - %s원 %s\n", i+1, r.Name, money.Format(r.Price),
			strings.Join(recommender.Tags(r, budget), " "))
	}
}
