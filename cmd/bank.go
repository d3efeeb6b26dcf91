package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	qb "github.com/abhisek/careerquest/internal/questionbank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect the built-in question bank",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every question for options, answers and translations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := qb.Validate(); err != nil {
			return err
		}
		fmt.Printf("question bank %s: %d questions OK\n", qb.Version, qb.Size())
		return nil
	},
}

var bankStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count questions per category and difficulty",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-24s", "Category")
		for _, d := range qb.Difficulties() {
			fmt.Printf("  %8s", d)
		}
		fmt.Println()
		for _, c := range qb.Categories() {
			fmt.Printf("%-24s", c.DisplayName())
			for _, d := range qb.Difficulties() {
				fmt.Printf("  %8d", len(qb.Lookup(c, d)))
			}
			fmt.Println()
		}
	},
}

func init() {
	bankCmd.AddCommand(bankValidateCmd)
	bankCmd.AddCommand(bankStatsCmd)
}
