package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerquest/internal/catalog"
	qb "github.com/abhisek/careerquest/internal/questionbank"
	"github.com/abhisek/careerquest/internal/recommend"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the quiz categories offered for a profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := profileFromFlags(cmd)
		if err != nil {
			return err
		}
		d, err := profile.Stage.Difficulty()
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s questions)\n", profile, d)
		fmt.Println(strings.Repeat(rule, 40))
		for _, c := range catalog.ValidCategories(profile) {
			fmt.Printf("%-12s  %-24s  %2d\n", c, c.DisplayName(), len(qb.Lookup(c, d)))
		}
		return nil
	},
}

var careersCmd = &cobra.Command{
	Use:   "careers",
	Short: "List the careers considered for a profile, with job-market demand",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := catalog.CareerNames()
		if all, _ := cmd.Flags().GetBool("all"); !all {
			profile, err := profileFromFlags(cmd)
			if err != nil {
				return err
			}
			names = catalog.ValidCareers(profile)
		}

		for _, d := range recommend.JobMarket(names) {
			desc := ""
			if c, ok := catalog.Career(d.Career); ok {
				desc = c.Description
			}
			fmt.Printf("%-24s %s %3.0f  %s\n", d.Career, demandBar(d.Demand, 10), d.Demand, desc)
		}
		return nil
	},
}

func init() {
	addProfileFlags(categoriesCmd)

	addProfileFlags(careersCmd)
	careersCmd.Flags().Bool("all", false, "list every known career regardless of profile")
}
