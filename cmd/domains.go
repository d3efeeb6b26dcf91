package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerquest/internal/domains"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "Suggest career domains, learning pathways and entrance exams from goals",
	Example: `  careerquest domains --goals "build robots and self-driving cars" \
    --skills python,physics --aptitude math=85,creativity=60`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		if list, _ := cmd.Flags().GetBool("list"); list {
			for _, d := range domains.All() {
				fmt.Printf("%-28s  %s\n", d.Name, strings.Join(d.Careers, ", "))
			}
			return nil
		}

		p := domains.Profile{Language: localeFromFlags(cmd)}
		p.Goals, _ = cmd.Flags().GetString("goals")
		p.Skills, _ = cmd.Flags().GetStringSlice("skills")
		p.Interests, _ = cmd.Flags().GetStringSlice("interests")
		p.EducationLevel, _ = cmd.Flags().GetString("education")
		aptitude, err := cmd.Flags().GetStringToInt("aptitude")
		if err != nil {
			return err
		}
		p.Aptitude = make(map[string]float64, len(aptitude))
		for k, v := range aptitude {
			p.Aptitude[k] = float64(v)
		}

		svc, err := buildServices(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer svc.Close()

		res, err := svc.explorer.Recommend(cmd.Context(), p)
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("output-json"); asJSON {
			return printJSON(os.Stdout, res)
		}
		printDomains(res)
		return nil
	},
}

func init() {
	addLocaleFlag(domainsCmd)
	domainsCmd.Flags().String("goals", "", "free-text career goals")
	domainsCmd.Flags().StringSlice("skills", nil, "skills already held")
	domainsCmd.Flags().StringSlice("interests", nil, "interests")
	domainsCmd.Flags().String("education", "", "education level")
	domainsCmd.Flags().StringToInt("aptitude", nil, "aptitude scores out of 100 as name=value pairs")
	domainsCmd.Flags().Bool("list", false, "list the known domains and exit")
	domainsCmd.Flags().Bool("output-json", false, "print the result as JSON")
}

func printDomains(res *domains.Result) {
	for i, name := range res.Domains {
		fmt.Printf("%d. %s\n", i+1, name)
		if exams := res.ExamAlignment[name]; len(exams) > 0 {
			fmt.Printf("   Exams:   %s\n", strings.Join(exams, ", "))
		}
		for _, c := range res.Pathways[name].SuggestedCourses {
			fmt.Printf("   - %s\n", c)
		}
	}
	fmt.Println()
	fmt.Printf("Career paths: %s\n", strings.Join(res.CareerPaths, ", "))
}
