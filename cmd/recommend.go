package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerquest/internal/recommend"
	"github.com/abhisek/careerquest/internal/scoring"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend careers from known category scores",
	Example: `  careerquest recommend --stage "11th/12th" --stream PCM --exam JEE \
    --scores "physics=82,chemistry=70,math=91" --interests "robots and coding"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		profile, err := profileFromFlags(cmd)
		if err != nil {
			return err
		}
		raw, _ := cmd.Flags().GetString("scores")
		scores, err := scoring.ParseVector(raw)
		if err != nil {
			return err
		}
		rawCGPA, _ := cmd.Flags().GetString("cgpa")
		cgpa, err := scoring.ParseVector(rawCGPA)
		if err != nil {
			return fmt.Errorf("cgpa: %w", err)
		}
		for c, v := range cgpa {
			scores[c] = scoring.FromCGPA(v)
		}
		interests, _ := cmd.Flags().GetString("interests")
		l := localeFromFlags(cmd)

		svc, err := buildServices(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer svc.Close()

		rec, err := svc.composer.Compose(cmd.Context(), recommend.Request{
			Profile:   profile,
			Scores:    scores,
			Interests: interests,
			Locale:    l,
		})
		var invalid *recommend.NoValidInterestsError
		if errors.As(err, &invalid) {
			return errors.New(invalid.Message)
		}
		if err != nil {
			return fmt.Errorf("compose recommendation: %w", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("output-json"); asJSON {
			return printJSON(os.Stdout, rec)
		}
		printRecommendation(os.Stdout, rec, l)
		return nil
	},
}

func init() {
	addProfileFlags(recommendCmd)
	addLocaleFlag(recommendCmd)
	recommendCmd.Flags().String("scores", "", "category scores out of 100 as category=value pairs")
	recommendCmd.Flags().String("cgpa", "", "10-point CGPAs as category=value pairs, converted to percentages")
	recommendCmd.Flags().String("interests", "", "free-text interests")
	recommendCmd.Flags().Bool("output-json", false, "print the recommendation as JSON")
}
