package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/locale"
	qb "github.com/abhisek/careerquest/internal/questionbank"
	"github.com/abhisek/careerquest/internal/recommend"
	"github.com/abhisek/careerquest/internal/session"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the aptitude quiz with line prompts and get career recommendations",
	Long: "quiz asks for the education profile (unless --stage is given), runs one question " +
		"set per category, prints the scores and, once interests are given, the recommendation.",
	RunE: runQuiz,
}

func init() {
	addProfileFlags(quizCmd)
	addLocaleFlag(quizCmd)
	quizCmd.Flags().String("interests", "", "interests for the recommendation; prompted when empty")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	l := localeFromFlags(cmd)

	var profile catalog.Profile
	if stage, _ := cmd.Flags().GetString("stage"); stage != "" {
		profile, err = profileFromFlags(cmd)
	} else {
		profile, err = promptProfile(l)
	}
	if err != nil {
		return err
	}

	svc, err := buildServices(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer svc.Close()

	s, _, err := svc.sessions.Open(uuid.NewString(), profile)
	if err != nil {
		return err
	}
	log.Debug("quiz started", zap.String("session", s.ID), zap.String("profile", profile.String()))

	for {
		c, instances, ok := s.Current()
		if !ok {
			break
		}
		fmt.Printf("\n%s: %s\n", locale.T(l, locale.KeyCategoryProgress), c.DisplayName())
		for _, in := range instances {
			answers, err := promptQuestion(in.Base, l)
			if err != nil {
				return err
			}
			if _, err := svc.sessions.Update(s.ID, func(s *session.Session) error {
				return s.Record(in.ID, answers)
			}); err != nil {
				return err
			}
		}
		if _, err := svc.sessions.Update(s.ID, func(s *session.Session) error {
			_, err := s.Advance()
			return err
		}); err != nil {
			return err
		}
	}

	fmt.Println()
	printSummary(os.Stdout, session.BuildSummary(s), s.Scores, l)

	interests, _ := cmd.Flags().GetString("interests")
	for {
		if interests == "" {
			p := promptui.Prompt{Label: locale.T(l, locale.KeyInterests)}
			if interests, err = p.Run(); err != nil {
				return err
			}
		}
		rec, err := svc.composer.Compose(cmd.Context(), recommend.Request{
			Profile:   profile,
			Scores:    s.Scores,
			Interests: interests,
			Locale:    l,
		})
		var invalid *recommend.NoValidInterestsError
		if errors.As(err, &invalid) {
			fmt.Println(invalid.Message)
			interests = ""
			continue
		}
		if err != nil {
			return fmt.Errorf("compose recommendation: %w", err)
		}
		fmt.Println()
		printRecommendation(os.Stdout, rec, l)
		return nil
	}
}

// promptProfile asks for the stage and the follow-up choices it allows.
func promptProfile(l locale.Locale) (catalog.Profile, error) {
	var p catalog.Profile

	stages := make([]string, 0, len(catalog.Stages()))
	for _, st := range catalog.Stages() {
		stages = append(stages, string(st))
	}
	_, stage, err := (&promptui.Select{Label: locale.T(l, locale.KeyStage), Items: stages}).Run()
	if err != nil {
		return p, err
	}
	p.Stage = catalog.Stage(stage)

	if p.Stage.HasStream() {
		streams := make([]string, 0, len(catalog.Streams()))
		for _, s := range catalog.Streams() {
			streams = append(streams, string(s))
		}
		_, stream, err := (&promptui.Select{Label: locale.T(l, locale.KeyStream), Items: streams}).Run()
		if err != nil {
			return p, err
		}
		p.Stream = catalog.Stream(stream)
	}

	if exams := catalog.AllowedExams(p.Stage); len(exams) > 0 {
		items := make([]string, 0, len(exams))
		for _, e := range exams {
			items = append(items, string(e))
		}
		_, exam, err := (&promptui.Select{Label: locale.T(l, locale.KeyExamType), Items: items}).Run()
		if err != nil {
			return p, err
		}
		p.Exam = catalog.Exam(exam)
	}

	if p.Stage == catalog.StagePostGraduation {
		items := make([]string, 0, len(catalog.Degrees()))
		for _, d := range catalog.Degrees() {
			items = append(items, string(d))
		}
		_, degree, err := (&promptui.Select{Label: locale.T(l, locale.KeyDegreeType), Items: items}).Run()
		if err != nil {
			return p, err
		}
		p.Degree = catalog.Degree(degree)
	}

	p = p.Normalize()
	return p, p.Validate()
}

// promptQuestion asks one question. Multiple-answer questions toggle options
// until the continue item is picked.
func promptQuestion(q qb.Question, l locale.Locale) ([]string, error) {
	if q.Kind != qb.Multiple {
		sel := promptui.Select{
			Label:        q.TextFor(l) + " (" + locale.T(l, locale.KeySelectOne) + ")",
			Items:        q.Options,
			HideSelected: true,
		}
		_, answer, err := sel.Run()
		if err != nil {
			return nil, err
		}
		fmt.Printf("  %s %s\n", promptui.IconGood, answer)
		return []string{answer}, nil
	}

	checked := make([]bool, len(q.Options))
	cursor := 0
	for {
		items := make([]string, 0, len(q.Options)+1)
		for i, opt := range q.Options {
			box := "[ ]"
			if checked[i] {
				box = "[x]"
			}
			items = append(items, box+" "+opt)
		}
		items = append(items, locale.T(l, locale.KeyContinue))

		sel := promptui.Select{
			Label:        q.TextFor(l) + " (" + locale.T(l, locale.KeySelectMany) + ")",
			Items:        items,
			HideSelected: true,
		}
		idx, _, err := sel.RunCursorAt(cursor, 0)
		if err != nil {
			return nil, err
		}
		if idx < len(q.Options) {
			checked[idx] = !checked[idx]
			cursor = idx
			continue
		}

		var answers []string
		for i, ok := range checked {
			if ok {
				answers = append(answers, q.Options[i])
			}
		}
		fmt.Printf("  %s %s\n", promptui.IconGood, strings.Join(answers, ", "))
		return answers, nil
	}
}
