package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerquest/internal/locale"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the career advisor a question",
	Long: "ask sends one question to the LLM career advisor. Without a question it starts " +
		"a conversation that keeps the last few exchanges as context; an empty line ends it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		svc, err := buildServices(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer svc.Close()

		if svc.advisor == nil {
			return errors.New("the advisor needs an LLM provider; set ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY or OPENROUTER_API_KEY")
		}
		l := localeFromFlags(cmd)

		if len(args) > 0 {
			answer, err := svc.advisor.Ask(cmd.Context(), strings.Join(args, " "), l)
			if err != nil {
				log.Debug("advisor failed", zap.Error(err))
			}
			if answer == "" {
				return err
			}
			fmt.Println(answer)
			return nil
		}

		conv := svc.advisor.Conversation()
		for {
			p := promptui.Prompt{Label: locale.T(l, locale.KeyAskHint)}
			question, err := p.Run()
			if err != nil {
				if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
					return nil
				}
				return err
			}
			if strings.TrimSpace(question) == "" {
				return nil
			}
			fmt.Println(locale.T(l, locale.KeyAdvisorThinking))
			answer, err := conv.Ask(cmd.Context(), question, l)
			if err != nil {
				log.Debug("advisor failed", zap.Error(err))
			}
			fmt.Println(answer)
			fmt.Println()
		}
	},
}

func init() {
	addLocaleFlag(askCmd)
}
