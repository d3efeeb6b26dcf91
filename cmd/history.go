package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/abhisek/careerquest/internal/questionbank"
	"github.com/abhisek/careerquest/internal/session"
	"github.com/abhisek/careerquest/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed quizzes and their scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		st, err := openStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		opts := store.QueryOpts{Newest: true}
		if since, _ := cmd.Flags().GetDuration("since"); since > 0 {
			opts.From = time.Now().Add(-since)
		}
		events, err := st.EventRepo().QuerySessionEvents(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		var shown int
		for _, e := range events {
			if e.Action != string(session.ActionCompleted) {
				continue
			}
			if limit > 0 && shown == limit {
				break
			}
			shown++
			printHistoryEntry(e)
		}
		if shown == 0 {
			fmt.Println("No completed quizzes found.")
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of quizzes to show")
	historyCmd.Flags().Duration("since", 0, "only show quizzes completed within this duration")
}

func printHistoryEntry(e store.SessionEvent) {
	stale := ""
	if bankOutdated(e.BankVersion) {
		stale = fmt.Sprintf("  (question bank %s, now %s)", e.BankVersion, questionbank.Version)
	}
	fmt.Printf("%s  %-36s  %d/%d answered in %s%s\n",
		e.Timestamp.Local().Format("2006-01-02 15:04"),
		strings.ReplaceAll(e.Profile, "|", " / "),
		e.Answered, e.Questions,
		(time.Duration(e.DurationMs) * time.Millisecond).Round(time.Second),
		stale,
	)

	cats := make([]string, 0, len(e.Scores))
	for c := range e.Scores {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	for _, c := range cats {
		fmt.Printf("    %-14s %6.1f\n", c, e.Scores[c])
	}
	fmt.Println(strings.Repeat(rule, 60))
}

// bankOutdated reports whether scores were taken against an older minor
// version of the question bank and are not directly comparable.
func bankOutdated(v string) bool {
	if !semver.IsValid(v) {
		return v != ""
	}
	return semver.Compare(semver.MajorMinor(v), semver.MajorMinor(questionbank.Version)) < 0
}
