package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerquest/internal/llm"
	"github.com/abhisek/careerquest/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Check the LLM provider and inspect request events",
}

var llmTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Send a probe request to the configured provider",
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

		lc, ok := cfg.ResolveLLM()
		if !ok {
			return fmt.Errorf("LLM provider not configured: %w", lc.Validate())
		}
		p, err := llm.NewProvider(cmd.Context(), lc, st.EventRepo(), log)
		if err != nil {
			return err
		}

		start := time.Now()
		resp, err := p.Generate(llm.WithPurpose(cmd.Context(), llm.PurposeProbe), llm.Request{
			Messages:  llm.UserMessage("Reply with the single word OK."),
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("probe %s: %w", lc.Provider, err)
		}
		fmt.Printf("Provider:  %s\n", lc.Provider)
		fmt.Printf("Model:     %s\n", resp.Model)
		fmt.Printf("Reply:     %s\n", strings.TrimSpace(resp.Text()))
		fmt.Printf("Tokens:    %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		fmt.Printf("Latency:   %s\n", time.Since(start).Round(time.Millisecond))

		if e, ok := llm.EmbedderOf(p); ok {
			vecs, err := e.Embed(llm.WithPurpose(cmd.Context(), llm.PurposeProbe), []string{"career guidance"})
			if err != nil {
				return fmt.Errorf("probe embeddings: %w", err)
			}
			fmt.Printf("Embedding: %s, %d dimensions\n", e.EmbeddingModel(), len(vecs[0]))
		} else {
			fmt.Println("Embedding: not supported")
		}
		return nil
	},
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		st, err := openEventStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.EventRepo().QueryLLMRequests(cmd.Context(), store.QueryOpts{Newest: true})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		var shown []store.LLMRequestEvent
		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			if limit > 0 && len(shown) == limit {
				break
			}
			shown = append(shown, e)
		}
		if len(shown) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		// Header.
		fmt.Printf("%-5s  %-19s  %-10s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat(rule, 96))

		for _, e := range shown {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Printf("%-5d  %-19s  %-10s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.Sequence,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				truncate(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		st, err := openEventStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.EventRepo().QueryLLMRequests(cmd.Context(), store.QueryOpts{After: id - 1, Limit: 1})
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if len(events) == 0 || events[0].Sequence != id {
			return fmt.Errorf("event %d not found", id)
		}
		e := events[0]

		sep := strings.Repeat(rule, 60)

		fmt.Printf("ID:        %d\n", e.Sequence)
		fmt.Printf("Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider:  %s\n", e.Provider)
		fmt.Printf("Model:     %s\n", e.Model)
		fmt.Printf("Purpose:   %s\n", e.Purpose)
		fmt.Printf("Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Printf("Latency:   %dms\n", e.LatencyMs)
		fmt.Printf("Success:   %v\n", e.Success)
		if e.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", e.ErrorMessage)
		}

		for _, part := range []struct{ title, body string }{
			{"REQUEST", e.RequestBody},
			{"RESPONSE", e.ResponseBody},
		} {
			fmt.Println()
			fmt.Println(sep)
			fmt.Println(part.title)
			fmt.Println(sep)
			if part.body == "" {
				fmt.Println("(not captured)")
				continue
			}
			fmt.Println(part.body)
		}
		return nil
	},
}

var llmUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show aggregated LLM token usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openEventStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		var opts store.QueryOpts
		if since, _ := cmd.Flags().GetDuration("since"); since > 0 {
			opts.From = time.Now().Add(-since)
		}
		usage, err := st.EventRepo().LLMUsage(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(usage) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		fmt.Printf("%-10s  %-28s  %-10s  %6s  %5s  %10s  %10s  %8s\n",
			"Provider", "Model", "Purpose", "Calls", "Fail", "Input", "Output", "Avg Ms")
		fmt.Println(strings.Repeat(rule, 100))

		var calls, failures, in, out int
		for _, u := range usage {
			fmt.Printf("%-10s  %-28s  %-10s  %6d  %5d  %10d  %10d  %8d\n",
				u.Provider, truncate(u.Model, 28), u.Purpose, u.Requests, u.Failures,
				u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
			calls += u.Requests
			failures += u.Failures
			in += u.InputTokens
			out += u.OutputTokens
		}

		fmt.Println(strings.Repeat(rule, 100))
		fmt.Printf("%-10s  %-28s  %-10s  %6d  %5d  %10d  %10d\n", "TOTAL", "", "", calls, failures, in, out)
		return nil
	},
}

// openEventStore opens the event database without building the rest of the
// services.
func openEventStore(cmd *cobra.Command) (*store.Store, error) {
	// Inspecting events works even when the oracle settings do not validate.
	cfg, err := readConfig()
	if err != nil {
		return nil, err
	}
	return openStore(cmd.Context(), cfg)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (advisor, aptitude, embed or probe)")
	llmUsageCmd.Flags().Duration("since", 0, "only count requests made within this duration")

	llmCmd.AddCommand(llmTestCmd)
	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmUsageCmd)
}
